// Package ecs is the entity arena shared by the level, the AI and the
// renderer.
package ecs

// EntityID is a stable handle to one entity record. Handles are never
// reused within a World.
type EntityID uint64

// NilEntity never names a live entity.
const NilEntity EntityID = 0

// ComponentType keys one kind of component record.
type ComponentType uint8

// Component is any value stored on an entity.
type Component interface {
	Type() ComponentType
}
