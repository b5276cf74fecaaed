// Package level is the world the actors live in: the tile map, the entity
// arena and the optional pathfinder, behind the queries the AI needs.
package level

import (
	"errors"
	"fmt"

	"backrooms-crawl/assets"
	"backrooms-crawl/internal/component"
	"backrooms-crawl/internal/ecs"
	"backrooms-crawl/internal/factory"
	"backrooms-crawl/internal/gamemap"
	"backrooms-crawl/internal/nav"
)

var (
	ErrTileBlocked      = errors.New("tile is blocked")
	ErrUnknownArchetype = errors.New("unknown archetype")
)

// Hit is one attack that landed on the player.
type Hit struct {
	From   ecs.EntityID
	Amount float64
	Tags   []string
}

type Level struct {
	Name     string
	Map      *gamemap.GameMap
	Entities *ecs.World
	Player   ecs.EntityID

	paths *nav.AStar
	hits  []Hit
}

// Options control how a level is assembled.
type Options struct {
	DisablePathfinder bool
	PathSearchLimit   int
}

// New wraps a tile map with an empty entity arena. The player is placed
// separately with PlacePlayer.
func New(name string, gmap *gamemap.GameMap, opts Options) *Level {
	l := &Level{Name: name, Map: gmap, Entities: ecs.NewWorld(), Player: ecs.NilEntity}
	if !opts.DisablePathfinder {
		l.paths = nav.NewAStar(gmap, opts.PathSearchLimit)
	}
	return l
}

// PlacePlayer creates the player entity.
func (l *Level) PlacePlayer(pos component.Position, maxHP float64) (ecs.EntityID, error) {
	if !l.IsWalkable(pos) || l.IsOccupied(pos) {
		return ecs.NilEntity, fmt.Errorf("place player at %v: %w", pos, ErrTileBlocked)
	}
	l.Player = factory.NewPlayer(l.Entities, pos, maxHP)
	return l.Player, nil
}

// PlayerPos returns the player's tile.
func (l *Level) PlayerPos() component.Position {
	if c := l.Entities.Get(l.Player, component.CPosition); c != nil {
		return c.(component.Position)
	}
	return component.Position{X: -1, Y: -1}
}

// PlayerHealth returns the player's hit points.
func (l *Level) PlayerHealth() component.Health {
	if c := l.Entities.Get(l.Player, component.CHealth); c != nil {
		return c.(component.Health)
	}
	return component.Health{Dead: true}
}

func (l *Level) ECS() *ecs.World { return l.Entities }

func (l *Level) IsWalkable(p component.Position) bool {
	return l.Map.IsWalkable(p.X, p.Y)
}

func (l *Level) HasLineOfSight(a, b component.Position) bool {
	return l.Map.HasLineOfSight(a.X, a.Y, b.X, b.Y)
}

// EntityAt returns the living movement-blocking entity on p, the player
// included, or ecs.NilEntity.
func (l *Level) EntityAt(p component.Position) ecs.EntityID {
	for _, id := range l.Entities.Query(component.CTagBlocking, component.CPosition) {
		if l.Entities.Get(id, component.CPosition).(component.Position) != p {
			continue
		}
		if hc := l.Entities.Get(id, component.CHealth); hc != nil && hc.(component.Health).Dead {
			continue
		}
		return id
	}
	return ecs.NilEntity
}

func (l *Level) IsOccupied(p component.Position) bool {
	return l.EntityAt(p) != ecs.NilEntity
}

// Pathfinder returns nil when the level was built without one.
func (l *Level) Pathfinder() nav.Pathfinder {
	if l.paths == nil {
		return nil
	}
	return l.paths
}

// Spawn creates an entity of the given type on a free walkable tile.
func (l *Level) Spawn(kind string, p component.Position) (ecs.EntityID, error) {
	def, ok := assets.Lookup(kind)
	if !ok {
		return ecs.NilEntity, fmt.Errorf("spawn %q: %w", kind, ErrUnknownArchetype)
	}
	if !l.IsWalkable(p) || (def.Blocks && l.IsOccupied(p)) {
		return ecs.NilEntity, fmt.Errorf("spawn %q at %v: %w", kind, p, ErrTileBlocked)
	}
	return factory.NewActor(l.Entities, def, p), nil
}

func (l *Level) Move(id ecs.EntityID, to component.Position) {
	l.Entities.Add(id, to)
}

// DamagePlayer lowers the player's hit points and queues the hit for the
// HUD. Damage is clamped to the player's remaining hit points.
func (l *Level) DamagePlayer(from ecs.EntityID, amount float64, tags []string) {
	hc := l.Entities.Get(l.Player, component.CHealth)
	if hc == nil {
		return
	}
	hp := hc.(component.Health)
	if hp.Dead {
		return
	}
	hp.Current = max(hp.Current-amount, 0)
	if hp.Current == 0 {
		hp.Dead = true
	}
	l.Entities.Add(l.Player, hp)
	l.hits = append(l.hits, Hit{From: from, Amount: amount, Tags: tags})
}

// DrainHits returns and clears the hits queued since the last call.
func (l *Level) DrainHits() []Hit {
	hits := l.hits
	l.hits = nil
	return hits
}

// RemoveDead destroys every dead non-player entity.
func (l *Level) RemoveDead() []ecs.EntityID {
	var removed []ecs.EntityID
	for _, id := range l.Entities.Query(component.CHealth) {
		if id == l.Player {
			continue
		}
		if l.Entities.Get(id, component.CHealth).(component.Health).Dead {
			l.Entities.DestroyEntity(id)
			removed = append(removed, id)
		}
	}
	return removed
}
