package component

import "backrooms-crawl/internal/ecs"

const CHealth ecs.ComponentType = 2

// Health holds combat hit points. Dead is terminal: once set the engine
// never mutates the record again.
type Health struct {
	Current, Max float64
	Dead         bool
}

func (Health) Type() ecs.ComponentType { return CHealth }
