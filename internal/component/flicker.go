package component

import "backrooms-crawl/internal/ecs"

const CFlicker ecs.ComponentType = 5

// Flicker is the entropy-lock state of a light fixture. Lit is derived from
// Seed and the turn number, so replaying the same turns yields the same lights.
type Flicker struct {
	Seed   uint64
	Broken bool
	Lit    bool
}

func (Flicker) Type() ecs.ComponentType { return CFlicker }
