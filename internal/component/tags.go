package component

import "backrooms-crawl/internal/ecs"

// Marker components carry no data; having one is the whole fact.
const (
	CTagPlayer   ecs.ComponentType = 8
	CTagBlocking ecs.ComponentType = 9
)

// TagPlayer marks the entity every hostile hunts.
type TagPlayer struct{}

// TagBlocking marks an entity that fills its tile: nothing else may step or
// spawn there while it lives.
type TagBlocking struct{}

func (TagPlayer) Type() ecs.ComponentType   { return CTagPlayer }
func (TagBlocking) Type() ecs.ComponentType { return CTagBlocking }
