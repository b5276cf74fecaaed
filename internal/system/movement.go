package system

import (
	"backrooms-crawl/internal/ecs"
	"backrooms-crawl/internal/gamemap"
	"backrooms-crawl/internal/level"
)

// MoveResult describes the outcome of a MovePlayer call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall or out-of-bounds
	MoveAttack                    // bumped a blocking entity
)

// MovePlayer attempts to move the player by (dx, dy).
// Returns the outcome and, for MoveAttack, the entity that was bumped.
func MovePlayer(l *level.Level, dx, dy int) (MoveResult, ecs.EntityID) {
	next := l.PlayerPos().Offset(dx, dy)

	if other := l.EntityAt(next); other != ecs.NilEntity && other != l.Player {
		return MoveAttack, other
	}
	if !l.IsWalkable(next) {
		return MoveBlocked, ecs.NilEntity
	}
	l.Move(l.Player, next)
	return MoveOK, ecs.NilEntity
}

// OnExit reports whether the player stands on the level exit.
func OnExit(l *level.Level) bool {
	p := l.PlayerPos()
	return l.Map.InBounds(p.X, p.Y) && l.Map.At(p.X, p.Y).Kind == gamemap.TileExit
}
