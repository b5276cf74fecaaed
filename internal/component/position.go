package component

import (
	"math"

	"backrooms-crawl/internal/ecs"
)

const CPosition ecs.ComponentType = 1

// Position is a tile coordinate on the level grid.
type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }

// Offset returns the position shifted by (dx, dy).
func (p Position) Offset(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// DistanceTo returns the Euclidean distance between two tiles.
func (p Position) DistanceTo(o Position) float64 {
	dx := float64(o.X - p.X)
	dy := float64(o.Y - p.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
