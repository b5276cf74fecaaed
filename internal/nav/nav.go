// Package nav picks destination tiles for mobile actors. Every primitive is
// pure: it returns a tile and leaves moving the entity and spending its
// movement budget to the caller.
package nav

import (
	"math/rand"

	"backrooms-crawl/internal/component"
)

// Grid answers the occupancy questions navigation needs.
type Grid interface {
	IsWalkable(p component.Position) bool
	// IsOccupied reports whether a movement-blocking entity stands on p.
	IsOccupied(p component.Position) bool
}

// Pathfinder is an optional route service. FindPath returns the route
// including its start tile; an empty or single-tile result means no help.
type Pathfinder interface {
	HasPoint(p component.Position) bool
	FindPath(from, to component.Position) []component.Position
}

// Neighbors8 lists the 8-neighbourhood offsets in a fixed clockwise order
// starting north.
var Neighbors8 = [8]component.Position{
	{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
	{X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1},
}

// Neighbors4 lists the orthogonal offsets: north, east, south, west.
var Neighbors4 = [4]component.Position{
	{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0},
}

// Navigator bundles the collaborators one mover consults during its turn.
type Navigator struct {
	Grid   Grid
	Paths  Pathfinder // nil disables the pathfinder tier
	Player component.Position
	Rand   *rand.Rand
}

// CanEnter is the shared occupancy rule: walkable, not held by a blocking
// entity, and not the player's tile.
func (n Navigator) CanEnter(p component.Position) bool {
	return p != n.Player && n.Grid.IsWalkable(p) && !n.Grid.IsOccupied(p)
}

// StepToward resolves one step from `from` toward target through the
// fallback chain: pathfinder waypoint, sidestep repair, greedy direction.
func (n Navigator) StepToward(from, target component.Position) (component.Position, bool) {
	if from == target {
		return from, false
	}
	if n.Paths != nil && n.Paths.HasPoint(from) {
		path := n.Paths.FindPath(from, target)
		if len(path) >= 2 {
			if next := path[1]; n.CanEnter(next) {
				return next, true
			}
			if p, ok := n.Sidestep(from, path); ok {
				return p, true
			}
		}
	}
	return n.Greedy(from, target)
}

// Sidestep looks for an 8-neighbour that rejoins the route further along
// while still making progress toward its goal. path[1] is assumed blocked.
// Only candidates scoring above zero are accepted.
func (n Navigator) Sidestep(from component.Position, path []component.Position) (component.Position, bool) {
	if len(path) < 2 {
		return from, false
	}
	goal := path[len(path)-1]
	startDist := from.DistanceTo(goal)
	last := float64(len(path) - 1)

	best := from
	bestScore := 0.0
	found := false
	for _, d := range Neighbors8 {
		c := from.Offset(d.X, d.Y)
		if !n.CanEnter(c) {
			continue
		}
		bonus := 0.0
		for i := 1; i < len(path); i++ {
			if chebyshev(c, path[i]) > 1 {
				continue
			}
			w := float64(i) / last
			if c == path[i] {
				w *= 2
			}
			if w > bonus {
				bonus = w
			}
		}
		score := bonus + (startDist - c.DistanceTo(goal))
		if score > bestScore {
			best, bestScore, found = c, score, true
		}
	}
	return best, found
}

// Greedy takes the first enterable tile among GreedyCandidates.
func (n Navigator) Greedy(from, target component.Position) (component.Position, bool) {
	for _, c := range GreedyCandidates(from, target) {
		if n.CanEnter(c) {
			return c, true
		}
	}
	return from, false
}

// GreedyCandidates derives the ordered step list from the sign of
// (target - from). With both axes non-zero: the diagonal toward the target,
// the two axis components (dominant axis first), then the two anti-diagonals.
// With one axis zero: straight ahead, both diagonals toward, then the two
// perpendicular steps.
func GreedyCandidates(from, target component.Position) []component.Position {
	dx, dy := target.X-from.X, target.Y-from.Y
	sx, sy := sign(dx), sign(dy)

	var steps []component.Position
	switch {
	case sx == 0 && sy == 0:
		return nil
	case sx != 0 && sy != 0:
		steps = append(steps, component.Position{X: sx, Y: sy})
		if abs(dx) >= abs(dy) {
			steps = append(steps, component.Position{X: sx}, component.Position{Y: sy})
		} else {
			steps = append(steps, component.Position{Y: sy}, component.Position{X: sx})
		}
		steps = append(steps, component.Position{X: sx, Y: -sy}, component.Position{X: -sx, Y: sy})
	case sx == 0:
		steps = append(steps,
			component.Position{Y: sy},
			component.Position{X: 1, Y: sy}, component.Position{X: -1, Y: sy},
			component.Position{X: 1}, component.Position{X: -1})
	default:
		steps = append(steps,
			component.Position{X: sx},
			component.Position{X: sx, Y: 1}, component.Position{X: sx, Y: -1},
			component.Position{Y: 1}, component.Position{Y: -1})
	}

	out := make([]component.Position, len(steps))
	for i, s := range steps {
		out[i] = from.Offset(s.X, s.Y)
	}
	return out
}

// ShuffleInRange picks a random enterable 8-neighbour that keeps the mover
// within reach of target.
func (n Navigator) ShuffleInRange(from, target component.Position, reach float64) (component.Position, bool) {
	var options []component.Position
	for _, d := range Neighbors8 {
		c := from.Offset(d.X, d.Y)
		if n.CanEnter(c) && c.DistanceTo(target) <= reach {
			options = append(options, c)
		}
	}
	return n.pick(from, options)
}

// Wander picks any random enterable 8-neighbour.
func (n Navigator) Wander(from component.Position) (component.Position, bool) {
	var options []component.Position
	for _, d := range Neighbors8 {
		c := from.Offset(d.X, d.Y)
		if n.CanEnter(c) {
			options = append(options, c)
		}
	}
	return n.pick(from, options)
}

func (n Navigator) pick(from component.Position, options []component.Position) (component.Position, bool) {
	if len(options) == 0 {
		return from, false
	}
	return options[n.Rand.Intn(len(options))], true
}

func chebyshev(a, b component.Position) int {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
