package nav

import (
	"container/heap"
	"math"

	"backrooms-crawl/internal/component"
	"backrooms-crawl/internal/gamemap"
)

// DefaultSearchLimit caps how many nodes one FindPath call may expand.
const DefaultSearchLimit = 4096

// AStar is an 8-connected grid pathfinder over the walkable tiles of a map.
// Entities are ignored; callers repair blocked waypoints themselves.
type AStar struct {
	gmap  *gamemap.GameMap
	limit int
}

// NewAStar creates a pathfinder for gmap. limit <= 0 selects DefaultSearchLimit.
func NewAStar(gmap *gamemap.GameMap, limit int) *AStar {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	return &AStar{gmap: gmap, limit: limit}
}

// HasPoint reports whether p is a node of the navigation graph.
func (a *AStar) HasPoint(p component.Position) bool {
	return a.gmap.IsWalkable(p.X, p.Y)
}

// FindPath returns the shortest route from `from` to `to`, including both
// endpoints. It returns nil when either end is off the graph, when no route
// exists, or when the search limit is exhausted.
func (a *AStar) FindPath(from, to component.Position) []component.Position {
	if !a.HasPoint(from) || !a.HasPoint(to) {
		return nil
	}
	if from == to {
		return []component.Position{from}
	}

	open := &nodeHeap{}
	gScore := map[component.Position]float64{from: 0}
	parent := make(map[component.Position]component.Position)
	closed := make(map[component.Position]bool)
	heap.Push(open, &node{pos: from, f: octile(from, to)})

	expanded := 0
	for open.Len() > 0 {
		cur := heap.Pop(open).(*node)
		if closed[cur.pos] {
			continue
		}
		if cur.pos == to {
			return rebuild(parent, from, to)
		}
		closed[cur.pos] = true
		expanded++
		if expanded > a.limit {
			return nil
		}

		for _, d := range Neighbors8 {
			np := cur.pos.Offset(d.X, d.Y)
			if closed[np] || !a.HasPoint(np) {
				continue
			}
			cost := 1.0
			if d.X != 0 && d.Y != 0 {
				cost = math.Sqrt2
			}
			ng := gScore[cur.pos] + cost
			if prev, ok := gScore[np]; ok && ng >= prev {
				continue
			}
			gScore[np] = ng
			parent[np] = cur.pos
			heap.Push(open, &node{pos: np, g: ng, f: ng + octile(np, to), seq: expanded})
		}
	}
	return nil
}

func rebuild(parent map[component.Position]component.Position, from, to component.Position) []component.Position {
	path := []component.Position{to}
	for p := to; p != from; {
		p = parent[p]
		path = append(path, p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// octile is the admissible heuristic for 8-connected movement.
func octile(a, b component.Position) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	return math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy)
}

type node struct {
	pos  component.Position
	g, f float64
	seq  int
}

// nodeHeap orders by f, then by g descending (prefer deeper nodes), then by
// insertion sequence so equal-cost searches are reproducible.
type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	if h[i].g != h[j].g {
		return h[i].g > h[j].g
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)   { *h = append(*h, x.(*node)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := old[len(old)-1]
	*h = old[:len(old)-1]
	return n
}
