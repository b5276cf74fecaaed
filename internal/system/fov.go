package system

import (
	"backrooms-crawl/internal/component"
	"backrooms-crawl/internal/gamemap"
)

// Visibility is the set of tiles the player can currently see.
type Visibility map[component.Position]bool

// octant transform matrices for recursive shadowcasting.
// A sweep offset (dx, dy) maps to a world offset via:
//
//	worldX = cx + dx*xx + dy*xy
//	worldY = cy + dx*yx + dy*yy
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// ComputeFOV returns every tile visible from origin within radius.
// Opaque tiles (walls, closed doors) are visible but block what lies behind.
func ComputeFOV(gmap *gamemap.GameMap, origin component.Position, radius int) Visibility {
	vis := Visibility{}
	if !gmap.InBounds(origin.X, origin.Y) {
		return vis
	}
	vis[origin] = true
	c := caster{gmap: gmap, origin: origin, radius: radius, vis: vis}
	for _, m := range octants {
		c.cast(1, 1.0, 0.0, m)
	}
	return vis
}

type caster struct {
	gmap   *gamemap.GameMap
	origin component.Position
	radius int
	vis    Visibility
}

// cast lights one octant between the start and end slopes, starting at row.
func (c *caster) cast(row int, start, end float64, m [4]int) {
	if start < end {
		return
	}
	radiusSq := float64(c.radius * c.radius)
	newStart := start

	for j := row; j <= c.radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := c.origin.X + dx*m[0] + dy*m[1]
			wy := c.origin.Y + dx*m[2] + dy*m[3]

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)
			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if float64(dx*dx+dy*dy) < radiusSq && c.gmap.InBounds(wx, wy) {
				c.vis[component.Position{X: wx, Y: wy}] = true
			}

			opaque := !c.gmap.IsTransparent(wx, wy)
			switch {
			case blocked && opaque:
				newStart = rSlope
			case blocked:
				blocked = false
				start = newStart
			case opaque && j < c.radius:
				blocked = true
				c.cast(j+1, start, lSlope, m)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

// Memory accumulates every tile the player has ever seen on a level.
type Memory struct {
	seen Visibility
	now  Visibility
}

func NewMemory() *Memory {
	return &Memory{seen: Visibility{}, now: Visibility{}}
}

// Update replaces the current view and folds it into the explored set.
func (m *Memory) Update(v Visibility) {
	m.now = v
	for p := range v {
		m.seen[p] = true
	}
}

func (m *Memory) Visible(p component.Position) bool  { return m.now[p] }
func (m *Memory) Explored(p component.Position) bool { return m.seen[p] }
