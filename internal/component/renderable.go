package component

import (
	"backrooms-crawl/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 3

// Renderable is how an entity looks on the map. Higher layers draw on top
// when two entities share a tile.
type Renderable struct {
	Glyph string
	Color tcell.Color
	Layer int
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
