package factory

import (
	"backrooms-crawl/assets"
	"backrooms-crawl/internal/component"
	"backrooms-crawl/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// Draw layers, bottom to top.
const (
	LayerFixture = 2
	LayerActor   = 5
	LayerPlayer  = 10
)

// NewPlayer creates the player entity at pos.
func NewPlayer(w *ecs.World, pos component.Position, maxHP float64) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, pos)
	w.Add(id, component.Health{Current: maxHP, Max: maxHP})
	w.Add(id, component.Renderable{Glyph: assets.GlyphPlayer, Color: tcell.ColorWhite, Layer: LayerPlayer})
	w.Add(id, component.TagPlayer{})
	w.Add(id, component.TagBlocking{})
	return id
}

// NewActor creates a non-player entity from its archetype definition.
// Per-turn stats start at zero; the behavior strategy fills them on the
// entity's first active turn.
func NewActor(w *ecs.World, def assets.ArchetypeDef, pos component.Position) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, pos)
	w.Add(id, component.Health{Current: def.MaxHP, Max: def.MaxHP})
	w.Add(id, component.Actor{Kind: def.Kind})

	layer := LayerActor
	if !def.Blocks {
		layer = LayerFixture
	}
	w.Add(id, component.Renderable{Glyph: def.Glyph, Color: def.Color, Layer: layer})
	if def.Blocks {
		w.Add(id, component.TagBlocking{})
	}
	if def.Light {
		w.Add(id, component.Flicker{Seed: FlickerSeed(pos), Broken: def.Broken, Lit: !def.Broken})
	}
	return id
}

// FlickerSeed derives a fixture's flicker seed from where it was placed, so a
// scenario always produces the same light pattern.
func FlickerSeed(pos component.Position) uint64 {
	return uint64(uint32(pos.X))<<32 | uint64(uint32(pos.Y))
}
