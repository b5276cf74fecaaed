package render

import (
	"sort"

	"backrooms-crawl/assets"
	"backrooms-crawl/internal/component"
	"backrooms-crawl/internal/level"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDRows is the number of screen rows reserved below the map.
const HUDRows = 5

// View answers which tiles the player can see and has seen.
type View interface {
	Visible(p component.Position) bool
	Explored(p component.Position) bool
}

// Renderer draws a level onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	tiles  TileSet
}

func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen, tiles: Backrooms}
	r.Resize()
	return r
}

// Resize refits the camera to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera = NewCamera(w, max(h-HUDRows, 1))
}

// CenterOn recenters the camera on p.
func (r *Renderer) CenterOn(p component.Position) { r.camera.Center(p) }

// DrawFrame renders terrain and entities. Entities are drawn only on
// tiles currently in view.
func (r *Renderer) DrawFrame(l *level.Level, view View) {
	r.screen.Clear()
	r.drawMap(l, view)
	r.drawEntities(l, view)
}

func (r *Renderer) drawMap(l *level.Level, view View) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	for y := 0; y < l.Map.Height; y++ {
		for x := 0; x < l.Map.Width; x++ {
			p := component.Position{X: x, Y: y}
			lit := view.Visible(p)
			if !lit && !view.Explored(p) {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(p)
			if !onScreen {
				continue
			}
			r.putGlyph(sx, sy, r.tiles.Glyph(l.Map.At(x, y).Kind, lit), style)
		}
	}
}

type renderableEntity struct {
	pos  component.Position
	rend component.Renderable
}

func (r *Renderer) drawEntities(l *level.Level, view View) {
	w := l.ECS()
	ids := w.Query(component.CRenderable, component.CPosition)
	entities := make([]renderableEntity, 0, len(ids))
	for _, id := range ids {
		pos := w.Get(id, component.CPosition).(component.Position)
		if !view.Visible(pos) {
			continue
		}
		rend := w.Get(id, component.CRenderable).(component.Renderable)
		if fc := w.Get(id, component.CFlicker); fc != nil && !fc.(component.Flicker).Lit {
			rend.Glyph = assets.GlyphLightBroken
		}
		entities = append(entities, renderableEntity{pos: pos, rend: rend})
	}

	// Lower layers are drawn first, i.e. behind.
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].rend.Layer < entities[j].rend.Layer
	})

	for _, e := range entities {
		sx, sy, onScreen := r.camera.WorldToScreen(e.pos)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(e.rend.Color).Background(tcell.ColorBlack)
		r.putGlyph(sx, sy, e.rend.Glyph, style)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	if runewidth.StringWidth(glyph) < 2 {
		// Pad narrow glyphs so every tile spans two columns.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
