package render

import (
	"backrooms-crawl/assets"
	"backrooms-crawl/internal/gamemap"
)

// TileSet holds the emoji used to draw terrain. Emoji carry their own
// colours, so remembered-but-unseen tiles use separate dim glyphs.
type TileSet struct {
	Wall, Floor, Door, Puddle, Exit string
	DimWall, DimFloor               string
}

// Backrooms is the yellow-wallpaper, damp-carpet tile set.
var Backrooms = TileSet{
	Wall:     "🟨",
	Floor:    "🟫",
	Door:     "🚪",
	Puddle:   "💧",
	Exit:     assets.GlyphExit,
	DimWall:  "🌑",
	DimFloor: "🔲",
}

// Glyph returns the glyph for kind, lit or remembered.
func (ts TileSet) Glyph(kind gamemap.TileKind, lit bool) string {
	switch kind {
	case gamemap.TileWall:
		if lit {
			return ts.Wall
		}
		return ts.DimWall
	case gamemap.TileDoor:
		return ts.Door
	case gamemap.TileExit:
		return ts.Exit
	case gamemap.TilePuddle:
		if lit {
			return ts.Puddle
		}
	}
	if lit {
		return ts.Floor
	}
	return ts.DimFloor
}
