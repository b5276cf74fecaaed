package render

import "backrooms-crawl/internal/component"

// Camera translates between world coordinates and screen coordinates.
// World X is multiplied by 2 because emoji occupy 2 terminal columns.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera of the given view size.
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH}
}

// Center repositions the camera so that p is in the middle of the view.
func (c *Camera) Center(p component.Position) {
	c.OffsetX = p.X - c.ViewWidth/4
	c.OffsetY = p.Y - c.ViewHeight/2
}

// WorldToScreen converts a world tile to screen cell (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(p component.Position) (sx, sy int, visible bool) {
	sx = (p.X - c.OffsetX) * 2
	sy = p.Y - c.OffsetY
	visible = sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}
