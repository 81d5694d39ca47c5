package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera maps the world rectangle (origin at the centre, y up) onto the
// terminal grid (origin top-left, rows down). The whole world is always in
// view, so one terminal cell covers Extent/Cols by Extent/Rows world units.
type Camera struct {
	Extent mgl32.Vec2 // world width/height
	Cols   int
	Rows   int
}

// NewCamera creates a camera showing extent on a cols×rows grid.
func NewCamera(extent mgl32.Vec2, cols, rows int) *Camera {
	return &Camera{Extent: extent, Cols: cols, Rows: rows}
}

// Resize follows a terminal size change.
func (c *Camera) Resize(cols, rows int) {
	c.Cols, c.Rows = cols, rows
}

// col and row return fractional grid coordinates.
func (c *Camera) col(x float32) float64 {
	return float64(x+c.Extent[0]/2) * float64(c.Cols) / float64(c.Extent[0])
}

func (c *Camera) row(y float32) float64 {
	return float64(c.Extent[1]/2-y) * float64(c.Rows) / float64(c.Extent[1])
}

// WorldToScreen converts a world point to the cell containing it.
// visible is false when the cell falls outside the grid.
func (c *Camera) WorldToScreen(p mgl32.Vec3) (sx, sy int, visible bool) {
	sx = int(math.Floor(c.col(p[0])))
	sy = int(math.Floor(c.row(p[1])))
	visible = sx >= 0 && sx < c.Cols && sy >= 0 && sy < c.Rows
	return
}

// BoxToScreen returns the inclusive cell range covered by a box centred on
// p, clipped to the grid. ok is false when nothing of it is on screen.
// Every box covers at least the cell holding its centre.
func (c *Camera) BoxToScreen(p mgl32.Vec3, size mgl32.Vec2) (x0, y0, x1, y1 int, ok bool) {
	half := size.Mul(0.5)
	x0 = int(math.Floor(c.col(p[0] - half[0])))
	x1 = int(math.Ceil(c.col(p[0]+half[0]))) - 1
	y0 = int(math.Floor(c.row(p[1] + half[1])))
	y1 = int(math.Ceil(c.row(p[1]-half[1]))) - 1

	cx, cy, _ := c.WorldToScreen(p)
	x0, x1 = min(x0, cx), max(x1, cx)
	y0, y1 = min(y0, cy), max(y1, cy)

	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, c.Cols-1), min(y1, c.Rows-1)
	return x0, y0, x1, y1, x0 <= x1 && y0 <= y1
}
