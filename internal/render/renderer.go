package render

import (
	"cmp"
	"slices"

	"asteroids/internal/component"
	"asteroids/internal/ecs"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mattn/go-runewidth"
)

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer showing a world of the given extent.
func NewRenderer(screen tcell.Screen, extent mgl32.Vec2) *Renderer {
	cols, rows := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(extent, cols, rows),
	}
}

// Camera exposes the world-to-screen mapping.
func (r *Renderer) Camera() *Camera { return r.camera }

// DrawFrame clears the screen and draws every visible entity.
func (r *Renderer) DrawFrame(w *ecs.World) {
	r.camera.Resize(r.screen.Size())
	r.screen.Fill(' ', baseStyle)
	r.drawEntities(w)
}

type drawable struct {
	id     ecs.EntityID
	tf     component.Transform
	rend   component.Renderable
	extent ecs.Option[component.Extent]
}

// drawEntities renders all entities with Renderable + Transform, back to
// front by z, ties in creation order.
func (r *Renderer) drawEntities(w *ecs.World) {
	q := ecs.NewQuery(w, ecs.Join3(
		ecs.Read[component.Transform](),
		ecs.Read[component.Renderable](),
		ecs.Opt[component.Extent](),
	))
	var items []drawable
	for id, item := range q.Each() {
		items = append(items, drawable{id: id, tf: item.A, rend: item.B, extent: item.C})
	}
	slices.SortStableFunc(items, func(a, b drawable) int {
		return cmp.Compare(a.tf.Translation[2], b.tf.Translation[2])
	})

	for _, d := range items {
		style := baseStyle.Foreground(d.rend.FGColor)
		if d.rend.Glyph == 0 {
			// Ships are a single arrow at their centre.
			if sx, sy, ok := r.camera.WorldToScreen(d.tf.Translation); ok {
				r.putGlyph(sx, sy, ShipGlyph(d.tf.Heading()), style)
			}
			continue
		}
		ext, ok := d.extent.Get()
		if !ok {
			if sx, sy, ok := r.camera.WorldToScreen(d.tf.Translation); ok {
				r.putGlyph(sx, sy, d.rend.Glyph, style)
			}
			continue
		}
		x0, y0, x1, y1, ok := r.camera.BoxToScreen(d.tf.Translation, ext.Size)
		if !ok {
			continue
		}
		step := max(runewidth.RuneWidth(d.rend.Glyph), 1)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x += step {
				r.putGlyph(x, y, d.rend.Glyph, style)
			}
		}
	}
}

// putGlyph draws one rune at (x, y), padding the next column for wide runes.
func (r *Renderer) putGlyph(x, y int, glyph rune, style tcell.Style) {
	r.screen.SetContent(x, y, glyph, nil, style)
	if runewidth.RuneWidth(glyph) == 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
