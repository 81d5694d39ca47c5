package render

import (
	"testing"

	"asteroids/internal/component"
	"asteroids/internal/config"
	"asteroids/internal/ecs"
	"asteroids/internal/factory"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mattn/go-runewidth"
)

var testExtent = mgl32.Vec2{1280, 720}

// newSimScreen creates an initialized 160×48 simulation screen: one cell
// is 8×15 world units of the default window.
func newSimScreen() tcell.Screen {
	ss := tcell.NewSimulationScreen("UTF-8")
	_ = ss.Init()
	ss.SetSize(160, 48)
	return ss
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestCameraWorldToScreen(t *testing.T) {
	c := NewCamera(testExtent, 160, 48)
	cases := []struct {
		name    string
		p       mgl32.Vec3
		x, y    int
		visible bool
	}{
		{"origin", mgl32.Vec3{0, 0, 0}, 80, 24, true},
		{"top left", mgl32.Vec3{-640, 360, 0}, 0, 0, true},
		{"bottom right", mgl32.Vec3{639, -359, 0}, 159, 47, true},
		{"y is up", mgl32.Vec3{0, 30, 0}, 80, 22, true},
		{"off right", mgl32.Vec3{640, 0, 0}, 160, 24, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x, y, vis := c.WorldToScreen(tc.p)
			if x != tc.x || y != tc.y || vis != tc.visible {
				t.Fatalf("expected (%d,%d,%v), got (%d,%d,%v)", tc.x, tc.y, tc.visible, x, y, vis)
			}
		})
	}
}

func TestCameraBoxToScreen(t *testing.T) {
	c := NewCamera(testExtent, 160, 48)
	x0, y0, x1, y1, ok := c.BoxToScreen(mgl32.Vec3{}, mgl32.Vec2{48, 48})
	if !ok || x0 != 77 || x1 != 82 || y0 != 22 || y1 != 25 {
		t.Fatalf("expected cells 77..82 x 22..25, got %d..%d x %d..%d (ok=%v)", x0, x1, y0, y1, ok)
	}

	// Smaller than a cell still covers its centre cell.
	x0, y0, x1, y1, ok = c.BoxToScreen(mgl32.Vec3{4, -4, 0}, mgl32.Vec2{2, 2})
	if !ok || x0 != 80 || x1 != 80 || y0 != 24 || y1 != 24 {
		t.Fatalf("expected single cell (80,24), got %d..%d x %d..%d (ok=%v)", x0, x1, y0, y1, ok)
	}

	// Clipped at the left edge.
	x0, _, _, _, ok = c.BoxToScreen(mgl32.Vec3{-640, 0, 0}, mgl32.Vec2{48, 48})
	if !ok || x0 != 0 {
		t.Fatalf("expected clipping at column 0, got x0=%d ok=%v", x0, ok)
	}
}

func TestShipGlyph(t *testing.T) {
	cases := []struct {
		heading mgl32.Vec3
		want    rune
	}{
		{mgl32.Vec3{1, 0, 0}, '→'},
		{mgl32.Vec3{1, 1, 0}, '↗'},
		{mgl32.Vec3{0, 1, 0}, '↑'},
		{mgl32.Vec3{-1, 0, 0}, '←'},
		{mgl32.Vec3{0, -1, 0}, '↓'},
		{mgl32.Vec3{1, -1, 0}, '↘'},
	}
	for _, tc := range cases {
		if got := ShipGlyph(tc.heading); got != tc.want {
			t.Errorf("ShipGlyph(%v): expected %q, got %q", tc.heading, tc.want, got)
		}
	}
}

func TestDrawFrameEntities(t *testing.T) {
	cfg := config.Default()
	w := ecs.NewWorld()
	factory.NewShip(w, cfg, mgl32.Vec3{-320, 0, 0})
	factory.NewAsteroid(w, cfg, mgl32.Vec3{}, mgl32.Vec3{}, 64)

	s := newSimScreen()
	r := NewRenderer(s, testExtent)
	r.DrawFrame(w)
	s.Show()

	if got := runeAt(s, 40, 24); got != '→' {
		t.Errorf("expected ship arrow at (40,24), got %q", got)
	}
	for _, p := range [][2]int{{77, 22}, {80, 24}, {82, 25}} {
		if got := runeAt(s, p[0], p[1]); got != '#' {
			t.Errorf("expected asteroid at %v, got %q", p, got)
		}
	}
	if got := runeAt(s, 76, 24); got != ' ' {
		t.Errorf("expected empty cell left of asteroid, got %q", got)
	}
}

func TestDrawHUD(t *testing.T) {
	cfg := config.Default()
	w := ecs.NewWorld()
	ship := factory.Setup(w, cfg)
	board := ecs.NewQuery(w, ecs.Entity(), ecs.With[component.Scoreboard]{}).Entities()[0]
	ecs.Get[component.Text](w, board).Value = "Score: 7\nLives: 0"
	ecs.Get[component.PlayerShip](w, ship).Lives = 0

	s := newSimScreen()
	r := NewRenderer(s, testExtent)
	r.DrawFrame(w)
	r.DrawHUD(w)

	if got := runeAt(s, 1, 0); got != 'S' {
		t.Errorf("expected score line at row 0, got %q", got)
	}
	if got := runeAt(s, 1, 1); got != 'L' {
		t.Errorf("expected lives line at row 1, got %q", got)
	}
	x := (160 - runewidth.StringWidth(GameOverHint)) / 2
	if got := runeAt(s, x, 24); got != 'G' {
		t.Errorf("expected game over hint at (%d,24), got %q", x, got)
	}
}
