package component

import (
	"asteroids/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 10

// Renderable tells the presenter how to draw an entity's box.
// A zero Glyph means the ship arrow chosen from the heading.
type Renderable struct {
	Glyph   rune
	FGColor tcell.Color
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
