package component

import (
	"asteroids/internal/ecs"

	"github.com/go-gl/mathgl/mgl32"
)

const CExtent ecs.ComponentType = 8

// Extent is the full width/height of the axis-aligned box used for
// collision tests, centred on the entity's translation.
type Extent struct {
	Size mgl32.Vec2
}

func (Extent) Type() ecs.ComponentType { return CExtent }
