package component

import (
	"asteroids/internal/ecs"

	"github.com/go-gl/mathgl/mgl32"
)

const CTransform ecs.ComponentType = 2

// Transform places an entity in the world. Z only orders drawing.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
}

// At returns an unrotated transform at the given position.
func At(pos mgl32.Vec3) Transform {
	return Transform{Translation: pos, Rotation: mgl32.QuatIdent()}
}

// Heading is the unit vector the entity faces (its local +X).
func (t Transform) Heading() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
}

func (Transform) Type() ecs.ComponentType { return CTransform }
