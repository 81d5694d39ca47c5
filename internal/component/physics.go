package component

import (
	"asteroids/internal/ecs"

	"github.com/go-gl/mathgl/mgl32"
)

const CPhysics ecs.ComponentType = 1

// Physics is carried by every entity that moves or collides.
type Physics struct {
	Velocity mgl32.Vec3
	Mass     float32 // > 0
}

func (Physics) Type() ecs.ComponentType { return CPhysics }
