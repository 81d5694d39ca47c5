package component

import "asteroids/internal/ecs"

const CAsteroid ecs.ComponentType = 4

// Asteroid marks a hazard that bullets can destroy.
type Asteroid struct{}

func (Asteroid) Type() ecs.ComponentType { return CAsteroid }
