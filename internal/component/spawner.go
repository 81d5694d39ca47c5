package component

import "asteroids/internal/ecs"

const CAsteroidSpawner ecs.ComponentType = 6

// AsteroidSpawner emits Amount asteroids every time Timer crosses the spawn
// interval. A OneTime spawner removes itself after its first emission.
type AsteroidSpawner struct {
	OneTime bool
	Amount  int
	Timer   float32
}

func (AsteroidSpawner) Type() ecs.ComponentType { return CAsteroidSpawner }
