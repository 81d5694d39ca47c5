package component

import "asteroids/internal/ecs"

const CBullet ecs.ComponentType = 5

// Bullet marks a projectile. Lifetime accumulates elapsed seconds.
type Bullet struct {
	Lifetime float32
}

func (Bullet) Type() ecs.ComponentType { return CBullet }
