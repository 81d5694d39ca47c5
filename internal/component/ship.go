package component

import "asteroids/internal/ecs"

const CPlayerShip ecs.ComponentType = 3

// PlayerShip marks the player-controlled avatar.
type PlayerShip struct {
	Lives int8
}

// LoseLife removes one life, never going below zero.
func (p *PlayerShip) LoseLife() {
	if p.Lives > 0 {
		p.Lives--
	}
}

func (PlayerShip) Type() ecs.ComponentType { return CPlayerShip }
