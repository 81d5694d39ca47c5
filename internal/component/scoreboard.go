package component

import "asteroids/internal/ecs"

const CScoreboard ecs.ComponentType = 7

// Scoreboard counts destroyed asteroids. Only a reset lowers it.
type Scoreboard struct {
	Score int
}

func (Scoreboard) Type() ecs.ComponentType { return CScoreboard }
