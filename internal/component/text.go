package component

import "asteroids/internal/ecs"

const CText ecs.ComponentType = 9

// Text is a block of HUD text, one line per '\n'.
type Text struct {
	Value string
}

func (Text) Type() ecs.ComponentType { return CText }
