package ecs

// EntityID uniquely identifies an entity in the world.
// IDs are minted in increasing order and never reused within a World.
type EntityID uint64

// NilEntity is the zero value. No live entity ever has it.
const NilEntity EntityID = 0

// ComponentType is a small integer key used to store/retrieve components.
type ComponentType uint8

// Component is implemented by every data struct stored in the world.
// Components are attached by pointer so query bindings can mutate them in place.
type Component interface {
	Type() ComponentType
}

// TypeOf returns the ComponentType of C without needing an instance.
func TypeOf[C Component]() ComponentType {
	var c C
	return c.Type()
}
