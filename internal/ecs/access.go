package ecs

import "fmt"

// AccessMode distinguishes read-only from mutable component bindings.
type AccessMode uint8

const (
	AccessRead AccessMode = iota
	AccessWrite
)

// ComponentAccess is one component slot declared by a query shape.
type ComponentAccess struct {
	Type     ComponentType
	Mode     AccessMode
	Optional bool
}

// Access is the full list of component slots a shape touches.
type Access []ComponentAccess

// Required returns the component types an entity must carry to match.
func (a Access) Required() []ComponentType {
	var out []ComponentType
	for _, c := range a {
		if !c.Optional {
			out = append(out, c.Type)
		}
	}
	return out
}

// AsOptional returns a copy of a with every slot marked optional.
func (a Access) AsOptional() Access {
	out := make(Access, len(a))
	for i, c := range a {
		c.Optional = true
		out[i] = c
	}
	return out
}

// Union merges alternative accesses. A type present in both keeps the
// stronger mode, and stays required only if both sides require it.
func (a Access) Union(b Access) Access {
	out := make(Access, 0, len(a)+len(b))
	out = append(out, a...)
	for _, c := range b {
		merged := false
		for i := range out {
			if out[i].Type != c.Type {
				continue
			}
			if c.Mode == AccessWrite {
				out[i].Mode = AccessWrite
			}
			out[i].Optional = out[i].Optional || c.Optional
			merged = true
			break
		}
		if !merged {
			out = append(out, c)
		}
	}
	return out
}

// Concat joins accesses that are bound at the same time (a tuple).
// Unlike Union it keeps duplicates so Validate can see them.
func (a Access) Concat(b Access) Access {
	out := make(Access, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Validate rejects shapes that would hand out a mutable binding aliased by
// another binding to the same component of the same entity.
func (a Access) Validate() error {
	for i := range a {
		for j := i + 1; j < len(a); j++ {
			if a[i].Type != a[j].Type {
				continue
			}
			if a[i].Mode == AccessWrite || a[j].Mode == AccessWrite {
				return fmt.Errorf("ecs: component %d bound mutably more than once", a[i].Type)
			}
		}
	}
	return nil
}
