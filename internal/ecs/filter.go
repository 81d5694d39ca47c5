package ecs

// Filter narrows a query by component presence without binding any data.
type Filter interface {
	Match(w *World, id EntityID) bool
}

// requirer is implemented by filters that demand specific components, so
// the query can start from the smallest store.
type requirer interface {
	requires() []ComponentType
}

// With matches entities that carry C.
type With[C Component] struct{}

func (With[C]) Match(w *World, id EntityID) bool { return Has[C](w, id) }

func (With[C]) requires() []ComponentType { return []ComponentType{TypeOf[C]()} }

// Without matches entities that do not carry C.
type Without[C Component] struct{}

func (Without[C]) Match(w *World, id EntityID) bool { return !Has[C](w, id) }

type orFilter []Filter

func (o orFilter) Match(w *World, id EntityID) bool {
	for _, f := range o {
		if f.Match(w, id) {
			return true
		}
	}
	return false
}

// Or matches entities accepted by at least one of filters.
func Or(filters ...Filter) Filter { return orFilter(filters) }

type andFilter []Filter

func (a andFilter) Match(w *World, id EntityID) bool {
	for _, f := range a {
		if !f.Match(w, id) {
			return false
		}
	}
	return true
}

func (a andFilter) requires() []ComponentType {
	var out []ComponentType
	for _, f := range a {
		if r, ok := f.(requirer); ok {
			out = append(out, r.requires()...)
		}
	}
	return out
}

// And matches entities accepted by every filter. Useful inside Or.
func And(filters ...Filter) Filter { return andFilter(filters) }
