package ecs

import "iter"

// Query iterates every entity whose component set matches a shape and a
// set of filters. Results come in creation order, which keeps systems that
// walk them deterministic.
type Query[T any] struct {
	world    *World
	fetch    Fetch[T]
	filters  []Filter
	required []ComponentType
}

// NewQuery builds a query over w. It panics if the shape binds the same
// component mutably more than once, since the store cannot hand out two
// live mutable bindings to one component.
func NewQuery[T any](w *World, fetch Fetch[T], filters ...Filter) *Query[T] {
	access := fetch.Access()
	if err := access.Validate(); err != nil {
		panic(err)
	}
	required := access.Required()
	for _, f := range filters {
		if r, ok := f.(requirer); ok {
			required = append(required, r.requires()...)
		}
	}
	return &Query[T]{
		world:    w,
		fetch:    fetch,
		filters:  filters,
		required: required,
	}
}

// candidates returns the ids worth testing, narrowed by required types.
func (q *Query[T]) candidates() []EntityID {
	if len(q.required) == 0 {
		return q.world.Entities()
	}
	return q.world.Query(q.required...)
}

// bind reports whether id currently matches and returns its binding.
func (q *Query[T]) bind(id EntityID) (T, bool) {
	if !q.world.Alive(id) {
		var zero T
		return zero, false
	}
	for _, f := range q.filters {
		if !f.Match(q.world, id) {
			var zero T
			return zero, false
		}
	}
	return q.fetch.Fetch(q.world, id)
}

// Each yields every matching entity with its binding. Candidates are fixed
// when iteration starts and re-checked just before each yield, so entities
// destroyed or changed by the loop body are skipped rather than faulted on.
func (q *Query[T]) Each() iter.Seq2[EntityID, T] {
	return func(yield func(EntityID, T) bool) {
		for _, id := range q.candidates() {
			v, ok := q.bind(id)
			if !ok {
				continue
			}
			if !yield(id, v) {
				return
			}
		}
	}
}

// Collect materialises every binding into a slice.
func (q *Query[T]) Collect() []T {
	var out []T
	for _, v := range q.Each() {
		out = append(out, v)
	}
	return out
}

// Entities returns the ids of every matching entity.
func (q *Query[T]) Entities() []EntityID {
	var out []EntityID
	for id := range q.Each() {
		out = append(out, id)
	}
	return out
}

// Count returns the number of matching entities.
func (q *Query[T]) Count() int {
	n := 0
	for range q.Each() {
		n++
	}
	return n
}
