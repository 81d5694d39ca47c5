package ecs

// Fetch describes one query shape: which components it touches and how to
// bind them for a single entity. Fetch reports false when the entity does
// not satisfy the shape; that excludes the entity and is never an error.
type Fetch[T any] interface {
	Access() Access
	Fetch(w *World, id EntityID) (T, bool)
}

// Option is the binding of an optional slot.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] { return Option[T]{value: v, ok: true} }

// None is the absent marker.
func None[T any]() Option[T] { return Option[T]{} }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.ok }

type entityFetch struct{}

func (entityFetch) Access() Access { return nil }

func (entityFetch) Fetch(w *World, id EntityID) (EntityID, bool) {
	return id, w.Alive(id)
}

// Entity binds the entity handle itself.
func Entity() Fetch[EntityID] { return entityFetch{} }

type readFetch[C Component] struct{}

func (readFetch[C]) Access() Access {
	return Access{{Type: TypeOf[C](), Mode: AccessRead}}
}

func (readFetch[C]) Fetch(w *World, id EntityID) (C, bool) {
	p := Get[C](w, id)
	if p == nil {
		var zero C
		return zero, false
	}
	return *p, true
}

// Read binds a copy of component C. The entity must carry C.
func Read[C Component]() Fetch[C] { return readFetch[C]{} }

type writeFetch[C Component] struct{}

func (writeFetch[C]) Access() Access {
	return Access{{Type: TypeOf[C](), Mode: AccessWrite}}
}

func (writeFetch[C]) Fetch(w *World, id EntityID) (*C, bool) {
	p := Get[C](w, id)
	return p, p != nil
}

// Write binds a pointer to component C so it can be mutated in place.
func Write[C Component]() Fetch[*C] { return writeFetch[C]{} }

type maybeFetch[T any] struct {
	inner Fetch[T]
}

func (m maybeFetch[T]) Access() Access { return m.inner.Access().AsOptional() }

func (m maybeFetch[T]) Fetch(w *World, id EntityID) (Option[T], bool) {
	v, ok := m.inner.Fetch(w, id)
	if !ok {
		return None[T](), true
	}
	return Some(v), true
}

// Maybe makes any shape optional: entities that do not satisfy it still
// match and get an empty Option.
func Maybe[T any](f Fetch[T]) Fetch[Option[T]] { return maybeFetch[T]{inner: f} }

// Opt binds an optional copy of C.
func Opt[C Component]() Fetch[Option[C]] { return Maybe(Read[C]()) }

// OptMut binds an optional pointer to C.
func OptMut[C Component]() Fetch[Option[*C]] { return Maybe(Write[C]()) }

// Tuple2 is the binding produced by Join2.
type Tuple2[TA, TB any] struct {
	A TA
	B TB
}

// Tuple3 is the binding produced by Join3.
type Tuple3[TA, TB, TC any] struct {
	A TA
	B TB
	C TC
}

// Tuple4 is the binding produced by Join4.
type Tuple4[TA, TB, TC, TD any] struct {
	A TA
	B TB
	C TC
	D TD
}

type join2[TA, TB any] struct {
	a Fetch[TA]
	b Fetch[TB]
}

func (j join2[TA, TB]) Access() Access { return j.a.Access().Concat(j.b.Access()) }

func (j join2[TA, TB]) Fetch(w *World, id EntityID) (Tuple2[TA, TB], bool) {
	var t Tuple2[TA, TB]
	var ok bool
	if t.A, ok = j.a.Fetch(w, id); !ok {
		return t, false
	}
	if t.B, ok = j.b.Fetch(w, id); !ok {
		return t, false
	}
	return t, true
}

// Join2 binds two shapes at once; the entity must satisfy both.
func Join2[TA, TB any](a Fetch[TA], b Fetch[TB]) Fetch[Tuple2[TA, TB]] {
	return join2[TA, TB]{a: a, b: b}
}

type join3[TA, TB, TC any] struct {
	a Fetch[TA]
	b Fetch[TB]
	c Fetch[TC]
}

func (j join3[TA, TB, TC]) Access() Access {
	return j.a.Access().Concat(j.b.Access()).Concat(j.c.Access())
}

func (j join3[TA, TB, TC]) Fetch(w *World, id EntityID) (Tuple3[TA, TB, TC], bool) {
	var t Tuple3[TA, TB, TC]
	var ok bool
	if t.A, ok = j.a.Fetch(w, id); !ok {
		return t, false
	}
	if t.B, ok = j.b.Fetch(w, id); !ok {
		return t, false
	}
	if t.C, ok = j.c.Fetch(w, id); !ok {
		return t, false
	}
	return t, true
}

// Join3 binds three shapes at once.
func Join3[TA, TB, TC any](a Fetch[TA], b Fetch[TB], c Fetch[TC]) Fetch[Tuple3[TA, TB, TC]] {
	return join3[TA, TB, TC]{a: a, b: b, c: c}
}

type join4[TA, TB, TC, TD any] struct {
	a Fetch[TA]
	b Fetch[TB]
	c Fetch[TC]
	d Fetch[TD]
}

func (j join4[TA, TB, TC, TD]) Access() Access {
	return j.a.Access().Concat(j.b.Access()).Concat(j.c.Access()).Concat(j.d.Access())
}

func (j join4[TA, TB, TC, TD]) Fetch(w *World, id EntityID) (Tuple4[TA, TB, TC, TD], bool) {
	var t Tuple4[TA, TB, TC, TD]
	var ok bool
	if t.A, ok = j.a.Fetch(w, id); !ok {
		return t, false
	}
	if t.B, ok = j.b.Fetch(w, id); !ok {
		return t, false
	}
	if t.C, ok = j.c.Fetch(w, id); !ok {
		return t, false
	}
	if t.D, ok = j.d.Fetch(w, id); !ok {
		return t, false
	}
	return t, true
}

// Join4 binds four shapes at once.
func Join4[TA, TB, TC, TD any](a Fetch[TA], b Fetch[TB], c Fetch[TC], d Fetch[TD]) Fetch[Tuple4[TA, TB, TC, TD]] {
	return join4[TA, TB, TC, TD]{a: a, b: b, c: c, d: d}
}
