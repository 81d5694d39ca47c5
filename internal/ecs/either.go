package ecs

// Either is a tagged union holding exactly one of two bindings.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left wraps a value of the first alternative.
func Left[L, R any](v L) Either[L, R] { return Either[L, R]{left: v} }

// Right wraps a value of the second alternative.
func Right[L, R any](v R) Either[L, R] { return Either[L, R]{right: v, isRight: true} }

// Left returns the first alternative and whether it is the one held.
func (e Either[L, R]) Left() (L, bool) { return e.left, !e.isRight }

// Right returns the second alternative and whether it is the one held.
func (e Either[L, R]) Right() (R, bool) { return e.right, e.isRight }

// IsLeft reports whether the first alternative is held.
func (e Either[L, R]) IsLeft() bool { return !e.isRight }

type eitherFetch[L, R any] struct {
	left  Fetch[L]
	right Fetch[R]
}

// Access is the union of both sides, each optional, so an entity only has
// to satisfy one of them.
func (e eitherFetch[L, R]) Access() Access {
	return e.left.Access().AsOptional().Union(e.right.Access().AsOptional())
}

func (e eitherFetch[L, R]) Fetch(w *World, id EntityID) (Either[L, R], bool) {
	if v, ok := e.left.Fetch(w, id); ok {
		return Left[L, R](v), true
	}
	if v, ok := e.right.Fetch(w, id); ok {
		return Right[L](v), true
	}
	return Either[L, R]{}, false
}

// EitherOf combines two independently valid shapes. Each entity is bound as
// left if it satisfies left, otherwise as right if it satisfies right, and
// is excluded when it satisfies neither.
func EitherOf[L, R any](left Fetch[L], right Fetch[R]) Fetch[Either[L, R]] {
	return eitherFetch[L, R]{left: left, right: right}
}
