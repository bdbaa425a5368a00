package sift

import "iter"

// Equal returns true if both sequences have the same length and
// pairwise-equal elements in order, under intrinsic equality. The sequences
// are compared lock-step and the comparison stops at the first mismatch or
// at whichever sequence exhausts first. Each source is visited at most
// once.
func Equal[T comparable](first, second iter.Seq[T]) bool {
	return EqualBy(first, second, Default[T]())
}

// EqualBy is Equal under a caller-supplied Rule.
func EqualBy[T any](first, second iter.Seq[T], rule Rule[T]) bool {
	next, stop := iter.Pull(second)
	defer stop()
	eq := true
	first(func(v T) bool {
		w, ok := next()
		if !ok || !rule.Equal(v, w) {
			eq = false
			return false
		}
		return true
	})
	if !eq {
		return false
	}
	// first exhausted without mismatch; second must be exhausted too.
	_, ok := next()
	return !ok
}
