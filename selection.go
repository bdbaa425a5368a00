package sift

import "iter"

// |||||| ELEMENT AT ||||||

// ElementAt returns the element at the zero-based index in visitation
// order. Visits at most index+1 elements. Fails with ErrIndexOutOfRange if
// index is negative or the sequence exhausts first.
func ElementAt[T any](seq iter.Seq[T], index int) (T, error) {
	var zero T
	if index < 0 {
		return zero, newSimpleErrorf(ErrIndexOutOfRange, "element at %d: index is negative", index)
	}
	i := 0
	for v := range seq {
		if i == index {
			return v, nil
		}
		i++
	}
	return zero, newSimpleErrorf(ErrIndexOutOfRange, "element at %d: sequence has only %d elements", index, i)
}

// |||||| FIRST ||||||

// First returns the first element satisfying pred, stopping the traversal
// at the match. Fails with ErrNoMatch if no element satisfies pred.
func First[T any](seq iter.Seq[T], pred Predicate[T]) (T, error) {
	for v := range seq {
		if pred(v) {
			return v, nil
		}
	}
	var zero T
	return zero, newSimpleError(ErrNoMatch, "first: no element satisfies the predicate")
}

// |||||| LAST ||||||

// Last returns the last element satisfying pred. The entire sequence is
// visited - any later element may still match, so no short-circuit is
// possible. Fails with ErrNoMatch if no element satisfies pred.
func Last[T any](seq iter.Seq[T], pred Predicate[T]) (T, error) {
	var (
		match T
		found bool
	)
	for v := range seq {
		if pred(v) {
			match, found = v, true
		}
	}
	if !found {
		return match, newSimpleError(ErrNoMatch, "last: no element satisfies the predicate")
	}
	return match, nil
}

// |||||| SINGLE ||||||

// Single returns the unique element satisfying pred. The scan continues
// past the first match to confirm no second one exists, but stops the
// moment a second match is found. Fails with ErrNoMatch when zero elements
// match and with ErrMultipleMatches when more than one does.
func Single[T any](seq iter.Seq[T], pred Predicate[T]) (T, error) {
	var (
		match T
		found bool
	)
	for v := range seq {
		if !pred(v) {
			continue
		}
		if found {
			var zero T
			return zero, newSimpleError(ErrMultipleMatches, "single: more than one element satisfies the predicate")
		}
		match, found = v, true
	}
	if !found {
		return match, newSimpleError(ErrNoMatch, "single: no element satisfies the predicate")
	}
	return match, nil
}
