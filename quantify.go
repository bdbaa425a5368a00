package sift

import "iter"

// |||||| QUANTIFIERS ||||||

// All returns true if every element of seq satisfies pred. True on an empty
// sequence. Stops visiting at the first failing element.
func All[T any](seq iter.Seq[T], pred Predicate[T]) bool {
	for v := range seq {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Any returns true if some element of seq satisfies pred. False on an empty
// sequence. Stops visiting at the first satisfying element.
func Any[T any](seq iter.Seq[T], pred Predicate[T]) bool {
	for v := range seq {
		if pred(v) {
			return true
		}
	}
	return false
}

// Count returns the number of elements satisfying pred. The entire sequence
// is visited.
func Count[T any](seq iter.Seq[T], pred Predicate[T]) int {
	c := 0
	for v := range seq {
		if pred(v) {
			c++
		}
	}
	return c
}

// |||||| MEMBERSHIP ||||||

// Contains returns true if some element of seq equals value under intrinsic
// equality. Stops visiting at the first equal element.
func Contains[T comparable](seq iter.Seq[T], value T) bool {
	return ContainsBy(seq, value, Default[T]())
}

// ContainsBy is Contains under a caller-supplied Rule.
func ContainsBy[T any](seq iter.Seq[T], value T, rule Rule[T]) bool {
	for v := range seq {
		if rule.Equal(v, value) {
			return true
		}
	}
	return false
}
