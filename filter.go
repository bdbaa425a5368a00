package sift

import "iter"

// Where returns the elements of seq satisfying pred, order preserved, as a
// freshly allocated slice.
func Where[T any](seq iter.Seq[T], pred Predicate[T]) []T {
	var out []T
	for v := range seq {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// SkipWhile returns the elements of seq starting from the first one where
// pred is false. Once pred fails, every subsequent element is kept without
// consulting pred again. Empty if pred holds for the entire sequence.
func SkipWhile[T any](seq iter.Seq[T], pred Predicate[T]) []T {
	var (
		out      []T
		skipping = true
	)
	for v := range seq {
		if skipping && pred(v) {
			continue
		}
		skipping = false
		out = append(out, v)
	}
	return out
}
