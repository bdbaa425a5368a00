package sift

import (
	"iter"

	"sift/internal/member"
)

// |||||| DISTINCT ||||||

// Distinct returns the elements of seq with duplicates dropped: the first
// occurrence of each distinct element survives, in original order. The
// result is freshly allocated and shares no storage with the input.
func Distinct[T comparable](seq iter.Seq[T]) []T {
	return DistinctBy(seq, Default[T]())
}

// DistinctBy is Distinct under a caller-supplied Rule.
func DistinctBy[T any](seq iter.Seq[T], rule Rule[T]) []T {
	seen := member.New(rule.Key, rule.Equal)
	var out []T
	for v := range seq {
		if seen.Add(v) {
			out = append(out, v)
		}
	}
	return out
}

// |||||| EXCEPT ||||||

// Except returns the elements of first that do not equal any element of
// second, in first's order, each distinct result emitted once. second is
// fully consumed before first is visited; each source is visited exactly
// once.
func Except[T comparable](first, second iter.Seq[T]) []T {
	return ExceptBy(first, second, Default[T]())
}

// ExceptBy is Except under a caller-supplied Rule.
func ExceptBy[T any](first, second iter.Seq[T], rule Rule[T]) []T {
	// Seeding the set with second both excludes its members and collapses
	// repeats within first.
	seen := member.New(rule.Key, rule.Equal)
	for v := range second {
		seen.Add(v)
	}
	var out []T
	for v := range first {
		if seen.Add(v) {
			out = append(out, v)
		}
	}
	return out
}

// |||||| INTERSECT ||||||

// Intersect returns the elements of first that equal some element of
// second, in first's order, each distinct result emitted once. second is
// fully consumed before first is visited; each source is visited exactly
// once.
func Intersect[T comparable](first, second iter.Seq[T]) []T {
	return IntersectBy(first, second, Default[T]())
}

// IntersectBy is Intersect under a caller-supplied Rule.
func IntersectBy[T any](first, second iter.Seq[T], rule Rule[T]) []T {
	have := member.New(rule.Key, rule.Equal)
	for v := range second {
		have.Add(v)
	}
	emitted := member.New(rule.Key, rule.Equal)
	var out []T
	for v := range first {
		if have.Has(v) && emitted.Add(v) {
			out = append(out, v)
		}
	}
	return out
}

// |||||| UNION ||||||

// Union returns the elements of first followed by the elements of second,
// in original order, with duplicates across both collapsed to the first
// occurrence overall. Each source is visited exactly once, first before
// second.
func Union[T comparable](first, second iter.Seq[T]) []T {
	return UnionBy(first, second, Default[T]())
}

// UnionBy is Union under a caller-supplied Rule.
func UnionBy[T any](first, second iter.Seq[T], rule Rule[T]) []T {
	seen := member.New(rule.Key, rule.Equal)
	var out []T
	for v := range first {
		if seen.Add(v) {
			out = append(out, v)
		}
	}
	for v := range second {
		if seen.Add(v) {
			out = append(out, v)
		}
	}
	return out
}
