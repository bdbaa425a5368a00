// Package sift implements a catalogue of generic algorithms over single-pass
// forward sequences: quantifiers, membership tests, set algebra, selection,
// and filtering, each parameterized by an optional equality Rule.
//
// A sequence is any iter.Seq[T] - something that can be visited once, in
// order, from start to end. The catalogue never assumes a sequence supports
// more than one traversal: two-source operations (Except, Intersect, Union,
// Equal) visit each of their sources exactly once. Operations that return a
// collection always return a freshly allocated slice that shares no storage
// with the input.
//
// Every function is pure and stateless. Concurrent callers are safe as long
// as the inputs themselves are not mutated mid-traversal.
//
// A simple membership check looks like the following:
//
//	words := slices.Values([]string{"a", "b", "B", "c"})
//	ok := sift.ContainsBy(words, "B", sift.Fold())
//
// Selection operations (ElementAt, First, Last, Single) return a typed Error
// when the sequence cannot satisfy them. Check the failure with
// IsErrorOfType:
//
//	v, err := sift.Single(seq, func(x int) bool { return x > 3 })
//	if sift.IsErrorOfType(err, sift.ErrMultipleMatches) {
//		// more than one element was > 3
//	}
package sift

// Predicate is a pure element test. The catalogue invokes a predicate once
// per visited element, in sequence order, and never more times than the
// documented short-circuiting behavior of the operation requires.
type Predicate[T any] func(T) bool
