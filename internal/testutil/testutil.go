// Package testutil holds shared fixtures for the spec suites: sample
// sequence constructors, a single-use sequence guard, and predicate
// instrumentation.
package testutil

import (
	"fmt"
	"iter"
	"slices"

	"sift/internal/probe"
)

// Seq yields the given values in order. The sequence is re-traversable.
func Seq[T any](values ...T) iter.Seq[T] {
	return slices.Values(values)
}

// OneShot yields the given values in order exactly once and panics if a
// second traversal is started. It models sources that are consumable only
// once, so specs can prove an operation never re-visits its input.
func OneShot[T any](values ...T) iter.Seq[T] {
	spent := false
	return func(yield func(T) bool) {
		if spent {
			panic("testutil: one-shot sequence traversed twice")
		}
		spent = true
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

// CountedSeq wraps seq so every yielded element is recorded on c, which
// lets specs assert how far a traversal ran.
func CountedSeq[T any](c probe.Counter, seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			c.Inc()
			if !yield(v) {
				return
			}
		}
	}
}

// Counted wraps pred so every invocation is recorded on c.
func Counted[T any](c probe.Counter, pred func(T) bool) func(T) bool {
	return func(v T) bool {
		c.Inc()
		return pred(v)
	}
}

// SeqInts returns 0..n-1 as a re-traversable sequence.
func SeqInts(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// RepeatedStrings returns n strings drawn from a small alphabet, so the
// result carries plenty of duplicates.
func RepeatedStrings(n int) []string {
	s := make([]string, n)
	for i := range s {
		s[i] = fmt.Sprintf("v%d", i%16)
	}
	return s
}
