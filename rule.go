package sift

import (
	"strings"
	"unicode"
)

// |||||| RULE ||||||

// Rule is a pluggable equality relation over T. A Rule must be reflexive and
// symmetric. Key derives a comparable bucketing key that is consistent with
// Equal: two values that are Equal must derive identical keys. The converse
// is not required - values sharing a key are resolved with Equal.
//
// Rules are passed explicitly to every equality-sensitive operation, so a
// caller can override equality per call (e.g. plain vs case-insensitive)
// without any global configuration.
type Rule[T any] interface {
	Equal(a, b T) bool
	Key(v T) any
}

// NewRule assembles a Rule from an equality predicate and a key derivation.
// The caller is responsible for keeping the two consistent.
func NewRule[T any](equal func(a, b T) bool, key func(v T) any) Rule[T] {
	return rule[T]{equal: equal, key: key}
}

type rule[T any] struct {
	equal func(a, b T) bool
	key   func(v T) any
}

func (r rule[T]) Equal(a, b T) bool { return r.equal(a, b) }

func (r rule[T]) Key(v T) any { return r.key(v) }

// |||||| DEFAULT ||||||

// Default returns the intrinsic equality Rule for a comparable type: Equal
// is ==, and a value is its own key.
func Default[T comparable]() Rule[T] { return defaultRule[T]{} }

type defaultRule[T comparable] struct{}

func (defaultRule[T]) Equal(a, b T) bool { return a == b }

func (defaultRule[T]) Key(v T) any { return v }

// |||||| FOLD ||||||

// Fold returns a case-insensitive Rule over strings. Equality is Unicode
// simple case folding, and keys map every rune to the smallest rune in its
// fold orbit, so key equality coincides exactly with EqualFold.
func Fold() Rule[string] { return foldRule{} }

type foldRule struct{}

func (foldRule) Equal(a, b string) bool { return strings.EqualFold(a, b) }

func (foldRule) Key(v string) any { return foldKey(v) }

func foldKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(minFold(r))
	}
	return b.String()
}

// minFold walks the SimpleFold orbit of r and returns its smallest member.
// ToLower is not enough here: fold orbits can span runes with distinct
// lower-case forms (e.g. U+017F latin long s folds with 's' and 'S').
func minFold(r rune) rune {
	m := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < m {
			m = f
		}
	}
	return m
}
