// Package member implements the working set behind the equality-sensitive
// operations: a membership set keyed by a caller-supplied key derivation,
// with key collisions settled by the caller's equality predicate.
package member

// Set tracks which elements have been seen under an equality relation.
// Elements bucket on their derived key; a bucket holds every distinct
// element sharing that key, so Equal only runs within a bucket. The zero
// Set is not usable - construct with New.
type Set[T any] struct {
	key     func(T) any
	equal   func(a, b T) bool
	buckets map[any][]T
}

// New opens an empty Set. key must derive identical keys for equal elements;
// equal settles collisions between key-equal elements.
func New[T any](key func(T) any, equal func(a, b T) bool) *Set[T] {
	return &Set[T]{key: key, equal: equal, buckets: make(map[any][]T)}
}

// Has returns true if an element equal to v is already in the set.
func (s *Set[T]) Has(v T) bool {
	for _, m := range s.buckets[s.key(v)] {
		if s.equal(m, v) {
			return true
		}
	}
	return false
}

// Add inserts v unless an equal element is already present. Returns true if
// v was inserted, false if it was already a member.
func (s *Set[T]) Add(v T) bool {
	k := s.key(v)
	for _, m := range s.buckets[k] {
		if s.equal(m, v) {
			return false
		}
	}
	s.buckets[k] = append(s.buckets[k], v)
	return true
}

// Len returns the number of distinct members.
func (s *Set[T]) Len() (n int) {
	for _, b := range s.buckets {
		n += len(b)
	}
	return n
}
