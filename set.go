package probemap

import "iter"

// Set is a set of keys backed by the same table as Map.
// The zero value is an empty set with default options, allocated on first Add.
// Set is not safe for concurrent use.
type Set[K comparable] struct {
	table[K, struct{}]
}

// NewSet returns an empty set with DefaultCapacity and DefaultLoadFactor
// unless overridden by options.
func NewSet[K comparable](opts ...Option[K]) (*Set[K], error) {
	var s Set[K]
	if err := s.init(opts...); err != nil {
		return nil, err
	}

	return &s, nil
}

// MustNewSet is like NewSet but panics on invalid options.
func MustNewSet[K comparable](opts ...Option[K]) *Set[K] {
	s, err := NewSet(opts...)
	if err != nil {
		panic(err)
	}

	return s
}

// Add puts a key in the set. Returns whether the key is new.
func (s *Set[K]) Add(key K) (bool, error) {
	_, found, err := s.put(key, struct{}{})
	if err != nil {
		return false, err
	}

	return !found, nil
}

// Checks whether a key is in the set.
func (s *Set[K]) Has(key K) bool {
	_, ok := s.get(key)
	return ok
}

// Deletes a key from the set. Returns whether the key was present.
func (s *Set[K]) Delete(key K) bool {
	_, ok := s.remove(key)
	return ok
}

// Len returns the number of keys in the set.
func (s *Set[K]) Len() int {
	return s.size
}

// Capacity returns the number of slots in the backing array.
func (s *Set[K]) Capacity() int {
	return s.capacity
}

// All iterates over the set's keys in slot order.
// The set must not be modified while iterating.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.all() {
			if !yield(k) {
				return
			}
		}
	}
}

// Stats returns a snapshot of the set's occupancy.
func (s *Set[K]) Stats() Stats {
	return s.stats()
}
