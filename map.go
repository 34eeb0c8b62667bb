package probemap

import "iter"

// Map is a hash map using open addressing with linear probing.
// Removed keys leave tombstones that keep probe chains intact until
// the map grows, growth doubles the capacity and never shrinks it.
// The zero value is an empty map with default options, allocated on first Put.
// Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	table[K, V]
}

// New returns an empty map with DefaultCapacity and DefaultLoadFactor
// unless overridden by options.
func New[K comparable, V any](opts ...Option[K]) (*Map[K, V], error) {
	var m Map[K, V]
	if err := m.init(opts...); err != nil {
		return nil, err
	}

	return &m, nil
}

// MustNew is like New but panics on invalid options.
func MustNew[K comparable, V any](opts ...Option[K]) *Map[K, V] {
	m, err := New[K, V](opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// Get returns the value stored for the key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.get(key)
}

// Put inserts or overwrites the key.
// Returns the previous value and whether the key was present.
func (m *Map[K, V]) Put(key K, value V) (V, bool, error) {
	return m.put(key, value)
}

// Set is Put without the previous value.
func (m *Map[K, V]) Set(key K, value V) error {
	_, _, err := m.put(key, value)
	return err
}

// Remove deletes the key, returning its value and whether it was present.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	return m.remove(key)
}

// Delete deletes the key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	_, ok := m.remove(key)
	return ok
}

// Len returns the number of keys in the map.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Capacity returns the number of slots in the backing array.
func (m *Map[K, V]) Capacity() int {
	return m.capacity
}

// All iterates over the map's entries in slot order.
// The map must not be modified while iterating.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.all()
}

// Stats returns a snapshot of the map's occupancy.
func (m *Map[K, V]) Stats() Stats {
	return m.stats()
}
