package probemap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// HashFunc maps a key to its 64-bit hash. It must be deterministic
// for the lifetime of a table and consistent with the table's EqualFunc:
// keys that are equal must hash equally.
type HashFunc[K comparable] func(K) uint64

// EqualFunc reports whether two keys are the same key.
type EqualFunc[K comparable] func(a, b K) bool

// MakeDefaultHashFunc returns a maphash based hash function for any comparable key.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// DefaultEqualFunc compares keys with ==.
func DefaultEqualFunc[K comparable](a, b K) bool {
	return a == b
}

// StringHash hashes string keys with xxhash. Unlike the default hash function
// it isn't seeded, so hashes are stable across processes.
func StringHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// isNilKey reports whether the key is a nil interface value.
// For non-interface key types it's always false.
func isNilKey[K comparable](key K) bool {
	return any(key) == nil
}
