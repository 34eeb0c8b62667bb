package probemap

import (
	"fmt"
	"math"
	"unsafe"
)

// CapacityFor returns the smallest capacity that holds n keys
// at the given load factor without growing.
// Panics if the load factor is outside of (0, 1] or the capacity
// doesn't fit in an int.
func CapacityFor(n int, loadFactor float64) int {
	if math.IsNaN(loadFactor) || loadFactor <= 0 || loadFactor > 1 {
		panic(fmt.Errorf("%w: %v", ErrInvalidLoadFactor, loadFactor))
	}

	n = max(n, 0)

	// Growth is triggered once floor(capacity*loadFactor) <= size.
	c := math.Ceil(float64(n+1) / loadFactor)
	if c >= math.MaxInt {
		panic(fmt.Errorf("%w: %d keys at load factor %v", ErrCapacityOverflow, n, loadFactor))
	}

	capacity := int(c)

	// Float rounding may leave us one off either way.
	for int(float64(capacity)*loadFactor) <= n {
		capacity++
	}

	for capacity > 1 && int(float64(capacity-1)*loadFactor) > n {
		capacity--
	}

	return capacity
}

// Estimates capacity (number of slots) from the given memory size in bytes.
func CapacityFromSize[K comparable, V any](size uintptr) int {
	return int(size / unsafe.Sizeof(slot[K, V]{}))
}
