package probemap

import "errors"

var (
	// ErrNilKey is returned when a nil interface key is inserted.
	ErrNilKey = errors.New("nil key")
	// ErrInvalidCapacity is returned when the initial capacity isn't positive.
	ErrInvalidCapacity = errors.New("capacity must be positive")
	// ErrInvalidLoadFactor is returned when the load factor is outside of (0, 1].
	ErrInvalidLoadFactor = errors.New("load factor must be in (0, 1]")
	// ErrNilHashFunc is returned when a nil hash function is configured.
	ErrNilHashFunc = errors.New("hash function is nil")
	// ErrNilEqualFunc is returned when a nil equality function is configured.
	ErrNilEqualFunc = errors.New("equal function is nil")
	// ErrProbeExhausted means a probe visited every slot without finding room.
	// It's never returned: the table panics with it, since it can only happen
	// when the growth policy is broken.
	ErrProbeExhausted = errors.New("probe sequence exhausted")
	// ErrCapacityOverflow means doubling the capacity would overflow an int.
	// Like ErrProbeExhausted it's only used as a panic cause.
	ErrCapacityOverflow = errors.New("capacity overflow")
)
