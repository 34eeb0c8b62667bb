package probemap

import (
	"fmt"
	"hash/maphash"
	"iter"
	"math"

	"github.com/homier/probemap/internal/assert"
)

const (
	DefaultCapacity   = 1000
	DefaultLoadFactor = 0.5
)

type config[K comparable] struct {
	capacity   int
	loadFactor float64
	hashFunc   HashFunc[K]
	equalFunc  EqualFunc[K]

	err error
}

func (c *config[K]) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// Option configures a Map or a Set.
type Option[K comparable] func(c *config[K])

// Number of slots allocated up front. Defaults to DefaultCapacity.
func WithCapacity[K comparable](capacity int) Option[K] {
	return func(c *config[K]) {
		if capacity <= 0 {
			c.fail(fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity))
			return
		}

		c.capacity = capacity
	}
}

// Fraction of occupied slots that triggers growth. Defaults to DefaultLoadFactor.
func WithLoadFactor[K comparable](loadFactor float64) Option[K] {
	return func(c *config[K]) {
		if math.IsNaN(loadFactor) || loadFactor <= 0 || loadFactor > 1 {
			c.fail(fmt.Errorf("%w: %v", ErrInvalidLoadFactor, loadFactor))
			return
		}

		c.loadFactor = loadFactor
	}
}

// Override default hash function.
func WithHashFunc[K comparable](f HashFunc[K]) Option[K] {
	return func(c *config[K]) {
		if f == nil {
			c.fail(ErrNilHashFunc)
			return
		}

		c.hashFunc = f
	}
}

// Override default key equality.
func WithEqualFunc[K comparable](f EqualFunc[K]) Option[K] {
	return func(c *config[K]) {
		if f == nil {
			c.fail(ErrNilEqualFunc)
			return
		}

		c.equalFunc = f
	}
}

// table is a linear probing open addressing hash table.
// Deleted entries leave tombstones behind, which keep probe chains
// intact and are only dropped when the table grows.
type table[K comparable, V any] struct {
	slots []slot[K, V]

	capacity   int
	threshold  int
	size       int
	tombstones int
	resizes    int
	loadFactor float64

	hashFunc  HashFunc[K]
	equalFunc EqualFunc[K]
}

func (t *table[K, V]) init(opts ...Option[K]) error {
	c := config[K]{
		capacity:   DefaultCapacity,
		loadFactor: DefaultLoadFactor,
		equalFunc:  DefaultEqualFunc[K],
	}

	for _, opt := range opts {
		opt(&c)
	}

	if c.err != nil {
		return c.err
	}

	if c.hashFunc == nil {
		c.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}

	t.loadFactor = c.loadFactor
	t.hashFunc = c.hashFunc
	t.equalFunc = c.equalFunc
	t.swap(make([]slot[K, V], c.capacity))

	return nil
}

func (t *table[K, V]) swap(slots []slot[K, V]) {
	t.slots = slots
	t.capacity = len(slots)
	t.threshold = int(float64(t.capacity) * t.loadFactor)
}

func (t *table[K, V]) home(key K, capacity int) int {
	return int(t.hashFunc(key) % uint64(capacity))
}

// probe walks the key's probe sequence once.
// If the key is present, it returns its slot and true.
// Otherwise it returns the slot a new entry should go to: the first tombstone
// on the way, or the empty slot that ended the walk. It returns -1 only
// when every slot is occupied by other keys.
func (t *table[K, V]) probe(key K) (int, bool) {
	var (
		idx   = t.home(key, t.capacity)
		reuse = -1
	)

	for range t.capacity {
		s := &t.slots[idx]

		switch s.state {
		case slotEmpty:
			if reuse >= 0 {
				return reuse, false
			}

			return idx, false
		case slotTombstone:
			if reuse < 0 {
				reuse = idx
			}
		case slotOccupied:
			if t.equalFunc(s.key, key) {
				return idx, true
			}
		}

		if idx++; idx == t.capacity {
			idx = 0
		}
	}

	return reuse, false
}

func (t *table[K, V]) get(key K) (V, bool) {
	var emptyV V

	if t.capacity == 0 || isNilKey(key) {
		return emptyV, false
	}

	idx, found := t.probe(key)
	if !found {
		return emptyV, false
	}

	return t.slots[idx].value, true
}

// put inserts or overwrites the key.
// Returns the previous value and whether there was one.
func (t *table[K, V]) put(key K, value V) (V, bool, error) {
	var emptyV V

	if isNilKey(key) {
		return emptyV, false, ErrNilKey
	}

	// Zero value table, allocate with defaults.
	if t.capacity == 0 {
		_ = t.init()
	}

	idx, found := t.probe(key)
	if found {
		s := &t.slots[idx]
		prev := s.value
		s.value = value

		return prev, true, nil
	}

	assert.That(idx >= 0, ErrProbeExhausted,
		"no free slot for a new key (size %d, capacity %d)", t.size, t.capacity)

	s := &t.slots[idx]
	if s.isTombstone() {
		t.tombstones--
	}

	s.occupy(key, value)
	t.size++

	if t.size >= t.threshold {
		t.grow()
	}

	return emptyV, false, nil
}

func (t *table[K, V]) remove(key K) (V, bool) {
	var emptyV V

	if t.capacity == 0 || isNilKey(key) {
		return emptyV, false
	}

	idx, found := t.probe(key)
	if !found {
		return emptyV, false
	}

	value := t.slots[idx].bury()
	t.size--
	t.tombstones++

	return value, true
}

// grow doubles the capacity, moving every live entry into a fresh array.
// Tombstones are not carried over.
func (t *table[K, V]) grow() {
	assert.That(t.capacity <= math.MaxInt/2, ErrCapacityOverflow, "capacity %d", t.capacity)

	var (
		old   = t.slots
		slots = make([]slot[K, V], t.capacity*2)
	)

	for i := range old {
		s := &old[i]
		if !s.isOccupied() {
			continue
		}

		t.place(slots, s.key, s.value)
	}

	// Old entries now live in the new array, drop the references.
	clear(old)

	t.swap(slots)
	t.tombstones = 0
	t.resizes++
}

// place puts an entry known to be absent into the first empty slot
// of its probe sequence. The slots must not contain tombstones.
func (t *table[K, V]) place(slots []slot[K, V], key K, value V) {
	capacity := len(slots)
	idx := t.home(key, capacity)

	for range capacity {
		s := &slots[idx]
		if s.isEmpty() {
			s.occupy(key, value)
			return
		}

		if idx++; idx == capacity {
			idx = 0
		}
	}

	assert.That(false, ErrProbeExhausted, "resize into capacity %d", capacity)
}

// all yields live entries in slot order.
// The table must not be modified during iteration.
func (t *table[K, V]) all() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range t.slots {
			s := &t.slots[i]
			if !s.isOccupied() {
				continue
			}

			if !yield(s.key, s.value) {
				return
			}
		}
	}
}

func (t *table[K, V]) stats() Stats {
	stats := Stats{
		Size:       t.size,
		Capacity:   t.capacity,
		Threshold:  t.threshold,
		Tombstones: t.tombstones,
		Resizes:    t.resizes,
		LoadFactor: t.loadFactor,
	}

	if t.capacity > 0 {
		stats.TombstonesCapacityRatio = float32(t.tombstones) / float32(t.capacity)
	}
	if t.size > 0 {
		stats.TombstonesSizeRatio = float32(t.tombstones) / float32(t.size)
	}

	return stats
}
