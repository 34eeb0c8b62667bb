package probemap

type slotState uint8

const (
	// Never occupied. Terminates every probe sequence.
	slotEmpty slotState = iota
	slotOccupied
	// Previously occupied. Skipped by lookups, reused by inserts.
	slotTombstone
)

// slot is a single cell of the backing array.
// key and value are only meaningful while the slot is occupied,
// a tombstone keeps them zeroed so the table doesn't retain references.
type slot[K comparable, V any] struct {
	state slotState
	key   K
	value V
}

func (s *slot[K, V]) isEmpty() bool {
	return s.state == slotEmpty
}

func (s *slot[K, V]) isOccupied() bool {
	return s.state == slotOccupied
}

func (s *slot[K, V]) isTombstone() bool {
	return s.state == slotTombstone
}

func (s *slot[K, V]) occupy(key K, value V) {
	s.state = slotOccupied
	s.key = key
	s.value = value
}

// bury turns an occupied slot into a tombstone and returns the value it held.
func (s *slot[K, V]) bury() V {
	var (
		emptyK K
		emptyV V
	)

	value := s.value
	s.state = slotTombstone
	s.key = emptyK
	s.value = emptyV

	return value
}
