package probemap

// Stats is a point-in-time snapshot of a table's occupancy.
type Stats struct {
	Size       int
	Capacity   int
	Threshold  int
	Tombstones int
	Resizes    int
	LoadFactor float64

	TombstonesCapacityRatio float32
	TombstonesSizeRatio     float32
}
