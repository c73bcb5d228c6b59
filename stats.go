package hashtable

type Stats struct {
	Size       int
	Capacity   int
	BaseSize   int
	Tombstones int
	// Integer percentage, count * 100 / capacity.
	LoadFactor int

	TombstonesCapacityRatio float32
	TombstonesSizeRatio     float32

	Grows       uint64
	Shrinks     uint64
	Compactions uint64
}
