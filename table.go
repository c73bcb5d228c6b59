// Package hashtable implements a string hash table with double hashing over a prime number of slots.
package hashtable

const (
	DefaultBaseSize = 53

	// Percentages of capacity.
	growThreshold   = 70
	shrinkThreshold = 10
)

type slotState uint8

const (
	// Zero value, so a freshly allocated slot array is all empty.
	slotEmpty slotState = iota
	slotTombstone
	slotOccupied
)

// key and value are only meaningful when state is slotOccupied.
type slot struct {
	state slotState
	key   string
	value string
}

// Table is a string to string hash table with open addressing.
// Collisions are resolved with double hashing over a prime number of slots,
// deletes leave tombstones behind, and the table grows or shrinks
// to keep its load factor between 10% and 70%.
//
// Table is not safe for concurrent use, see SyncTable.
type Table struct {
	slots []slot

	capacity    int
	baseSize    int
	minBaseSize int
	size        int
	tombstones  int

	prime1 uint64
	prime2 uint64

	grows       uint64
	shrinks     uint64
	compactions uint64
}

type Option func(t *Table)

// Override default hash primes. Both must be distinct primes, larger than
// any rune stored in a key.
func WithHashPrimes(p1, p2 uint64) Option {
	return func(t *Table) {
		t.prime1 = p1
		t.prime2 = p2
	}
}

// Returns a new table with the default base size.
func New(opts ...Option) *Table {
	return NewSized(DefaultBaseSize, opts...)
}

// Returns a new table with the given base size. The capacity is the
// next prime at or above it, and the table never shrinks below it.
// Base sizes below 1 are treated as 1.
func NewSized(baseSize int, opts ...Option) *Table {
	var t Table
	t.init(baseSize, opts...)

	return &t
}

func (t *Table) init(baseSize int, opts ...Option) {
	t.prime1 = DefaultPrime1
	t.prime2 = DefaultPrime2
	for _, opt := range opts {
		opt(t)
	}

	baseSize = max(baseSize, 1)
	t.minBaseSize = baseSize
	t.alloc(baseSize)
}

func (t *Table) alloc(baseSize int) {
	t.baseSize = baseSize
	t.capacity = NextPrime(baseSize)
	t.slots = make([]slot, t.capacity)
	t.size = 0
	t.tombstones = 0
}

// Number of live entries.
func (t *Table) Len() int {
	return t.size
}

// Number of slots, always prime.
func (t *Table) Capacity() int {
	return t.capacity
}

func (t *Table) loadFactor(n int) int {
	return n * 100 / t.capacity
}

func (t *Table) probeSeq(key string) probeSeq {
	return makeProbeSeq(key, uint64(t.capacity), t.prime1, t.prime2)
}

// Search returns the value stored under key.
func (t *Table) Search(key string) (string, bool) {
	seq := t.probeSeq(key)

	for range t.capacity {
		s := &t.slots[seq.index]
		switch s.state {
		case slotEmpty:
			return "", false
		case slotOccupied:
			if s.key == key {
				return s.value, true
			}
		}

		seq.next()
	}

	return "", false
}

// Insert puts value under key, replacing any previous value.
// Returns whether the key is new.
func (t *Table) Insert(key, value string) bool {
	// Resizing changes the probe sequence, so it has to happen first.
	// Tiny base sizes may need more than one doubling.
	for t.loadFactor(t.size+1) > growThreshold {
		t.resize(t.baseSize * 2)
	}

	// Too many tombstones would leave probe paths without an empty slot.
	if t.loadFactor(t.size+t.tombstones+1) > growThreshold {
		t.Compact()
	}

	return t.put(key, value)
}

func (t *Table) put(key, value string) bool {
	var (
		seq = t.probeSeq(key)

		target    *slot
		foundSlot bool
	)

probing:
	for range t.capacity {
		s := &t.slots[seq.index]

		switch s.state {
		case slotOccupied:
			// 1. Existing key
			if s.key == key {
				s.value = value
				return false
			}
		case slotTombstone:
			// 2. Remember the first reusable slot, the key may still be further down
			if !foundSlot {
				target = s
				foundSlot = true
			}
		case slotEmpty:
			// 3. Termination
			if !foundSlot {
				target = s
				foundSlot = true
			}

			break probing
		}

		seq.next()
	}

	if !foundSlot {
		// The load factor policy always leaves a free slot on every probe path.
		panic("hashtable: no free slot")
	}

	if target.state == slotTombstone {
		t.tombstones--
	}

	*target = slot{state: slotOccupied, key: key, value: value}
	t.size++

	return true
}

// Delete removes key from the table. Returns whether the key was present;
// deleting a missing key leaves the table untouched.
func (t *Table) Delete(key string) bool {
	if t.loadFactor(t.size) < shrinkThreshold {
		t.resize(t.baseSize / 2)
	}

	seq := t.probeSeq(key)

	for range t.capacity {
		s := &t.slots[seq.index]
		switch s.state {
		case slotEmpty:
			return false
		case slotOccupied:
			if s.key == key {
				// Tombstone keeps the probe chain of later keys intact
				*s = slot{state: slotTombstone}
				t.size--
				t.tombstones++

				return true
			}
		}

		seq.next()
	}

	return false
}

// resize rebuilds the table with the given base size. Shrinking below the
// initial base size is a no-op.
func (t *Table) resize(baseSize int) {
	if baseSize < t.minBaseSize {
		return
	}

	switch {
	case baseSize > t.baseSize:
		t.grows++
	case baseSize < t.baseSize:
		t.shrinks++
	}

	t.rebuild(baseSize)
}

// rebuild moves every live entry into a freshly allocated slot array,
// dropping tombstones. The table's fields are only replaced once the new
// array is complete.
func (t *Table) rebuild(baseSize int) {
	var nt Table
	nt.prime1 = t.prime1
	nt.prime2 = t.prime2
	nt.alloc(baseSize)

	for i := range t.slots {
		if s := &t.slots[i]; s.state == slotOccupied {
			nt.put(s.key, s.value)
		}
	}

	t.slots = nt.slots
	t.capacity = nt.capacity
	t.baseSize = nt.baseSize
	t.size = nt.size
	t.tombstones = 0
}

// Compact drops all tombstones by rehashing live entries into a table of
// the same size.
func (t *Table) Compact() {
	t.compactions++
	t.rebuild(t.baseSize)
}

// Reset removes every entry, keeping the current capacity.
func (t *Table) Reset() {
	clear(t.slots)

	t.size = 0
	t.tombstones = 0
}

func (t *Table) Stats() Stats {
	stats := Stats{
		Size:        t.size,
		Capacity:    t.capacity,
		BaseSize:    t.baseSize,
		Tombstones:  t.tombstones,
		LoadFactor:  t.loadFactor(t.size),
		Grows:       t.grows,
		Shrinks:     t.shrinks,
		Compactions: t.compactions,
	}

	stats.TombstonesCapacityRatio = float32(t.tombstones) / float32(t.capacity)
	if t.size > 0 {
		stats.TombstonesSizeRatio = float32(t.tombstones) / float32(t.size)
	}

	return stats
}
