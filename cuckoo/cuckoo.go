package cuckoo

import (
	"github.com/cespare/xxhash/v2"
)

const (
	// DefaultCapacity is the initial per-table capacity of a Map.
	// Large enough that typical workloads never resize.
	DefaultCapacity = 1 << 19

	// maxLoadFactor is the occupancy ratio above which the tables are
	// doubled before attempting an insertion.
	maxLoadFactor = 0.45

	// maxKicks bounds the eviction loop. Exceeding it is treated as a
	// cycle: the tables are doubled and the insertion is retried.
	maxKicks = 5000
)

// slot is a single key/value occupant of a table cell.
type slot struct {
	key   string
	value int32
}

// Map is a cuckoo hash map from string keys to int32 values.
//
// It maintains two parallel tables of equal capacity with at most one
// occupant per cell, addressed by two independent hash functions.
type Map struct {
	table1   []*slot
	table2   []*slot
	capacity int
	count    int
	resizes  int
	cycles   int
}

// New creates an empty Map with DefaultCapacity.
func New() *Map {
	return NewWithCapacity(DefaultCapacity)
}

// NewWithCapacity creates an empty Map with the given per-table capacity.
// Smaller capacities are mainly useful for exercising the resize path.
func NewWithCapacity(capacity int) *Map {
	if capacity < 1 {
		capacity = 1
	}
	return &Map{
		table1:   make([]*slot, capacity),
		table2:   make([]*slot, capacity),
		capacity: capacity,
	}
}

// hash1 addresses table1. It folds the high bits of the 64-bit xxhash into
// the low bits before reduction so that all of the digest participates in
// the table index.
func (m *Map) hash1(key string) int {
	h := xxhash.Sum64String(key)
	h += h >> 16
	return int(h % uint64(m.capacity))
}

// hash2 addresses table2. A base-31 rolling polynomial over the key bytes
// with a different blend, kept independent from hash1 so that a key's two
// candidate slots are uncorrelated.
func (m *Map) hash2(key string) int {
	var h int32
	for i := 0; i < len(key); i++ {
		h = h*31 + int32(key[i])
	}
	h += h / 2048
	idx := int(h) % m.capacity
	if idx < 0 {
		idx = -idx
	}
	return idx
}

// Put associates value with key, overwriting any previous value.
//
// If key is absent and either candidate slot is occupied, existing
// occupants are displaced along an eviction chain. A chain exceeding
// maxKicks triggers a resize and the insertion is retried, so Put always
// succeeds.
func (m *Map) Put(key string, value int32) {
	h1 := m.hash1(key)
	if s := m.table1[h1]; s != nil && s.key == key {
		s.value = value
		return
	}
	h2 := m.hash2(key)
	if s := m.table2[h2]; s != nil && s.key == key {
		s.value = value
		return
	}

	if float64(m.count) > maxLoadFactor*float64(m.capacity) {
		m.resize()
	}

	s := &slot{key: key, value: value}
	for {
		displaced, ok := m.insert(s)
		if ok {
			break
		}
		// Cycle detected. A failed eviction chain leaves exactly one
		// occupant in hand and everything else placed, so grow the
		// tables (migrating the placed occupants) and continue the
		// insertion with the occupant in hand: its key is in neither
		// table, so it re-enters the normal path without planting a
		// duplicate. Forward progress is guaranteed because capacity
		// grows unboundedly while the load factor stays low.
		m.cycles++
		m.resize()
		s = displaced
	}
	m.count++
}

// insert runs the bounded eviction loop, alternating between the two
// tables. If no empty slot was found within maxKicks it reports false and
// returns the occupant left in hand by the eviction chain.
func (m *Map) insert(s *slot) (*slot, bool) {
	for i := 0; i < maxKicks; i++ {
		h1 := m.hash1(s.key)
		if m.table1[h1] == nil {
			m.table1[h1] = s
			return nil, true
		}
		s, m.table1[h1] = m.table1[h1], s

		h2 := m.hash2(s.key)
		if m.table2[h2] == nil {
			m.table2[h2] = s
			return nil, true
		}
		s, m.table2[h2] = m.table2[h2], s
	}
	return s, false
}

// Get returns the value associated with key, or -1 if key is absent.
// Callers that need to distinguish a stored -1 should use Lookup.
func (m *Map) Get(key string) int32 {
	v, ok := m.Lookup(key)
	if !ok {
		return -1
	}
	return v
}

// Lookup returns the value associated with key and whether it is present.
func (m *Map) Lookup(key string) (int32, bool) {
	if s := m.table1[m.hash1(key)]; s != nil && s.key == key {
		return s.value, true
	}
	if s := m.table2[m.hash2(key)]; s != nil && s.key == key {
		return s.value, true
	}
	return 0, false
}

// Contains reports whether key is present.
func (m *Map) Contains(key string) bool {
	_, ok := m.Lookup(key)
	return ok
}

// Len returns the number of keys in the map.
func (m *Map) Len() int {
	return m.count
}

// Capacity returns the current per-table capacity.
func (m *Map) Capacity() int {
	return m.capacity
}

// Resizes returns how many times the tables have been doubled.
func (m *Map) Resizes() int {
	return m.resizes
}

// Cycles returns how many eviction cycles have been detected and recovered
// from via a resize.
func (m *Map) Cycles() int {
	return m.cycles
}

// resize doubles both tables and migrates every occupant by re-running the
// normal insertion path against the new capacity.
func (m *Map) resize() {
	old1, old2 := m.table1, m.table2
	m.capacity *= 2
	m.table1 = make([]*slot, m.capacity)
	m.table2 = make([]*slot, m.capacity)
	m.count = 0
	m.resizes++

	for _, s := range old1 {
		if s != nil {
			m.Put(s.key, s.value)
		}
	}
	for _, s := range old2 {
		// Keys are unique across both tables, so the containment
		// check cannot fire; it guards the invariant all the same.
		if s != nil && !m.Contains(s.key) {
			m.Put(s.key, s.value)
		}
	}
}
