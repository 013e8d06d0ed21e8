package cuckoo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rankgo/util"
)

func TestPutGet(t *testing.T) {
	m := New()

	m.Put("alice", 1)
	m.Put("bob", 2)

	assert.Equal(t, int32(1), m.Get("alice"))
	assert.Equal(t, int32(2), m.Get("bob"))
	assert.Equal(t, 2, m.Len())

	// Missing keys report the sentinel.
	assert.Equal(t, int32(-1), m.Get("carol"))
	assert.False(t, m.Contains("carol"))

	v, ok := m.Lookup("alice")
	assert.True(t, ok)
	assert.Equal(t, int32(1), v)

	_, ok = m.Lookup("carol")
	assert.False(t, ok)
}

func TestPutOverwrite(t *testing.T) {
	m := New()

	m.Put("alice", 1)
	m.Put("alice", 7)
	m.Put("alice", -1)

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, int32(-1), m.Get("alice"))

	// A stored -1 is indistinguishable from a miss via Get;
	// Lookup disambiguates.
	v, ok := m.Lookup("alice")
	assert.True(t, ok)
	assert.Equal(t, int32(-1), v)
}

func TestEmptyKey(t *testing.T) {
	m := New()

	m.Put("", 42)

	assert.True(t, m.Contains(""))
	assert.Equal(t, int32(42), m.Get(""))
}

func TestResizeKeepsAllKeys(t *testing.T) {
	m := NewWithCapacity(16)

	const n = 5000
	for i := 0; i < n; i++ {
		m.Put(fmt.Sprintf("key-%d", i), int32(i))
	}
	// Overwrite half with new values after growth.
	for i := 0; i < n; i += 2 {
		m.Put(fmt.Sprintf("key-%d", i), int32(i+1))
	}

	require.Equal(t, n, m.Len())
	assert.GreaterOrEqual(t, m.Resizes(), 2)
	assert.GreaterOrEqual(t, m.Capacity(), 16*4)

	for i := 0; i < n; i++ {
		want := int32(i)
		if i%2 == 0 {
			want = int32(i + 1)
		}
		v, ok := m.Lookup(fmt.Sprintf("key-%d", i))
		require.True(t, ok, "key-%d lost after resize", i)
		require.Equal(t, want, v)
	}
}

func TestCapacityNeverShrinks(t *testing.T) {
	m := NewWithCapacity(32)

	prev := m.Capacity()
	for i := 0; i < 2000; i++ {
		m.Put(fmt.Sprintf("key-%d", i), int32(i))
		require.GreaterOrEqual(t, m.Capacity(), prev)
		prev = m.Capacity()
	}
}

func TestNoResizeBelowLoadFactor(t *testing.T) {
	m := NewWithCapacity(1 << 16)

	// Stay well under the 0.45 threshold.
	keys := util.NewRNG(1).GenerateKeys(10000)
	for i, k := range keys {
		m.Put(k, int32(i))
	}

	assert.Equal(t, 0, m.Resizes())
	assert.Equal(t, 1<<16, m.Capacity())
	for i, k := range keys {
		assert.Equal(t, int32(i), m.Get(k))
	}
}

func TestRandomizedAgainstMap(t *testing.T) {
	rng := util.NewRNG(4711)
	keys := rng.GenerateKeys(2048)

	m := NewWithCapacity(8)
	ref := make(map[string]int32)

	for i := 0; i < 50000; i++ {
		k := keys[rng.Intn(len(keys))]
		v := int32(rng.Intn(1 << 20))
		m.Put(k, v)
		ref[k] = v
	}

	require.Equal(t, len(ref), m.Len())
	for k, want := range ref {
		v, ok := m.Lookup(k)
		require.True(t, ok)
		require.Equal(t, want, v)
	}
	for _, k := range keys {
		_, inRef := ref[k]
		assert.Equal(t, inRef, m.Contains(k))
	}
}

func TestCycleRecoveryKeepsAllKeys(t *testing.T) {
	m := NewWithCapacity(8)

	// Three keys sharing both candidate cells make the eviction chain
	// rotate forever, forcing the cycle -> resize -> continue path.
	groups := make(map[[2]int][]string)
	var colliding []string
	for i := 0; len(colliding) == 0 && i < 100000; i++ {
		k := fmt.Sprintf("cyc-%d", i)
		p := [2]int{m.hash1(k), m.hash2(k)}
		groups[p] = append(groups[p], k)
		if len(groups[p]) == 3 {
			colliding = groups[p]
		}
	}
	require.Len(t, colliding, 3, "no colliding key triple found")

	for i, k := range colliding {
		m.Put(k, int32(i))
	}

	require.GreaterOrEqual(t, m.Cycles(), 1)
	require.GreaterOrEqual(t, m.Resizes(), 1)
	require.Equal(t, 3, m.Len())

	// Every key is retrievable with its value and occupies exactly one
	// slot across both tables.
	occupants := make(map[string]int)
	for _, s := range m.table1 {
		if s != nil {
			occupants[s.key]++
		}
	}
	for _, s := range m.table2 {
		if s != nil {
			occupants[s.key]++
		}
	}
	require.Equal(t, 3, len(occupants))

	for i, k := range colliding {
		v, ok := m.Lookup(k)
		require.True(t, ok, "%s lost after cycle recovery", k)
		require.Equal(t, int32(i), v)
		require.Equal(t, 1, occupants[k], "%s occupies %d slots", k, occupants[k])
	}
}

func TestHashFunctionsIndependent(t *testing.T) {
	m := NewWithCapacity(1 << 12)

	// If h1 and h2 were correlated, identical candidate pairs would
	// cluster and force early cycles. Count distinct pairings instead.
	keys := util.NewRNG(7).GenerateKeys(512)
	pairs := make(map[[2]int]struct{})
	for _, k := range keys {
		pairs[[2]int{m.hash1(k), m.hash2(k)}] = struct{}{}
	}

	assert.Greater(t, len(pairs), 500)
}
