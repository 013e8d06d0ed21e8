package ranking

import (
	"testing"

	"github.com/hupe1980/rankgo/util"
)

func benchEntries(n int) []Entry {
	rng := util.NewRNG(1)
	ids := rng.GenerateKeys(n)
	scores := rng.GenerateScores(n, int64(n))

	entries := make([]Entry, n)
	for i := range entries {
		entries[i] = Entry{Slot: int32(i), Score: scores[i], ID: ids[i]}
	}
	return entries
}

func BenchmarkInsert(b *testing.B) {
	entries := benchEntries(1 << 16)

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		tree := NewTree()
		for _, e := range entries {
			tree.Insert(e)
		}
	}
}

func BenchmarkRemoveInsert(b *testing.B) {
	entries := benchEntries(1 << 16)

	tree := NewTree()
	for _, e := range entries {
		tree.Insert(e)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := entries[i&(len(entries)-1)]
		tree.Remove(e)
		tree.Insert(e)
	}
}

func BenchmarkDescendingTop10(b *testing.B) {
	entries := benchEntries(1 << 16)

	tree := NewTree()
	for _, e := range entries {
		tree.Insert(e)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := tree.Descending()
		for j := 0; j < 10; j++ {
			if _, ok := it.Next(); !ok {
				break
			}
		}
	}
}
