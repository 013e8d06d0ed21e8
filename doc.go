// Package rankgo provides an embedded, in-process ranking index engine.
//
// Rankgo maintains scored identifiers partitioned into categories and
// answers top-K queries per category under a composite ordering (score
// descending, identifier ascending on ties). It is built from two
// structures:
//
//   - cuckoo.Map: a two-table cuckoo hash map giving O(1) identifier
//     resolution (identifier -> category, identifier -> slot)
//   - ranking.Tree: an AVL order-statistics tree per category with a lazy
//     descending iterator for top-K retrieval
//
// # Quick Start
//
// Create a registry, register identifiers, and query rankings:
//
//	reg, err := rankgo.New(4) // categories 0..3
//	if err != nil {
//	    panic(err)
//	}
//
//	slot, err := reg.Register("alice", 0, 9200)
//	if err != nil {
//	    panic(err)
//	}
//	_ = slot
//
//	_, _ = reg.Register("bob", 0, 8700)
//
//	// Reposition an identifier after its score changes.
//	_ = reg.SetScore("bob", 9500)
//
//	// Highest score first; ties ordered by ascending identifier.
//	top, _ := reg.TopK(0, 10)
//	for _, e := range top {
//	    fmt.Println(e.ID, e.Score)
//	}
//
// # Semantics
//
// Scores are opaque int64 values supplied by the caller; rankgo never
// computes or adjusts them. Every score change is remove-then-reinsert in
// the category tree, so rankings are exact at all times. Lookup misses are
// reported as booleans or sentinel values, never as errors from the core
// structures.
//
// # Concurrency
//
// Registries and the underlying structures are single-threaded by design.
// Callers that share a Registry across goroutines must serialize access.
package rankgo
