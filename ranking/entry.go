package ranking

import (
	"cmp"
	"strings"
)

// Entry is one ranked element: an opaque slot reference, a score, and the
// identifier the score belongs to. Entries are immutable; updating a score
// means removing the old entry and inserting a freshly constructed one.
//
// Identity within a tree is (Score, ID). Slot is auxiliary and never
// consulted by the ordering.
type Entry struct {
	Slot  int32
	Score int64
	ID    string
}

// Compare orders entries for tree placement: score ascending, and on equal
// scores the lexicographically larger ID is considered smaller.
//
// The inverted tie-break places larger IDs further left so that a
// reverse-inorder traversal encounters the smaller ID first among tied
// scores. See the package documentation.
func Compare(a, b Entry) int {
	if c := cmp.Compare(a.Score, b.Score); c != 0 {
		return c
	}
	return strings.Compare(b.ID, a.ID)
}

// ComparePresentation orders entries the way results are presented: score
// descending, ties broken by ID ascending. Sorting with it yields exactly
// the sequence a descending traversal of a tree produces.
func ComparePresentation(a, b Entry) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}
