package ranking

import "iter"

// Iterator is a lazy cursor over a Tree in descending order: highest score
// first, ties by ascending ID.
//
// The cursor holds an explicit stack of the nodes on the path to the next
// element, never more than the tree height. It reflects the tree structure
// at creation time and is not restartable; mutating the tree while a cursor
// is live is unsupported.
type Iterator struct {
	stack []*node
}

// Descending returns a cursor positioned before the greatest entry.
// The first Next costs O(log n); subsequent calls amortize to O(1).
func (t *Tree) Descending() *Iterator {
	it := &Iterator{stack: make([]*node, 0, height(t.root))}
	it.pushRight(t.root)
	return it
}

// pushRight descends along right children, stacking the path. The top of
// the stack is then the greatest unvisited entry of the subtree.
func (it *Iterator) pushRight(n *node) {
	for n != nil {
		it.stack = append(it.stack, n)
		n = n.right
	}
}

// HasNext reports whether another entry remains.
func (it *Iterator) HasNext() bool {
	return len(it.stack) > 0
}

// Next returns the next entry in descending order. The second return is
// false once the cursor is exhausted.
func (it *Iterator) Next() (Entry, bool) {
	if len(it.stack) == 0 {
		return Entry{}, false
	}
	n := it.stack[len(it.stack)-1]
	it.stack[len(it.stack)-1] = nil
	it.stack = it.stack[:len(it.stack)-1]
	if n.left != nil {
		it.pushRight(n.left)
	}
	return n.entry, true
}

// All returns a single-use iter.Seq over the remaining entries, for use
// with range. It consumes the cursor.
func (it *Iterator) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for {
			e, ok := it.Next()
			if !ok {
				return
			}
			if !yield(e) {
				return
			}
		}
	}
}
