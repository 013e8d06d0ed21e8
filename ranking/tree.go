package ranking

// node is a tree node owning its child subtrees. Rotations reassign child
// ownership; no parent links are kept.
type node struct {
	entry  Entry
	left   *node
	right  *node
	height int
}

// Tree is a self-balancing (AVL) binary search tree of Entries keyed by
// Compare. The balance invariant |height(left)-height(right)| <= 1 holds at
// every node before and after each public operation.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	root *node
	size int
}

// NewTree creates an empty Tree.
func NewTree() *Tree {
	return &Tree{}
}

// Len returns the number of entries in the tree.
func (t *Tree) Len() int {
	return t.size
}

// Max returns the greatest entry under the tree ordering, which is the
// first entry a descending traversal yields: highest score, smallest ID
// among ties. The second return is false if the tree is empty.
func (t *Tree) Max() (Entry, bool) {
	if t.root == nil {
		return Entry{}, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.entry, true
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func balance(n *node) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

func update(n *node) {
	n.height = 1 + max(height(n.left), height(n.right))
}

// rotateRight rebalances a left-heavy subtree and returns its new root.
func rotateRight(y *node) *node {
	x := y.left
	y.left = x.right
	x.right = y
	update(y)
	update(x)
	return x
}

// rotateLeft rebalances a right-heavy subtree and returns its new root.
func rotateLeft(x *node) *node {
	y := x.right
	x.right = y.left
	y.left = x
	update(x)
	update(y)
	return y
}

// Insert adds e to the tree. If an entry comparing equal to e already
// exists, its value is overwritten in place and the tree structure is
// untouched.
func (t *Tree) Insert(e Entry) {
	t.root = t.insert(t.root, e)
}

func (t *Tree) insert(n *node, e Entry) *node {
	if n == nil {
		t.size++
		return &node{entry: e, height: 1}
	}

	switch c := Compare(e, n.entry); {
	case c < 0:
		n.left = t.insert(n.left, e)
	case c > 0:
		n.right = t.insert(n.right, e)
	default:
		n.entry = e
		return n
	}

	update(n)

	// After an insert the violating case is identified by comparing the
	// inserted entry against the heavy child.
	if b := balance(n); b > 1 {
		if Compare(e, n.left.entry) < 0 {
			return rotateRight(n)
		}
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	} else if b < -1 {
		if Compare(e, n.right.entry) > 0 {
			return rotateLeft(n)
		}
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}
	return n
}

// Remove deletes the entry whose (Score, ID) matches e. Removing an absent
// entry is a no-op.
func (t *Tree) Remove(e Entry) {
	t.root = t.remove(t.root, e)
}

func (t *Tree) remove(n *node, e Entry) *node {
	if n == nil {
		return nil
	}

	switch c := Compare(e, n.entry); {
	case c < 0:
		n.left = t.remove(n.left, e)
	case c > 0:
		n.right = t.remove(n.right, e)
	default:
		if n.left == nil {
			t.size--
			return n.right
		}
		if n.right == nil {
			t.size--
			return n.left
		}
		// Two children: promote the in-order successor, then delete
		// it from its original position.
		succ := minNode(n.right)
		n.entry = succ.entry
		n.right = t.remove(n.right, succ.entry)
	}

	update(n)

	// After a removal no inserted value exists to compare against, so the
	// case is identified from the heavy child's own balance factor.
	if b := balance(n); b > 1 {
		if balance(n.left) >= 0 {
			return rotateRight(n)
		}
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	} else if b < -1 {
		if balance(n.right) <= 0 {
			return rotateLeft(n)
		}
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}
	return n
}

func minNode(n *node) *node {
	for n.left != nil {
		n = n.left
	}
	return n
}
