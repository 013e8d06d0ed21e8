// Package ranking provides an AVL-balanced order-statistics tree over score
// entries, together with the composite ordering the tree is keyed on.
//
// # Ordering
//
// Entries are placed in the tree by Compare: score ascending, ties broken by
// identifier descending. The tie-break is deliberately inverted — among equal
// scores the larger identifier sits further left — so that a reverse-inorder
// walk (right, node, left) visits entries in presentation order: score
// descending, identifier ascending. ComparePresentation expresses that output
// order directly and is guaranteed to agree with a descending traversal.
//
// # Traversal
//
// Descending returns a lazy cursor backed by an explicit stack of at most
// O(log n) nodes. The first element costs O(log n); each subsequent element
// amortizes to O(1). The cursor reflects the tree at creation time; mutating
// the tree while a cursor is live is unsupported.
package ranking
