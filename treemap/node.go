package treemap

import "slices"

// node is a single B+ tree node. Leaves hold keys with their parallel
// values slice and chain to the right sibling via next. Internal nodes
// hold routing keys and len(keys)+1 children.
//
// parent and next are navigation pointers only. Ownership flows
// strictly root to children: a node is live exactly while a child path
// from the root reaches it.
type node[K, V any] struct {
	leaf     bool
	keys     []K
	values   []V           // leaves only, values[i] belongs to keys[i]
	children []*node[K, V] // internal only
	parent   *node[K, V]   // nil for the root
	next     *node[K, V]   // leaf chain, nil for the rightmost leaf
}

func newLeaf[K, V any](key K, value V) *node[K, V] {
	return &node[K, V]{
		leaf:   true,
		keys:   []K{key},
		values: []V{value},
	}
}

// insertAt places key and value at index idx, keeping keys sorted and
// values parallel. Leaves only; the caller locates idx via binary
// search and must have ruled out a duplicate.
func (n *node[K, V]) insertAt(idx int, key K, value V) {
	n.keys = slices.Insert(n.keys, idx, key)
	n.values = slices.Insert(n.values, idx, value)
}

// childIndex returns the position of child c in n.children.
func (n *node[K, V]) childIndex(c *node[K, V]) int {
	return slices.Index(n.children, c)
}
