package treemap

import "slices"

// findLeaf descends from the root to the unique leaf that contains key
// or would receive it on insert. At each internal node the child is the
// one whose key range brackets key; a key equal to a separator routes
// to the separator's right child, matching where inserts placed it.
//
// The caller must check for an empty tree first; findLeaf assumes a
// non-nil root.
func (m *Map[K, V]) findLeaf(key K) *node[K, V] {
	curr := m.root
	for !curr.leaf {
		i, found := slices.BinarySearchFunc(curr.keys, key, m.cmp)
		if found {
			i++
		}
		curr = curr.children[i]
	}
	return curr
}

// leftmostLeaf returns the head of the leaf chain, or nil for an empty
// tree.
func (m *Map[K, V]) leftmostLeaf() *node[K, V] {
	curr := m.root
	if curr == nil {
		return nil
	}
	for !curr.leaf {
		curr = curr.children[0]
	}
	return curr
}

// height returns the number of levels in the tree: 0 when empty, 1 for
// a lone root leaf. Used by tests and diagnostics.
func (m *Map[K, V]) height() int {
	h := 0
	for curr := m.root; curr != nil; {
		h++
		if curr.leaf {
			break
		}
		curr = curr.children[0]
	}
	return h
}
