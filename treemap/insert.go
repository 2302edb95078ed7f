package treemap

import "slices"

// Put stores value under key and returns value. Inserting into an
// empty map creates the root leaf. A key that already exists has its
// value overwritten in place with no structural change. Otherwise the
// pair goes into the owning leaf in sorted position, splitting
// bottom-up if the leaf overflows.
func (m *Map[K, V]) Put(key K, value V) V {
	if m.root == nil {
		m.root = newLeaf(key, value)
		m.count = 1
		return value
	}

	leaf := m.findLeaf(key)
	idx, found := slices.BinarySearchFunc(leaf.keys, key, m.cmp)
	if found {
		leaf.values[idx] = value
		return value
	}

	leaf.insertAt(idx, key, value)
	m.count++
	if len(leaf.keys) >= m.order {
		m.split(leaf)
	}
	return value
}

// split resolves an overflow at n, whose key count has reached the
// tree order. n keeps the left half in place (so the predecessor
// leaf's next pointer stays valid) and a new right sibling takes the
// rest. The separator promoted into the parent is the first key of the
// right half: copied up for a leaf, whose keys never leave the leaf
// level, moved up for an internal node, which keeps one key fewer
// than children. Splitting the root grows the tree by one level;
// otherwise the promotion may cascade.
func (m *Map[K, V]) split(n *node[K, V]) {
	h := m.order / 2
	right := &node[K, V]{leaf: n.leaf, parent: n.parent}

	var sep K
	if n.leaf {
		right.keys = slices.Clone(n.keys[h:])
		right.values = slices.Clone(n.values[h:])
		n.keys = n.keys[:h]
		n.values = n.values[:h]

		// Splice right into the leaf chain after n.
		right.next = n.next
		n.next = right

		sep = right.keys[0]
	} else {
		sep = n.keys[h]
		right.keys = slices.Clone(n.keys[h+1:])
		right.children = slices.Clone(n.children[h+1:])
		for _, c := range right.children {
			c.parent = right
		}
		n.keys = n.keys[:h]
		n.children = n.children[:h+1]
	}

	parent := n.parent
	if parent == nil {
		// n was the root; grow by one level.
		m.root = &node[K, V]{
			keys:     []K{sep},
			children: []*node[K, V]{n, right},
		}
		n.parent = m.root
		right.parent = m.root
		return
	}

	i := parent.childIndex(n)
	parent.children = slices.Insert(parent.children, i+1, right)
	parent.keys = slices.Insert(parent.keys, i, sep)
	if len(parent.keys) >= m.order {
		m.split(parent)
	}
}
