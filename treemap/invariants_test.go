package treemap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariants validates the structural invariants of the tree:
// uniform leaf depth, per-node key bounds and ordering, child routing
// ranges, parent back-pointers, and a leaf chain that enumerates
// exactly Len() keys in strictly ascending order.
func checkInvariants[K, V any](t *testing.T, m *Map[K, V]) {
	t.Helper()

	if m.root == nil {
		require.Equal(t, 0, m.count, "empty tree must hold no entries")
		return
	}
	require.Nil(t, m.root.parent, "root must have no parent")

	leafDepth := -1
	var walk func(n *node[K, V], depth int)
	walk = func(n *node[K, V], depth int) {
		require.Less(t, len(n.keys), m.order, "node exceeds max key count")
		for i := 1; i < len(n.keys); i++ {
			require.Negative(t, m.cmp(n.keys[i-1], n.keys[i]),
				"keys within a node must be strictly ascending")
		}

		if n.leaf {
			require.Len(t, n.values, len(n.keys), "leaf values must parallel keys")
			require.Empty(t, n.children, "leaf must have no children")
			if leafDepth == -1 {
				leafDepth = depth
			}
			require.Equal(t, leafDepth, depth, "all leaves must sit at the same depth")
			return
		}

		require.Len(t, n.children, len(n.keys)+1, "internal node needs keys+1 children")
		require.Nil(t, n.next, "internal nodes do not join the leaf chain")
		for i, c := range n.children {
			require.Same(t, n, c.parent, "child must point back at its owner")
			for _, k := range c.keys {
				if i > 0 {
					require.GreaterOrEqual(t, m.cmp(k, n.keys[i-1]), 0,
						"child key below its left separator")
				}
				if i < len(n.keys) {
					require.Negative(t, m.cmp(k, n.keys[i]),
						"child key at or above its right separator")
				}
			}
			walk(c, depth+1)
		}
	}
	walk(m.root, 0)

	total := 0
	first := true
	var prev K
	for leaf := m.leftmostLeaf(); leaf != nil; leaf = leaf.next {
		require.True(t, leaf.leaf, "leaf chain reached an internal node")
		for _, k := range leaf.keys {
			if !first {
				require.Negative(t, m.cmp(prev, k),
					"leaf chain must be strictly ascending")
			}
			prev, first = k, false
			total++
		}
	}
	require.Equal(t, m.count, total, "leaf chain must enumerate every entry once")
}
