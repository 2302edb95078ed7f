package treemap

import (
	"cmp"
	"math/rand"
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequentialInsertSplitsOrder4(t *testing.T) {
	m := intMap(t, 4)

	for k := 1; k <= 7; k++ {
		m.Put(k, "v")
		checkInvariants(t, m)
		require.Equal(t, k, m.Len())
	}

	// With order 4 the fourth insert overflows the root leaf, so the
	// tree has exactly two levels by now.
	require.Equal(t, 2, m.height())
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, m.Keys())
}

func TestRootLeafSplitPromotesSeparator(t *testing.T) {
	m := intMap(t, 4)
	for k := 1; k <= 4; k++ {
		m.Put(k, "v")
	}

	// h = order/2 = 2: left leaf [1,2], right leaf [3,4], separator 3
	// copied up. The separator still lives in the right leaf.
	require.Equal(t, 2, m.height())
	require.Equal(t, []int{3}, m.root.keys)
	require.Equal(t, []int{1, 2}, m.root.children[0].keys)
	require.Equal(t, []int{3, 4}, m.root.children[1].keys)

	// A lookup of the separator key itself must route right and hit.
	v, err := m.Get(3)
	require.NoError(t, err)
	require.Equal(t, "v", v)
	checkInvariants(t, m)
}

func TestLeafChainSplicedAcrossSplits(t *testing.T) {
	m := intMap(t, 4)
	for k := 1; k <= 20; k++ {
		m.Put(k, "v")
	}

	// Walk the chain directly: every leaf reachable, strictly ordered,
	// no leaf skipped by a split.
	var keys []int
	for leaf := m.leftmostLeaf(); leaf != nil; leaf = leaf.next {
		keys = append(keys, leaf.keys...)
	}
	require.Len(t, keys, 20)
	require.True(t, slices.IsSorted(keys))
}

func TestInternalSplitRedistributesChildren(t *testing.T) {
	// Order 3 splits eagerly, so a few dozen inserts cascade well past
	// one internal level. Every key staying reachable proves the
	// internal splits carried their children along.
	m := intMap(t, 3)
	const n = 64
	for k := 1; k <= n; k++ {
		m.Put(k, "v")
		checkInvariants(t, m)
	}
	require.GreaterOrEqual(t, m.height(), 3)

	for k := 1; k <= n; k++ {
		v, err := m.Get(k)
		require.NoError(t, err, "key %d unreachable after internal splits", k)
		require.Equal(t, "v", v)
	}
}

func TestDescendingInsert(t *testing.T) {
	m := intMap(t, 4)
	for k := 100; k >= 1; k-- {
		m.Put(k, "v")
	}
	checkInvariants(t, m)
	require.Equal(t, 100, m.Len())

	keys := m.Keys()
	for i, k := range keys {
		require.Equal(t, i+1, k)
	}
}

func TestRandomizedInsertMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	orders := []int{3, 4, 5, 16}

	for _, order := range orders {
		m, err := NewWithOrder[int, int](order, cmp.Compare[int])
		require.NoError(t, err)
		ref := make(map[int]int)

		for i := 0; i < 2000; i++ {
			k := rng.Intn(500) // collisions exercise overwrite
			v := rng.Int()
			m.Put(k, v)
			ref[k] = v
		}
		checkInvariants(t, m)
		require.Equal(t, len(ref), m.Len(), "order %d", order)

		want := make([]int, 0, len(ref))
		for k := range ref {
			want = append(want, k)
		}
		sort.Ints(want)
		require.Equal(t, want, m.Keys(), "order %d", order)

		for k, v := range ref {
			got, err := m.Get(k)
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
	}
}
