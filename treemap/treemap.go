// Package treemap implements an in-memory key-value map sorted by a
// caller-supplied comparator, backed by a B+ tree.
//
// Internal nodes store only routing keys and child pointers. Leaf nodes
// store the actual key-value pairs and are linked left-to-right via a
// next pointer, so a full in-order traversal never revisits the tree.
//
// The map is not synchronized. Callers that share a Map across
// goroutines must serialize every mutating call externally.
package treemap

import (
	"fmt"
	"slices"
)

// DefaultOrder is the branching factor used by New.
const DefaultOrder = 16

// Comparator imposes a total order on keys. It returns a negative
// number when a < b, zero when a == b and a positive number when a > b.
// Two keys comparing equal are the same key as far as the map is
// concerned, even if they are distinct values.
type Comparator[K any] func(a, b K) int

// Entry is a single key-value pair.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Map is a comparator-ordered map backed by a B+ tree of the given
// order. The zero value is not usable; construct with New or
// NewWithOrder.
type Map[K, V any] struct {
	cmp   Comparator[K]
	order int // max children per internal node; a node splits at order keys
	root  *node[K, V]
	count int // number of key-value pairs
}

// New returns an empty map with the default order.
func New[K, V any](cmp Comparator[K]) *Map[K, V] {
	m, _ := NewWithOrder[K, V](DefaultOrder, cmp)
	return m
}

// NewWithOrder returns an empty map whose tree has the given order.
// Orders below 3 cannot satisfy the split invariants and are rejected
// with ErrInvalidOrder.
func NewWithOrder[K, V any](order int, cmp Comparator[K]) (*Map[K, V], error) {
	if order < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidOrder, order)
	}
	return &Map[K, V]{cmp: cmp, order: order}, nil
}

// Len returns the number of key-value pairs in the map.
func (m *Map[K, V]) Len() int {
	return m.count
}

// IsEmpty reports whether the map holds no pairs.
func (m *Map[K, V]) IsEmpty() bool {
	return m.root == nil
}

// ContainsKey reports whether a mapping for key exists.
func (m *Map[K, V]) ContainsKey(key K) bool {
	if m.root == nil {
		return false
	}
	leaf := m.findLeaf(key)
	_, found := slices.BinarySearchFunc(leaf.keys, key, m.cmp)
	return found
}

// Get returns the value mapped to key. It returns ErrKeyNotFound when
// no mapping exists, so a stored zero value is distinguishable from an
// absent key.
func (m *Map[K, V]) Get(key K) (V, error) {
	var zero V
	if m.root == nil {
		return zero, ErrKeyNotFound
	}
	leaf := m.findLeaf(key)
	idx, found := slices.BinarySearchFunc(leaf.keys, key, m.cmp)
	if !found {
		return zero, ErrKeyNotFound
	}
	return leaf.values[idx], nil
}

// Clear discards every mapping. The map is ready for reuse afterwards;
// clearing an empty map is a no-op.
func (m *Map[K, V]) Clear() {
	m.root = nil
	m.count = 0
}

// ─── Unsupported operations ───────────────────────────────────────────────────
//
// These are deliberate scope boundaries of the structure, not gaps:
// removal would require underflow rebalancing the tree does not
// implement, and value lookups have no index to run against. Each
// fails unconditionally with ErrUnsupported naming the operation.

// Remove always fails with ErrUnsupported; the tree implements no
// underflow rebalancing.
func (m *Map[K, V]) Remove(key K) (V, error) {
	var zero V
	return zero, fmt.Errorf("%w: Remove", ErrUnsupported)
}

// PutAll always fails with ErrUnsupported.
func (m *Map[K, V]) PutAll(entries []Entry[K, V]) error {
	return fmt.Errorf("%w: PutAll", ErrUnsupported)
}

// ContainsValue always fails with ErrUnsupported; query by key instead.
func (m *Map[K, V]) ContainsValue(value V) (bool, error) {
	return false, fmt.Errorf("%w: ContainsValue", ErrUnsupported)
}
