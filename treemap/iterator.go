package treemap

// Iterator walks every pair in ascending key order by following the
// leaf chain. It is single-use and forward-only; structural mutation
// of the map during iteration invalidates it.
type Iterator[K, V any] struct {
	curr *node[K, V]
	i    int
	key  K
	val  V
}

// Iter returns an iterator positioned before the first pair.
func (m *Map[K, V]) Iter() *Iterator[K, V] {
	return &Iterator[K, V]{curr: m.leftmostLeaf()}
}

// Next advances to the following pair, reporting false once the chain
// is exhausted.
func (it *Iterator[K, V]) Next() bool {
	for it.curr != nil {
		if it.i < len(it.curr.keys) {
			it.key = it.curr.keys[it.i]
			it.val = it.curr.values[it.i]
			it.i++
			return true
		}
		it.curr = it.curr.next
		it.i = 0
	}
	return false
}

// Key returns the key at the current position.
func (it *Iterator[K, V]) Key() K { return it.key }

// Value returns the value at the current position.
func (it *Iterator[K, V]) Value() V { return it.val }

// Entries returns every pair in ascending key order.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, m.count)
	for it := m.Iter(); it.Next(); {
		entries = append(entries, Entry[K, V]{Key: it.Key(), Value: it.Value()})
	}
	return entries
}

// Keys returns every key in ascending order. Keys are unique, so the
// slice doubles as the key set.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.count)
	for it := m.Iter(); it.Next(); {
		keys = append(keys, it.Key())
	}
	return keys
}

// Values returns every value in the order of its key.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.count)
	for it := m.Iter(); it.Next(); {
		values = append(values, it.Value())
	}
	return values
}
