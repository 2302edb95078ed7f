// Package listindex is the simplest baseline: a sorted slice with
// binary search. Linear-time inserts make it the lower bound every
// tree structure should beat past trivial sizes.
package listindex

import (
	"slices"

	"github.com/btree-map-bench/bmap/index"
)

var _ index.Index = (*ListIndex)(nil)

type entry struct {
	key int64
	val []byte
}

type ListIndex struct {
	data []entry
}

func New() *ListIndex {
	return &ListIndex{data: make([]entry, 0)}
}

func compareEntry(e entry, key int64) int {
	switch {
	case e.key < key:
		return -1
	case e.key > key:
		return 1
	default:
		return 0
	}
}

func (l *ListIndex) Insert(key int64, value []byte) error {
	i, found := slices.BinarySearchFunc(l.data, key, compareEntry)
	if found {
		l.data[i].val = value
		return nil
	}
	l.data = slices.Insert(l.data, i, entry{key: key, val: value})
	return nil
}

// Get returns nil for an absent key, matching the other baselines.
func (l *ListIndex) Get(key int64) ([]byte, error) {
	i, found := slices.BinarySearchFunc(l.data, key, compareEntry)
	if !found {
		return nil, nil
	}
	return l.data[i].val, nil
}

func (l *ListIndex) Scan() (index.Iterator, error) {
	return &scanIterator{data: l.data, cur: -1}, nil
}

func (l *ListIndex) Close() error { return nil }

type scanIterator struct {
	data []entry
	cur  int
}

func (it *scanIterator) Next() bool {
	it.cur++
	return it.cur < len(it.data)
}

func (it *scanIterator) Key() int64    { return it.data[it.cur].key }
func (it *scanIterator) Value() []byte { return it.data[it.cur].val }
func (it *scanIterator) Error() error  { return nil }
func (it *scanIterator) Close() error  { return nil }
