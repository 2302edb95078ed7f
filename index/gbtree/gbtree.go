// Package gbtree adapts github.com/google/btree, the ecosystem's
// standard in-memory B-tree, as a baseline. Unlike a B+ tree it keeps
// values in interior nodes and has no leaf chain, so its full scan
// descends the tree instead of walking a sibling list.
package gbtree

import (
	"github.com/btree-map-bench/bmap/index"
	"github.com/google/btree"
)

var _ index.Index = (*Index)(nil)

type pair struct {
	key int64
	val []byte
}

func lessPair(a, b pair) bool { return a.key < b.key }

type Index struct {
	tr *btree.BTreeG[pair]
}

// New returns a baseline over a B-tree of the given degree.
func New(degree int) *Index {
	return &Index{tr: btree.NewG(degree, lessPair)}
}

func (ix *Index) Insert(key int64, value []byte) error {
	ix.tr.ReplaceOrInsert(pair{key: key, val: value})
	return nil
}

// Get returns nil for an absent key, matching the other baselines.
func (ix *Index) Get(key int64) ([]byte, error) {
	p, ok := ix.tr.Get(pair{key: key})
	if !ok {
		return nil, nil
	}
	return p.val, nil
}

// Scan materializes the ascending walk up front; Ascend is
// callback-driven and cannot be suspended into a pull iterator.
func (ix *Index) Scan() (index.Iterator, error) {
	pairs := make([]pair, 0, ix.tr.Len())
	ix.tr.Ascend(func(p pair) bool {
		pairs = append(pairs, p)
		return true
	})
	return &scanIterator{pairs: pairs, cur: -1}, nil
}

func (ix *Index) Close() error { return nil }

type scanIterator struct {
	pairs []pair
	cur   int
}

func (it *scanIterator) Next() bool {
	it.cur++
	return it.cur < len(it.pairs)
}

func (it *scanIterator) Key() int64    { return it.pairs[it.cur].key }
func (it *scanIterator) Value() []byte { return it.pairs[it.cur].val }
func (it *scanIterator) Error() error  { return nil }
func (it *scanIterator) Close() error  { return nil }
