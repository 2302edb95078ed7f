// Package ordered adapts the B+ tree map to the benchmark Index
// interface with int64 keys and raw byte values.
package ordered

import (
	"cmp"
	"errors"

	"github.com/btree-map-bench/bmap/index"
	"github.com/btree-map-bench/bmap/treemap"
)

var _ index.Index = (*Index)(nil)

type Index struct {
	m *treemap.Map[int64, []byte]
}

// New returns an adapter over a tree of the given order.
func New(order int) (*Index, error) {
	m, err := treemap.NewWithOrder[int64, []byte](order, cmp.Compare[int64])
	if err != nil {
		return nil, err
	}
	return &Index{m: m}, nil
}

func (ix *Index) Insert(key int64, value []byte) error {
	ix.m.Put(key, value)
	return nil
}

// Get returns nil for an absent key, matching the other baselines.
func (ix *Index) Get(key int64) ([]byte, error) {
	v, err := ix.m.Get(key)
	if errors.Is(err, treemap.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (ix *Index) Scan() (index.Iterator, error) {
	return &scanIterator{it: ix.m.Iter()}, nil
}

func (ix *Index) Close() error { return nil }

type scanIterator struct {
	it *treemap.Iterator[int64, []byte]
}

func (s *scanIterator) Next() bool    { return s.it.Next() }
func (s *scanIterator) Key() int64    { return s.it.Key() }
func (s *scanIterator) Value() []byte { return s.it.Value() }
func (s *scanIterator) Error() error  { return nil }
func (s *scanIterator) Close() error  { return nil }
