// Package lsm wraps Pebble (CockroachDB's LSM storage engine) behind
// the common Index interface so the in-memory structures have a
// disk-backed comparison point.
package lsm

import (
	"encoding/binary"
	"fmt"

	"github.com/btree-map-bench/bmap/index"
	"github.com/cockroachdb/pebble"
)

var _ index.Index = (*LSM)(nil)

type LSM struct {
	db *pebble.DB
}

// Open opens (or creates) a Pebble database at the given directory path.
func Open(dir string) (*LSM, error) {
	opts := &pebble.Options{
		MemTableSize:                16 << 20,
		MemTableStopWritesThreshold: 4,
		L0CompactionThreshold:       4,
		L0StopWritesThreshold:       12,
	}

	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("lsm: open: %w", err)
	}
	return &LSM{db: db}, nil
}

// Close cleanly shuts down Pebble, flushing any in-memory state.
func (l *LSM) Close() error {
	return l.db.Close()
}

// Insert inserts or updates the value for key.
func (l *LSM) Insert(key int64, value []byte) error {
	return l.db.Set(encodeKey(key), value, pebble.NoSync)
}

// Get retrieves the value for key. Returns nil if not found.
func (l *LSM) Get(key int64) ([]byte, error) {
	val, closer, err := l.db.Get(encodeKey(key))
	if err == pebble.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lsm: get: %w", err)
	}
	// val is only valid until closer.Close(), so we copy it.
	result := make([]byte, len(val))
	copy(result, val)
	closer.Close()
	return result, nil
}

// Scan returns an iterator over every key in ascending order.
func (l *LSM) Scan() (index.Iterator, error) {
	iter, err := l.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, fmt.Errorf("lsm: scan: %w", err)
	}
	iter.First()
	return &scanIterator{iter: iter, first: true}, nil
}

// encodeKey encodes an int64 as a big-endian 8-byte slice. Big-endian
// preserves sort order, which Pebble relies on.
func encodeKey(k int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(k))
	return b
}

type scanIterator struct {
	iter  *pebble.Iterator
	first bool
	key   int64
	val   []byte
	err   error
}

func (it *scanIterator) Next() bool {
	var valid bool
	if it.first {
		// iter.First() was already called in Scan(); just check validity.
		it.first = false
		valid = it.iter.Valid()
	} else {
		valid = it.iter.Next()
	}
	if !valid {
		return false
	}
	k := it.iter.Key()
	if len(k) != 8 {
		it.err = fmt.Errorf("lsm: unexpected key length %d", len(k))
		return false
	}
	it.key = int64(binary.BigEndian.Uint64(k))
	// Copy value — Pebble reuses the buffer on Next().
	v := it.iter.Value()
	it.val = make([]byte, len(v))
	copy(it.val, v)
	return true
}

func (it *scanIterator) Key() int64    { return it.key }
func (it *scanIterator) Value() []byte { return it.val }
func (it *scanIterator) Error() error  { return it.err }
func (it *scanIterator) Close() error  { return it.iter.Close() }
