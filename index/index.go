// Package index defines the common interface the benchmark harness
// drives every ordered structure through. The surface is limited to
// what the B+ tree map under comparison supports: point insert, point
// lookup and a full ordered scan.
package index

// Index is an insert-only ordered key-value structure.
type Index interface {
	Insert(key int64, value []byte) error
	Get(key int64) ([]byte, error) // nil value when the key is absent
	Scan() (Iterator, error)       // all pairs in ascending key order
	Close() error
}

// Iterator walks scan results. Next reports false at the end or on
// error; check Error afterwards.
type Iterator interface {
	Next() bool
	Key() int64
	Value() []byte
	Error() error
	Close() error
}
