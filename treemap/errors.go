package treemap

import "errors"

var (
	// ErrInvalidOrder is returned by NewWithOrder for orders below 3.
	ErrInvalidOrder = errors.New("treemap: order must be at least 3")

	// ErrKeyNotFound is returned by Get when no mapping exists for the key.
	ErrKeyNotFound = errors.New("treemap: key not found")

	// ErrUnsupported is returned by the operations the structure
	// intentionally does not implement: Remove, PutAll, ContainsValue.
	ErrUnsupported = errors.New("treemap: unsupported operation")
)
