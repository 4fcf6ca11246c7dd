package btree

import "errors"

var (
	// ErrKeyNotFound is returned by a read of an absent key.
	ErrKeyNotFound = errors.New("btree: key not found")

	// ErrDuplicateKey is returned inserting a key that already exists into
	// a tree that does not allow duplicates.
	ErrDuplicateKey = errors.New("btree: duplicate key")

	// ErrIndexOutOfRange is returned by a positional operation given an
	// index outside [0, Count()).
	ErrIndexOutOfRange = errors.New("btree: index out of range")

	// ErrInvalidCapacity carries the message New panics with when given
	// C <= 2.
	ErrInvalidCapacity = errors.New("btree: capacity must be greater than 2")

	// ErrInvalidRange is returned by a range query whose upper bound
	// precedes its lower bound.
	ErrInvalidRange = errors.New("btree: invalid range, hi < lo")
)
