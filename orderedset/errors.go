package orderedset

import "errors"

var (
	// ErrImmutableMutation is returned by a write attempted while the set
	// is marked read-only.
	ErrImmutableMutation = errors.New("orderedset: set is read-only")

	// ErrAllowDuplicatesTransition is returned disabling duplicates on a
	// non-empty set.
	ErrAllowDuplicatesTransition = errors.New("orderedset: cannot disable duplicates on a non-empty set")
)
