package ordereddict

import "errors"

var (
	// ErrImmutableMutation is returned by a write attempted while the
	// dictionary is marked read-only. Writes through the Keys view return
	// ErrUnsupported instead.
	ErrImmutableMutation = errors.New("ordereddict: dictionary is read-only")

	// ErrAllowDuplicatesTransition is returned disabling duplicate keys on
	// a non-empty dictionary.
	ErrAllowDuplicatesTransition = errors.New("ordereddict: cannot disable duplicate keys on a non-empty dictionary")

	// ErrUnsupported is returned by a mutation a view forbids outright,
	// such as removing through the Keys view.
	ErrUnsupported = errors.New("ordereddict: operation not supported on this view")
)
