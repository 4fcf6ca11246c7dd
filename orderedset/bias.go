package orderedset

import "github.com/mnohosten/ordertree/internal/btree"

// Bias steers which member of a run of duplicate elements an operation
// selects or where a new element lands within that run.
type Bias int

const (
	// BiasHead selects/inserts at the first member of a run of duplicates.
	BiasHead Bias = -1
	// BiasArbitrary performs no duplicate-boundary adjustment.
	BiasArbitrary Bias = 0
	// BiasTail selects/inserts at the last member of a run of duplicates.
	BiasTail Bias = 1
)

func (b Bias) engine() btree.Bias { return btree.Bias(b) }
