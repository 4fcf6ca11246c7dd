// Package orderedset provides an indexable, ordered collection of
// comparable elements backed by the btree engine: O(log N) membership,
// positional access, and bidirectional range iteration, with optional
// duplicate elements steered by a configurable bias.
package orderedset

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/mnohosten/ordertree/internal/btree"
)

// Comparator orders two elements: negative if a < b, zero if equal,
// positive if a > b.
type Comparator[T any] func(a, b T) int

// Set is an ordered collection of elements of type T. The zero value is
// not usable; construct with New or Natural.
type Set[T any] struct {
	tree *btree.Tree[T, struct{}]
	cmp  Comparator[T]

	allowDuplicates bool
	insertBias      Bias
	lookupBias      Bias
	removeBias      Bias
	isReadOnly      bool
}

// New constructs an empty set with the given per-node capacity (must be
// greater than 2) and comparator.
func New[T any](capacity int, cmp Comparator[T]) *Set[T] {
	return &Set[T]{
		tree: btree.New[T, struct{}](capacity, btree.Comparator[T](cmp)),
		cmp:  cmp,
	}
}

// Natural constructs an empty set over an ordered element type, using its
// natural less-than order.
func Natural[T constraints.Ordered](capacity int) *Set[T] {
	return New[T](capacity, func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
}

// Comparer returns the set's element comparator.
func (s *Set[T]) Comparer() Comparator[T] { return s.cmp }

// Count returns the number of elements in the set.
func (s *Set[T]) Count() int { return s.tree.Count() }

// IsReadOnly reports whether the set currently rejects mutation.
func (s *Set[T]) IsReadOnly() bool { return s.isReadOnly }

// SetReadOnly toggles whether the set rejects mutation.
func (s *Set[T]) SetReadOnly(readOnly bool) { s.isReadOnly = readOnly }

// AllowDuplicates reports whether the set currently admits duplicate
// elements.
func (s *Set[T]) AllowDuplicates() bool { return s.allowDuplicates }

// SetAllowDuplicates toggles duplicate admission. Enabling it is always
// allowed; disabling it requires the set be empty.
func (s *Set[T]) SetAllowDuplicates(allow bool) error {
	if !allow && s.allowDuplicates && s.tree.Count() > 0 {
		return ErrAllowDuplicatesTransition
	}
	s.allowDuplicates = allow
	return nil
}

// InsertBias, LookupBias, RemoveBias return the bias currently applied to
// Add, Contains, and Remove respectively. The where* and index queries use
// fixed biases, and RemoveAt is positional.
func (s *Set[T]) InsertBias() Bias { return s.insertBias }
func (s *Set[T]) LookupBias() Bias { return s.lookupBias }
func (s *Set[T]) RemoveBias() Bias { return s.removeBias }

// SetInsertBias, SetLookupBias, SetRemoveBias configure the respective
// bias. When duplicates are disallowed, biases have no observable effect
// since no duplicate run can ever exist to steer within.
func (s *Set[T]) SetInsertBias(b Bias) { s.insertBias = b }
func (s *Set[T]) SetLookupBias(b Bias) { s.lookupBias = b }
func (s *Set[T]) SetRemoveBias(b Bias) { s.removeBias = b }

func (s *Set[T]) effectiveBias(b Bias) btree.Bias {
	if !s.allowDuplicates {
		return btree.BiasArbitrary
	}
	return b.engine()
}

// Add inserts x. If duplicates are disallowed and an equal element is
// already present, it returns ErrDuplicateKey. With duplicates allowed,
// insertBias steers where within an existing run the new element lands.
func (s *Set[T]) Add(x T) error {
	if s.isReadOnly {
		return ErrImmutableMutation
	}
	leaf, pos, found := s.tree.Find(x, s.effectiveBias(s.insertBias))
	if found {
		if !s.allowDuplicates {
			return btree.ErrDuplicateKey
		}
		if s.insertBias > 0 {
			pos++
		}
	}
	s.tree.Insert(x, struct{}{}, leaf, pos)
	return nil
}

// Remove deletes one occurrence of x, chosen by removeBias among any
// duplicate run, and reports whether an element was removed.
func (s *Set[T]) Remove(x T) (bool, error) {
	if s.isReadOnly {
		return false, ErrImmutableMutation
	}
	leaf, pos, found := s.tree.Find(x, s.effectiveBias(s.removeBias))
	if !found {
		return false, nil
	}
	s.tree.Remove(leaf, pos)
	return true, nil
}

// Clear removes every element.
func (s *Set[T]) Clear() error {
	if s.isReadOnly {
		return ErrImmutableMutation
	}
	s.tree.Clear()
	return nil
}

// Contains reports whether x is present. The configured lookupBias has no
// effect on the boolean result — it exists so Contains exercises the same
// Find path a caller would use to then act on the match's position.
func (s *Set[T]) Contains(x T) bool {
	_, _, found := s.tree.Find(x, s.effectiveBias(s.lookupBias))
	return found
}

// At returns the element at the given 0-based rank in ascending order.
func (s *Set[T]) At(index int) (T, error) {
	var zero T
	if index < 0 || index >= s.tree.Count() {
		return zero, btree.ErrIndexOutOfRange
	}
	leaf, pos := s.tree.LeafAt(index)
	k, _ := btree.EntryAt(leaf, pos)
	return k, nil
}

// RemoveAt deletes the element at the given 0-based rank.
func (s *Set[T]) RemoveAt(index int) error {
	if s.isReadOnly {
		return ErrImmutableMutation
	}
	if index < 0 || index >= s.tree.Count() {
		return btree.ErrIndexOutOfRange
	}
	leaf, pos := s.tree.LeafAt(index)
	s.tree.Remove(leaf, pos)
	return nil
}

// FirstIndexWhereGreaterThan returns the rank of the first element
// strictly greater than x, skipping an entire run of elements equal to x
// when one exists. Find with tail bias lands on the run's last member, so
// one step past it is the first element past the whole run; when x is
// absent, Find's insertion position already is that index.
func (s *Set[T]) FirstIndexWhereGreaterThan(x T) int {
	leaf, pos, found := s.tree.Find(x, btree.BiasTail)
	idx := btree.RankOf(leaf, pos)
	if found {
		idx++
	}
	return idx
}

// LastIndexWhereLessThan returns the rank of the last element strictly
// less than x, skipping an entire run of elements equal to x when one
// exists. Find with head bias lands on the run's first member, so one
// step before it is the last element before the whole run; when x is
// absent, Find's insertion position already counts exactly the elements
// less than x, so the same decrement lands on the last lesser element.
func (s *Set[T]) LastIndexWhereLessThan(x T) int {
	leaf, pos, _ := s.tree.Find(x, btree.BiasHead)
	return btree.RankOf(leaf, pos) - 1
}

// WhereGreaterOrEqual yields every element >= x in ascending order.
func (s *Set[T]) WhereGreaterOrEqual(x T) iter.Seq[T] {
	leaf, pos, _ := s.tree.Find(x, btree.BiasHead)
	return seqKeys(s.tree.Forward(leaf, pos))
}

// WhereLessOrEqualBackwards yields every element <= x in descending order.
func (s *Set[T]) WhereLessOrEqualBackwards(x T) iter.Seq[T] {
	leaf, pos, found := s.tree.Find(x, btree.BiasTail)
	if !found {
		var ok bool
		leaf, pos, ok = btree.StepBackward(leaf, pos)
		if !ok {
			return func(func(T) bool) {}
		}
	}
	return seqKeys(s.tree.Backward(leaf, pos))
}

// WhereInRange yields every element x with lo <= x <= hi, in ascending
// order. It returns ErrInvalidRange if hi < lo.
func (s *Set[T]) WhereInRange(lo, hi T) (iter.Seq[T], error) {
	if s.cmp(hi, lo) < 0 {
		return nil, btree.ErrInvalidRange
	}
	leaf, pos, _ := s.tree.Find(lo, btree.BiasHead)
	return seqKeys(s.tree.RangeForward(leaf, pos, func(k T) bool {
		return s.cmp(k, hi) <= 0
	})), nil
}

// ForwardFromIndex yields every element from the given rank to the end,
// in ascending order.
func (s *Set[T]) ForwardFromIndex(index int) iter.Seq[T] {
	if index < 0 || index >= s.tree.Count() {
		return func(func(T) bool) {}
	}
	leaf, pos := s.tree.LeafAt(index)
	return seqKeys(s.tree.Forward(leaf, pos))
}

// BackwardFromIndex yields every element from the given rank back to the
// start, in descending order.
func (s *Set[T]) BackwardFromIndex(index int) iter.Seq[T] {
	if index < 0 || index >= s.tree.Count() {
		return func(func(T) bool) {}
	}
	leaf, pos := s.tree.LeafAt(index)
	return seqKeys(s.tree.Backward(leaf, pos))
}

// Iterate yields every element in ascending order.
func (s *Set[T]) Iterate() iter.Seq[T] {
	return s.ForwardFromIndex(0)
}

// CopyTo copies elements starting at offset into dst, in ascending order,
// until dst is exhausted or the set is, and returns the number copied.
func (s *Set[T]) CopyTo(dst []T, offset int) int {
	n := 0
	for x := range s.ForwardFromIndex(offset) {
		if n >= len(dst) {
			break
		}
		dst[n] = x
		n++
	}
	return n
}

// seqKeys drops the (always struct{}) value half of a key/value sequence.
func seqKeys[T any](seq iter.Seq2[T, struct{}]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := range seq {
			if !yield(k) {
				return
			}
		}
	}
}
