// Package ordereddict provides an indexable, ordered mapping from
// comparable keys to arbitrary values backed by the btree engine:
// O(log N) lookup, positional access, and bidirectional range iteration,
// plus read-only Keys and unordered Values collection views.
package ordereddict

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/mnohosten/ordertree/internal/btree"
)

// Comparator orders two keys: negative if a < b, zero if equal, positive
// if a > b.
type Comparator[K any] func(a, b K) int

// Dictionary is an ordered key/value mapping. The zero value is not
// usable; construct with New or NaturalKeys.
type Dictionary[K any, V any] struct {
	tree *btree.Tree[K, V]
	cmp  Comparator[K]

	allowDuplicates bool
	insertBias      Bias
	lookupBias      Bias
	removeBias      Bias
	isReadOnly      bool
}

// New constructs an empty dictionary with the given per-node capacity
// (must be greater than 2) and key comparator.
func New[K any, V any](capacity int, cmp Comparator[K]) *Dictionary[K, V] {
	return &Dictionary[K, V]{
		tree: btree.New[K, V](capacity, btree.Comparator[K](cmp)),
		cmp:  cmp,
	}
}

// NaturalKeys constructs an empty dictionary over an ordered key type,
// using its natural less-than order.
func NaturalKeys[K constraints.Ordered, V any](capacity int) *Dictionary[K, V] {
	return New[K, V](capacity, func(a, b K) int {
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

// Comparer returns the dictionary's key comparator.
func (d *Dictionary[K, V]) Comparer() Comparator[K] { return d.cmp }

// Count returns the number of entries in the dictionary.
func (d *Dictionary[K, V]) Count() int { return d.tree.Count() }

// IsReadOnly reports whether the dictionary currently rejects mutation.
func (d *Dictionary[K, V]) IsReadOnly() bool { return d.isReadOnly }

// SetReadOnly toggles whether the dictionary rejects mutation.
func (d *Dictionary[K, V]) SetReadOnly(readOnly bool) { d.isReadOnly = readOnly }

// AllowDuplicates reports whether the dictionary currently admits
// duplicate keys.
func (d *Dictionary[K, V]) AllowDuplicates() bool { return d.allowDuplicates }

// SetAllowDuplicates toggles duplicate-key admission. Enabling it is
// always allowed; disabling it requires the dictionary be empty.
func (d *Dictionary[K, V]) SetAllowDuplicates(allow bool) error {
	if !allow && d.allowDuplicates && d.tree.Count() > 0 {
		return ErrAllowDuplicatesTransition
	}
	d.allowDuplicates = allow
	return nil
}

// InsertBias, LookupBias, RemoveBias return the bias currently applied to
// Add, Get/TryGetValue/ContainsKey/Set, and Remove respectively. RemoveAt
// is positional and uses no bias.
func (d *Dictionary[K, V]) InsertBias() Bias { return d.insertBias }
func (d *Dictionary[K, V]) LookupBias() Bias { return d.lookupBias }
func (d *Dictionary[K, V]) RemoveBias() Bias { return d.removeBias }

// SetInsertBias, SetLookupBias, SetRemoveBias configure the respective
// bias.
func (d *Dictionary[K, V]) SetInsertBias(b Bias) { d.insertBias = b }
func (d *Dictionary[K, V]) SetLookupBias(b Bias) { d.lookupBias = b }
func (d *Dictionary[K, V]) SetRemoveBias(b Bias) { d.removeBias = b }

func (d *Dictionary[K, V]) effectiveBias(b Bias) btree.Bias {
	if !d.allowDuplicates {
		return btree.BiasArbitrary
	}
	return b.engine()
}

// Add inserts key/value. If duplicates are disallowed and an equal key is
// already present, it returns ErrDuplicateKey. With duplicates allowed,
// insertBias steers where within an existing run the new entry lands.
func (d *Dictionary[K, V]) Add(key K, value V) error {
	if d.isReadOnly {
		return ErrImmutableMutation
	}
	leaf, pos, found := d.tree.Find(key, d.effectiveBias(d.insertBias))
	if found {
		if !d.allowDuplicates {
			return btree.ErrDuplicateKey
		}
		if d.insertBias > 0 {
			pos++
		}
	}
	d.tree.Insert(key, value, leaf, pos)
	return nil
}

// Set upserts key/value: overwrites the value if key is already present
// (choosing lookupBias's member of any duplicate run), otherwise inserts
// a new entry.
func (d *Dictionary[K, V]) Set(key K, value V) error {
	if d.isReadOnly {
		return ErrImmutableMutation
	}
	leaf, pos, found := d.tree.Find(key, d.effectiveBias(d.lookupBias))
	if found {
		btree.SetEntryAt(leaf, pos, value)
		return nil
	}
	d.tree.Insert(key, value, leaf, pos)
	return nil
}

// Get returns the value for key, or ErrKeyNotFound if key is absent.
func (d *Dictionary[K, V]) Get(key K) (V, error) {
	var zero V
	leaf, pos, found := d.tree.Find(key, d.effectiveBias(d.lookupBias))
	if !found {
		return zero, btree.ErrKeyNotFound
	}
	_, v := btree.EntryAt(leaf, pos)
	return v, nil
}

// TryGetValue returns the value for key and whether it was present.
func (d *Dictionary[K, V]) TryGetValue(key K) (V, bool) {
	var zero V
	leaf, pos, found := d.tree.Find(key, d.effectiveBias(d.lookupBias))
	if !found {
		return zero, false
	}
	_, v := btree.EntryAt(leaf, pos)
	return v, true
}

// ContainsKey reports whether key is present.
func (d *Dictionary[K, V]) ContainsKey(key K) bool {
	_, _, found := d.tree.Find(key, d.effectiveBias(d.lookupBias))
	return found
}

// Remove deletes one entry keyed by key, chosen by removeBias among any
// duplicate run, and reports whether an entry was removed.
func (d *Dictionary[K, V]) Remove(key K) (bool, error) {
	if d.isReadOnly {
		return false, ErrImmutableMutation
	}
	leaf, pos, found := d.tree.Find(key, d.effectiveBias(d.removeBias))
	if !found {
		return false, nil
	}
	d.tree.Remove(leaf, pos)
	return true, nil
}

// Clear removes every entry.
func (d *Dictionary[K, V]) Clear() error {
	if d.isReadOnly {
		return ErrImmutableMutation
	}
	d.tree.Clear()
	return nil
}

// At returns the key/value at the given 0-based rank in ascending key
// order.
func (d *Dictionary[K, V]) At(index int) (K, V, error) {
	var zeroK K
	var zeroV V
	if index < 0 || index >= d.tree.Count() {
		return zeroK, zeroV, btree.ErrIndexOutOfRange
	}
	leaf, pos := d.tree.LeafAt(index)
	k, v := btree.EntryAt(leaf, pos)
	return k, v, nil
}

// SetValueAt overwrites the value at the given 0-based rank.
func (d *Dictionary[K, V]) SetValueAt(index int, value V) error {
	if d.isReadOnly {
		return ErrImmutableMutation
	}
	if index < 0 || index >= d.tree.Count() {
		return btree.ErrIndexOutOfRange
	}
	leaf, pos := d.tree.LeafAt(index)
	btree.SetEntryAt(leaf, pos, value)
	return nil
}

// RemoveAt deletes the entry at the given 0-based rank.
func (d *Dictionary[K, V]) RemoveAt(index int) error {
	if d.isReadOnly {
		return ErrImmutableMutation
	}
	if index < 0 || index >= d.tree.Count() {
		return btree.ErrIndexOutOfRange
	}
	leaf, pos := d.tree.LeafAt(index)
	d.tree.Remove(leaf, pos)
	return nil
}

// FirstIndexWhereGreaterThan returns the rank of the first entry whose key
// is strictly greater than key, skipping an entire run of entries with an
// equal key when one exists; see orderedset.Set.FirstIndexWhereGreaterThan
// for why tail bias is what makes that skip exact.
func (d *Dictionary[K, V]) FirstIndexWhereGreaterThan(key K) int {
	leaf, pos, found := d.tree.Find(key, btree.BiasTail)
	idx := btree.RankOf(leaf, pos)
	if found {
		idx++
	}
	return idx
}

// LastIndexWhereLessThan returns the rank of the last entry whose key is
// strictly less than key, skipping an entire run of entries with an equal
// key when one exists; see orderedset.Set.LastIndexWhereLessThan for why
// head bias is what makes that skip exact.
func (d *Dictionary[K, V]) LastIndexWhereLessThan(key K) int {
	leaf, pos, _ := d.tree.Find(key, btree.BiasHead)
	return btree.RankOf(leaf, pos) - 1
}

// WhereGreaterOrEqual yields every entry whose key is >= key, in ascending
// key order.
func (d *Dictionary[K, V]) WhereGreaterOrEqual(key K) iter.Seq2[K, V] {
	leaf, pos, _ := d.tree.Find(key, btree.BiasHead)
	return d.tree.Forward(leaf, pos)
}

// WhereLessOrEqualBackwards yields every entry whose key is <= key, in
// descending key order.
func (d *Dictionary[K, V]) WhereLessOrEqualBackwards(key K) iter.Seq2[K, V] {
	leaf, pos, found := d.tree.Find(key, btree.BiasTail)
	if !found {
		var ok bool
		leaf, pos, ok = btree.StepBackward(leaf, pos)
		if !ok {
			return func(func(K, V) bool) {}
		}
	}
	return d.tree.Backward(leaf, pos)
}

// WhereInRange yields every entry whose key k satisfies lo <= k <= hi, in
// ascending order. It returns ErrInvalidRange if hi < lo.
func (d *Dictionary[K, V]) WhereInRange(lo, hi K) (iter.Seq2[K, V], error) {
	if d.cmp(hi, lo) < 0 {
		return nil, btree.ErrInvalidRange
	}
	leaf, pos, _ := d.tree.Find(lo, btree.BiasHead)
	return d.tree.RangeForward(leaf, pos, func(k K) bool {
		return d.cmp(k, hi) <= 0
	}), nil
}

// ForwardFromIndex yields every entry from the given rank to the end, in
// ascending key order.
func (d *Dictionary[K, V]) ForwardFromIndex(index int) iter.Seq2[K, V] {
	if index < 0 || index >= d.tree.Count() {
		return func(func(K, V) bool) {}
	}
	leaf, pos := d.tree.LeafAt(index)
	return d.tree.Forward(leaf, pos)
}

// BackwardFromIndex yields every entry from the given rank back to the
// start, in descending key order.
func (d *Dictionary[K, V]) BackwardFromIndex(index int) iter.Seq2[K, V] {
	if index < 0 || index >= d.tree.Count() {
		return func(func(K, V) bool) {}
	}
	leaf, pos := d.tree.LeafAt(index)
	return d.tree.Backward(leaf, pos)
}

// Iterate yields every entry in ascending key order.
func (d *Dictionary[K, V]) Iterate() iter.Seq2[K, V] {
	return d.ForwardFromIndex(0)
}

// Keys returns a read-only ordered-set view over the dictionary's keys.
func (d *Dictionary[K, V]) Keys() *Keys[K, V] {
	return &Keys[K, V]{dict: d}
}

// Values returns an unordered multiset view over the dictionary's values.
func (d *Dictionary[K, V]) Values() *Values[K, V] {
	return &Values[K, V]{dict: d, equal: defaultValueEqual[V]}
}
