package ordereddict

import "iter"

// Keys is a read-only ordered-set view over a Dictionary's keys. It
// shares the dictionary's underlying tree; it never copies.
type Keys[K any, V any] struct {
	dict *Dictionary[K, V]
}

// Count returns the number of keys.
func (k *Keys[K, V]) Count() int { return k.dict.Count() }

// Contains reports whether key is present in the backing dictionary.
func (k *Keys[K, V]) Contains(key K) bool { return k.dict.ContainsKey(key) }

// At returns the key at the given 0-based rank.
func (k *Keys[K, V]) At(index int) (K, error) {
	key, _, err := k.dict.At(index)
	return key, err
}

// Iterate yields every key in ascending order.
func (k *Keys[K, V]) Iterate() iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range k.dict.Iterate() {
			if !yield(key) {
				return
			}
		}
	}
}

// ForwardFromIndex yields every key from the given rank to the end, in
// ascending order.
func (k *Keys[K, V]) ForwardFromIndex(index int) iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range k.dict.ForwardFromIndex(index) {
			if !yield(key) {
				return
			}
		}
	}
}

// BackwardFromIndex yields every key from the given rank back to the
// start, in descending order.
func (k *Keys[K, V]) BackwardFromIndex(index int) iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range k.dict.BackwardFromIndex(index) {
			if !yield(key) {
				return
			}
		}
	}
}

// Add always fails: the Keys view is read-only, keyed off the dictionary
// it was built from.
func (k *Keys[K, V]) Add(K) error { return ErrUnsupported }

// RemoveAt always fails: the Keys view is read-only.
func (k *Keys[K, V]) RemoveAt(int) error { return ErrUnsupported }

// Remove always fails: the Keys view is read-only.
func (k *Keys[K, V]) Remove(K) (bool, error) { return false, ErrUnsupported }
