// Package flatmap implements a compact sorted multimap over pairs of
// unsigned integers.
//
// A Map is filled in arbitrary order with Set, then frozen with SortUnique,
// after which Get answers exact-key range lookups by binary search. The
// storage width of keys and values is chosen at the instantiation site via
// the type parameters; a Map[uint32, uint32] holds every entry in 8 bytes.
package flatmap

import (
	"cmp"
	"iter"
	"slices"
)

// Unsigned constrains the internal storage width of keys and values.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Entry is a single key/value pair.
type Entry[K, V Unsigned] struct {
	Key   K
	Value V
}

// Map is an append-only multimap backed by a single flat slice.
//
// Entries may be appended in any order and may repeat. After SortUnique the
// slice is ordered by (key, value) with exact duplicates removed, and Get
// becomes valid. Calling Get before SortUnique, or after a later Set without
// a new SortUnique, yields unspecified results.
//
// The zero value is ready to use. A Map is not safe for concurrent
// mutation; once sorted and no longer mutated it is safe for concurrent
// reads.
type Map[K, V Unsigned] struct {
	entries []Entry[K, V]
}

// New creates an empty Map.
func New[K, V Unsigned]() *Map[K, V] {
	return &Map[K, V]{}
}

// Set appends one entry. Duplicates are allowed; they collapse in
// SortUnique.
func (m *Map[K, V]) Set(key K, value V) {
	m.entries = append(m.entries, Entry[K, V]{Key: key, Value: value})
}

// Reserve grows the backing slice to hold at least n entries without
// further allocation.
func (m *Map[K, V]) Reserve(n int) {
	if extra := n - len(m.entries); extra > 0 {
		m.entries = slices.Grow(m.entries, extra)
	}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return len(m.entries) == 0
}

// Absorb appends all entries of other, leaving other unchanged. Like Set it
// invalidates a previous SortUnique.
func (m *Map[K, V]) Absorb(other *Map[K, V]) {
	m.entries = append(m.entries, other.entries...)
}

// SortUnique sorts all entries by (key, value) and removes exact
// duplicates. Idempotent: calling it again without intervening mutation is
// a no-op apart from the O(n log n) scan.
func (m *Map[K, V]) SortUnique() {
	slices.SortFunc(m.entries, func(a, b Entry[K, V]) int {
		if c := cmp.Compare(a.Key, b.Key); c != 0 {
			return c
		}
		return cmp.Compare(a.Value, b.Value)
	})
	m.entries = slices.Compact(m.entries)
}

// Get returns the contiguous run of entries whose key equals key, in
// ascending value order, or an empty slice if the key is absent.
//
// Precondition: SortUnique has been called since the last mutation.
// The returned slice aliases the map's storage and must not be modified.
func (m *Map[K, V]) Get(key K) []Entry[K, V] {
	lo, _ := slices.BinarySearchFunc(m.entries, key, func(e Entry[K, V], k K) int {
		return cmp.Compare(e.Key, k)
	})
	hi := lo
	for hi < len(m.entries) && m.entries[hi].Key == key {
		hi++
	}
	return m.entries[lo:hi]
}

// All iterates over all entries in storage order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Flip swaps the key and value of every entry in place, without re-sorting.
// It is only available when keys and values share one storage width, which
// the single type parameter enforces at compile time. The caller must call
// SortUnique again before the next Get.
func Flip[T Unsigned](m *Map[T, T]) {
	for i := range m.entries {
		m.entries[i].Key, m.entries[i].Value = m.entries[i].Value, m.entries[i].Key
	}
}

// FlipCopy returns an independent map holding every entry with key and
// value swapped; the original is left untouched. Unlike Flip it is legal
// for differing storage widths. The result is unsorted until SortUnique is
// called on it.
func FlipCopy[K, V Unsigned](m *Map[K, V]) *Map[V, K] {
	out := New[V, K]()
	out.Reserve(len(m.entries))
	for _, e := range m.entries {
		out.Set(e.Value, e.Key)
	}
	return out
}
