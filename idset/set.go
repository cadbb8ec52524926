// Package idset provides a compressed set of OSM object IDs.
//
// Real datasets reference billions of sparse 64-bit IDs, so the set is
// backed by a 64-bit Roaring bitmap rather than a Go map.
package idset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/relidx/osm"
)

// Set is a mutable set of osm.ObjectID values.
//
// The zero value is not usable; create sets with New. A Set is not safe for
// concurrent mutation.
type Set struct {
	rb *roaring64.Bitmap
}

// New creates an empty set.
func New() *Set {
	return &Set{
		rb: roaring64.New(),
	}
}

// Add adds id to the set.
func (s *Set) Add(id osm.ObjectID) {
	s.rb.Add(uint64(id))
}

// Remove removes id from the set.
func (s *Set) Remove(id osm.ObjectID) {
	s.rb.Remove(uint64(id))
}

// Contains reports whether id is in the set.
func (s *Set) Contains(id osm.ObjectID) bool {
	return s.rb.Contains(uint64(id))
}

// IsEmpty reports whether the set has no elements.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of elements in the set.
func (s *Set) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{
		rb: s.rb.Clone(),
	}
}

// Or adds every element of other to the set.
func (s *Set) Or(other *Set) {
	s.rb.Or(other.rb)
}

// And removes every element not present in other.
func (s *Set) And(other *Set) {
	s.rb.And(other.rb)
}

// Iterator returns an iterator over the set in ascending ID order.
func (s *Set) Iterator() iter.Seq[osm.ObjectID] {
	return func(yield func(osm.ObjectID) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(osm.ObjectID(it.Next())) {
				return
			}
		}
	}
}
