package relidx

import (
	"iter"

	"github.com/hupe1980/relidx/idset"
	"github.com/hupe1980/relidx/osm"
)

// Index is a frozen, sorted, deduplicated one-to-many lookup structure
// produced by a Stash build. It never mutates and is safe for
// unsynchronized concurrent reads.
type Index struct {
	m *stashMap
}

// ForEach calls fn once per entry whose key equals id, in ascending value
// order. Absent keys produce zero calls.
//
// Lookup is a binary search: logarithmic in the index size plus the number
// of matches.
func (idx *Index) ForEach(id osm.ObjectID, fn func(osm.ObjectID)) {
	key, err := narrow(id)
	if err != nil {
		// IDs beyond the storage width can never have been added.
		return
	}
	for _, e := range idx.m.Get(key) {
		fn(osm.ObjectID(e.Value))
	}
}

// Values returns an iterator over the values mapped to id, in ascending
// order. It is the iter.Seq form of ForEach.
func (idx *Index) Values(id osm.ObjectID) iter.Seq[osm.ObjectID] {
	return func(yield func(osm.ObjectID) bool) {
		key, err := narrow(id)
		if err != nil {
			return
		}
		for _, e := range idx.m.Get(key) {
			if !yield(osm.ObjectID(e.Value)) {
				return
			}
		}
	}
}

// Keys materializes the distinct key set of the index. The scan is linear
// in the index size; callers should hold on to the result.
func (idx *Index) Keys() *idset.Set {
	keys := idset.New()
	for k := range idx.m.All() {
		keys.Add(osm.ObjectID(k))
	}
	return keys
}

// Len returns the number of entries in the index.
func (idx *Index) Len() int {
	return idx.m.Len()
}

// IsEmpty reports whether the index has no entries.
func (idx *Index) IsEmpty() bool {
	return idx.m.IsEmpty()
}

// Indexes bundles both lookup directions built from one Stash. The two
// sides always hold the same number of entries, since the reverse index is
// a relabeling of the same deduplicated pair set.
type Indexes struct {
	memberToParent Index
	parentToMember Index
}

// MemberToParent returns the member → parents index.
func (x *Indexes) MemberToParent() *Index {
	return &x.memberToParent
}

// ParentToMember returns the parent → members index.
func (x *Indexes) ParentToMember() *Index {
	return &x.parentToMember
}

// Len returns the number of entries per direction.
func (x *Indexes) Len() int {
	return x.memberToParent.Len()
}

// IsEmpty reports whether the indexes have no entries.
func (x *Indexes) IsEmpty() bool {
	return x.memberToParent.IsEmpty()
}
