// Package relidx builds bidirectional lookup indexes between relation
// members and their parent relations in OSM-style datasets.
//
// # Lifecycle
//
// A Stash accumulates raw (member, parent) ID pairs while the caller scans
// a data source. Pairs may arrive in any order and may repeat. Exactly one
// Build call then freezes the stash into one or two immutable indexes and
// consumes it:
//
//	stash := relidx.NewStash()
//	for _, rel := range relations {
//	    if err := stash.AddMembers(rel); err != nil {
//	        return err
//	    }
//	}
//	idx, err := stash.BuildMemberToParentIndex()
//	if err != nil {
//	    return err
//	}
//	idx.ForEach(memberID, func(parentID osm.ObjectID) {
//	    // parent relations of memberID, ascending
//	})
//
// When both directions are needed, BuildIndexes derives the reverse index
// from the accumulated pairs in one pass instead of forcing a second scan
// of the source:
//
//	both, err := stash.BuildIndexes()
//	both.MemberToParent().ForEach(memberID, visit)
//	both.ParentToMember().ForEach(parentID, visit)
//
// # Concurrency
//
// Accumulation is single-writer: guard a shared Stash with a mutex, or
// shard ingestion across several stashes and combine them with Merge before
// the single Build call. A frozen Index never mutates and is safe for
// unsynchronized concurrent reads.
//
// # Storage width
//
// Entries are stored as uint32 pairs, 8 bytes each, which covers current
// OSM ID space several times over. IDs that do not fit are rejected with
// ErrIDOverflow at Add time rather than silently truncated.
package relidx
