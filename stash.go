package relidx

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/relidx/flatmap"
	"github.com/hupe1980/relidx/osm"
)

// stashMap fixes the internal storage width: uint32 keys and values, 8
// bytes per entry. See the package documentation for the overflow policy.
type stashMap = flatmap.Map[uint32, uint32]

// narrow converts an external object ID to the internal storage width,
// rejecting IDs that would truncate.
func narrow(id osm.ObjectID) (uint32, error) {
	if id > math.MaxUint32 {
		return 0, &ErrIDOverflow{ID: id}
	}
	return uint32(id), nil
}

// Stash accumulates raw (member, parent) pairs before they are frozen into
// an Index.
//
// A Stash is single-writer: concurrent Add calls need external
// synchronization, or per-goroutine stashes combined with Merge. Every
// Build method consumes the stash; afterwards Add, AddMembers, Merge and
// the Build methods return ErrStashConsumed, and Len and IsEmpty panic.
type Stash struct {
	m        *stashMap
	logger   *Logger
	consumed bool
}

// NewStash creates an empty Stash.
func NewStash(opts ...Option) *Stash {
	o := options{
		logger: NoopLogger(),
	}
	for _, fn := range opts {
		fn(&o)
	}

	m := flatmap.New[uint32, uint32]()
	if o.capacity > 0 {
		m.Reserve(o.capacity)
	}

	return &Stash{
		m:      m,
		logger: o.logger,
	}
}

// Add appends one raw (member, parent) pair. Duplicates are allowed; they
// collapse when the stash is built.
func (s *Stash) Add(memberID, parentID osm.ObjectID) error {
	if s.consumed {
		return ErrStashConsumed
	}

	member, err := narrow(memberID)
	if err != nil {
		return err
	}
	parent, err := narrow(parentID)
	if err != nil {
		return err
	}

	s.m.Set(member, parent)
	return nil
}

// AddMembers appends one (member, parent) pair for every relation-typed
// member of rel. Node and way members are ignored.
//
// On an overflow error, pairs appended for earlier members of rel remain
// in the stash.
func (s *Stash) AddMembers(rel osm.Relation) error {
	if s.consumed {
		return ErrStashConsumed
	}

	parent, err := narrow(rel.ID)
	if err != nil {
		return err
	}

	for _, m := range rel.Members {
		if m.Type != osm.ItemTypeRelation {
			continue
		}
		member, err := narrow(m.Ref)
		if err != nil {
			return err
		}
		s.m.Set(member, parent)
	}
	return nil
}

// Merge appends all raw pairs of other into s and consumes other. It
// combines stashes filled by parallel ingestion shards ahead of the single
// Build call.
func (s *Stash) Merge(other *Stash) error {
	if s.consumed || other.consumed {
		return ErrStashConsumed
	}

	s.m.Absorb(other.m)
	other.m = nil
	other.consumed = true
	return nil
}

// Len returns the number of raw pairs accumulated so far, duplicates
// included. It panics if the stash has been consumed.
func (s *Stash) Len() int {
	s.mustBeLive()
	return s.m.Len()
}

// IsEmpty reports whether no pairs have been accumulated. It panics if the
// stash has been consumed.
func (s *Stash) IsEmpty() bool {
	s.mustBeLive()
	return s.m.IsEmpty()
}

func (s *Stash) mustBeLive() {
	if s.consumed {
		panic("relidx: stash already consumed by a build call")
	}
}

// consume transfers the entry storage out of the stash and marks it
// terminal.
func (s *Stash) consume() *stashMap {
	m := s.m
	s.m = nil
	s.consumed = true
	return m
}

// BuildMemberToParentIndex freezes the stash into an index answering "given
// a member ID, which parent IDs reference it". The stash is consumed.
func (s *Stash) BuildMemberToParentIndex() (*Index, error) {
	if s.consumed {
		return nil, ErrStashConsumed
	}

	m := s.consume()
	raw := m.Len()
	m.SortUnique()
	s.logger.LogBuild("member-to-parent", m.Len(), raw-m.Len())

	return &Index{m: m}, nil
}

// BuildParentToMemberIndex freezes the stash into an index answering "given
// a parent ID, which member IDs does it reference". The pairs are flipped
// in place, so no copy is made. The stash is consumed.
func (s *Stash) BuildParentToMemberIndex() (*Index, error) {
	if s.consumed {
		return nil, ErrStashConsumed
	}

	m := s.consume()
	flatmap.Flip(m)
	raw := m.Len()
	m.SortUnique()
	s.logger.LogBuild("parent-to-member", m.Len(), raw-m.Len())

	return &Index{m: m}, nil
}

// BuildIndexes freezes the stash into both lookup directions at once: one
// O(n) flipped copy plus two independent sorts, instead of scanning the
// data source twice. The two sorts run concurrently. The stash is consumed.
func (s *Stash) BuildIndexes() (*Indexes, error) {
	if s.consumed {
		return nil, ErrStashConsumed
	}

	m := s.consume()
	raw := m.Len()
	reverse := flatmap.FlipCopy(m)

	var g errgroup.Group
	g.Go(func() error {
		m.SortUnique()
		return nil
	})
	g.Go(func() error {
		reverse.SortUnique()
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.LogBuild("member-to-parent", m.Len(), raw-m.Len())
	s.logger.LogBuild("parent-to-member", reverse.Len(), raw-reverse.Len())

	return &Indexes{
		memberToParent: Index{m: m},
		parentToMember: Index{m: reverse},
	}, nil
}
