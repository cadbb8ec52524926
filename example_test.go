package relidx_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/relidx"
	"github.com/hupe1980/relidx/osm"
)

// ExampleStash demonstrates the accumulate → freeze → query lifecycle.
func ExampleStash() {
	stash := relidx.NewStash()

	relations := []osm.Relation{
		{ID: 200, Members: []osm.Member{
			{Type: osm.ItemTypeNode, Ref: 5},
			{Type: osm.ItemTypeRelation, Ref: 7},
			{Type: osm.ItemTypeRelation, Ref: 9},
			{Type: osm.ItemTypeWay, Ref: 11},
		}},
		{ID: 300, Members: []osm.Member{
			{Type: osm.ItemTypeRelation, Ref: 7},
		}},
	}
	for _, rel := range relations {
		if err := stash.AddMembers(rel); err != nil {
			log.Fatal(err)
		}
	}

	idx, err := stash.BuildMemberToParentIndex()
	if err != nil {
		log.Fatal(err)
	}

	idx.ForEach(7, func(parent osm.ObjectID) {
		fmt.Println("relation 7 is a member of", parent)
	})
	// Output:
	// relation 7 is a member of 200
	// relation 7 is a member of 300
}

// ExampleStash_buildIndexes demonstrates building both lookup directions
// from a single pass over the data.
func ExampleStash_buildIndexes() {
	stash := relidx.NewStash(relidx.WithCapacity(4))

	_ = stash.Add(1, 100)
	_ = stash.Add(2, 100)
	_ = stash.Add(1, 200)

	both, err := stash.BuildIndexes()
	if err != nil {
		log.Fatal(err)
	}

	both.MemberToParent().ForEach(1, func(parent osm.ObjectID) {
		fmt.Println("parent:", parent)
	})
	both.ParentToMember().ForEach(100, func(member osm.ObjectID) {
		fmt.Println("member:", member)
	})
	// Output:
	// parent: 100
	// parent: 200
	// member: 1
	// member: 2
}
