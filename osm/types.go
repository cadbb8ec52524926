// Package osm provides the minimal OpenStreetMap domain types consumed by
// relidx: object identifiers, member item types and relation records.
//
// Only the fields the index cares about are modeled. Tags, versions and
// geometry belong to the ingestion pipeline, not here.
package osm

// ObjectID is the unsigned identifier of an OSM object (node, way or
// relation). IDs from real datasets are positive; callers converting from
// signed wire formats are expected to take the absolute value first.
type ObjectID uint64

// ItemType identifies the kind of object a relation member references.
type ItemType uint8

const (
	ItemTypeUndefined ItemType = iota
	ItemTypeNode
	ItemTypeWay
	ItemTypeRelation
)

// String returns the lowercase OSM name of the item type.
func (t ItemType) String() string {
	switch t {
	case ItemTypeNode:
		return "node"
	case ItemTypeWay:
		return "way"
	case ItemTypeRelation:
		return "relation"
	default:
		return "undefined"
	}
}

// ParseItemType parses the lowercase OSM name of an item type. It returns
// ItemTypeUndefined and false for unknown names.
func ParseItemType(s string) (ItemType, bool) {
	switch s {
	case "node":
		return ItemTypeNode, true
	case "way":
		return ItemTypeWay, true
	case "relation":
		return ItemTypeRelation, true
	default:
		return ItemTypeUndefined, false
	}
}

// Member is a single entry of a relation's ordered member list.
type Member struct {
	// Type is the kind of object the member references.
	Type ItemType

	// Ref is the ID of the referenced object.
	Ref ObjectID

	// Role is the free-form role string ("outer", "stop", ...). The index
	// ignores it; it is carried for callers that build Relations anyway.
	Role string
}

// Relation is a relation record reduced to what the index needs: its own ID
// and its ordered member list.
type Relation struct {
	ID      ObjectID
	Members []Member
}
