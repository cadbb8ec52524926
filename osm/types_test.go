package osm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestItemType_String(t *testing.T) {
	require.Equal(t, "node", ItemTypeNode.String())
	require.Equal(t, "way", ItemTypeWay.String())
	require.Equal(t, "relation", ItemTypeRelation.String())
	require.Equal(t, "undefined", ItemTypeUndefined.String())
	require.Equal(t, "undefined", ItemType(99).String())
}

func TestParseItemType(t *testing.T) {
	for _, it := range []ItemType{ItemTypeNode, ItemTypeWay, ItemTypeRelation} {
		got, ok := ParseItemType(it.String())
		require.True(t, ok)
		require.Equal(t, it, got)
	}

	got, ok := ParseItemType("bogus")
	require.False(t, ok)
	require.Equal(t, ItemTypeUndefined, got)

	got, ok = ParseItemType("")
	require.False(t, ok)
	require.Equal(t, ItemTypeUndefined, got)
}
