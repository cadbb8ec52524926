package idset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/relidx/osm"
)

func TestSet_AddContains(t *testing.T) {
	s := New()
	require.True(t, s.IsEmpty())

	s.Add(7)
	s.Add(1 << 40) // beyond 32-bit range
	s.Add(7)

	require.False(t, s.IsEmpty())
	require.Equal(t, uint64(2), s.Cardinality())
	require.True(t, s.Contains(7))
	require.True(t, s.Contains(1<<40))
	require.False(t, s.Contains(8))

	s.Remove(7)
	require.False(t, s.Contains(7))
	require.Equal(t, uint64(1), s.Cardinality())
}

func TestSet_Iterator(t *testing.T) {
	s := New()
	s.Add(300)
	s.Add(100)
	s.Add(200)

	var got []osm.ObjectID
	for id := range s.Iterator() {
		got = append(got, id)
	}
	require.Equal(t, []osm.ObjectID{100, 200, 300}, got)

	// Early break must not panic or over-yield.
	var first osm.ObjectID
	for id := range s.Iterator() {
		first = id
		break
	}
	require.Equal(t, osm.ObjectID(100), first)
}

func TestSet_CloneAndOr(t *testing.T) {
	a := New()
	a.Add(1)

	b := a.Clone()
	b.Add(2)

	require.False(t, a.Contains(2), "clone must not alias")

	a.Or(b)
	require.True(t, a.Contains(1))
	require.True(t, a.Contains(2))

	c := New()
	c.Add(2)
	a.And(c)
	require.False(t, a.Contains(1))
	require.True(t, a.Contains(2))
}
