package pointset

import (
	"testing"

	"github.com/hnimtadd/boardgeom/geometry/point"
	"github.com/stretchr/testify/assert"
)

// collider hashes to a fixed bucket so tests can force probe chains.
type collider struct {
	hash uint64
	val  int
}

func (c collider) Hash() uint64 { return c.hash }
func (c collider) Equal(other collider) bool { return c.val == other.val }

func newTestSet(capacity uint64) *Set[collider] {
	return New[collider](Options{Cap: &capacity})
}

func TestSet_AddAndLookup(t *testing.T) {
	set := newTestSet(16)
	item := collider{hash: 3, val: 42}

	_, found := set.Lookup(item)
	assert.False(t, found, "expected item not to be found before adding")

	id := set.Add(item)
	assert.NotEqual(t, ID(0), id, "expected non-zero ID")
	assert.Equal(t, 1, set.Count(), "expected count to be 1 after adding item")

	foundID, found := set.Lookup(item)
	assert.True(t, found, "expected item to be found after adding")
	assert.Equal(t, id, foundID, "expected found ID to be the same as added ID")
	assert.Equal(t, item, set.Get(id))
}

func TestSet_RefCounting(t *testing.T) {
	set := newTestSet(16)
	item := collider{hash: 1, val: 1}

	id := set.Add(item)
	assert.EqualValues(t, 1, set.Refs(id))

	set.Use(id)
	set.Use(id)
	assert.EqualValues(t, 3, set.Refs(id))

	set.Release(id)
	set.Release(id)
	assert.EqualValues(t, 1, set.Refs(id))
	assert.Equal(t, 1, set.Count())

	set.Release(id)
	assert.Equal(t, 0, set.Count(), "expected count to be 0 after releasing all references")
	_, found := set.Lookup(item)
	assert.False(t, found)
	assert.Panics(t, func() { set.Use(id) }, "released items cannot be used")
}

func TestSet_AddDuplicateIncrementsRef(t *testing.T) {
	set := newTestSet(16)

	id1 := set.Add(collider{hash: 9, val: 99})
	id2 := set.Add(collider{hash: 9, val: 99})
	assert.Equal(t, id1, id2, "expected same ID for duplicate add")
	assert.EqualValues(t, 2, set.Refs(id1))
	assert.Equal(t, 1, set.Count())
}

func TestSet_Collisions(t *testing.T) {
	set := newTestSet(8)

	ids := make([]ID, 5)
	for i := range ids {
		ids[i] = set.Add(collider{hash: 2, val: i})
	}
	for i, id := range ids {
		got, found := set.Lookup(collider{hash: 2, val: i})
		assert.True(t, found, "item %d", i)
		assert.Equal(t, id, got)
	}

	// Removing from the middle of a chain keeps the rest reachable.
	set.Release(ids[1])
	for i, id := range ids {
		got, found := set.Lookup(collider{hash: 2, val: i})
		if i == 1 {
			assert.False(t, found)
			continue
		}
		assert.True(t, found, "item %d", i)
		assert.Equal(t, id, got)
	}
	assert.Equal(t, 4, set.Count())
}

func TestSet_RobinHoodDisplacement(t *testing.T) {
	set := newTestSet(8)

	// Fill slots 0..2 from home 0, then insert an item whose home is slot 1.
	for i := range 3 {
		set.Add(collider{hash: 0, val: i})
	}
	late := set.Add(collider{hash: 1, val: 100})

	got, found := set.Lookup(collider{hash: 1, val: 100})
	assert.True(t, found)
	assert.Equal(t, late, got)
	for i := range 3 {
		_, found := set.Lookup(collider{hash: 0, val: i})
		assert.True(t, found, "item %d", i)
	}
}

func TestSet_ReusesIDs(t *testing.T) {
	set := newTestSet(4)
	a := set.Add(collider{hash: 0, val: 1})
	set.Release(a)

	b := set.Add(collider{hash: 0, val: 2})
	assert.Equal(t, a, b, "freed IDs are handed out again")
}

func TestSet_Full(t *testing.T) {
	set := newTestSet(2)
	set.Add(collider{hash: 0, val: 1})
	set.Add(collider{hash: 1, val: 2})

	assert.NotPanics(t, func() { set.Add(collider{hash: 0, val: 1}) }, "duplicates fit")
	assert.Panics(t, func() { set.Add(collider{hash: 0, val: 3}) })
}

func TestSet_Points(t *testing.T) {
	set := New[point.Point](Options{})

	a := set.Add(point.New(1.5, 2))
	b := set.Add(point.NewWithDigits(1.5, 2, 3))
	c := set.Add(point.New(2, 1.5))

	assert.Equal(t, a, b, "equal points share an ID")
	assert.NotEqual(t, a, c)
	assert.Equal(t, 2, set.Count())
}
