// Package pointset interns values behind small integer IDs with reference
// counting. It is used to share identical points between the many shapes of
// a board.
package pointset

import (
	"fmt"

	"github.com/hnimtadd/boardgeom/geometry/utils"
)

type Hashable[T any] interface {
	Hash() uint64
	Equal(other T) bool
}

type ID uint64

// Metadata for an item in the set.
type metadata struct {
	bucket uint64 // The table slot holding this item's ID.

	// The length of the probe sequence for this item.
	psl uint64

	// Ref is the reference count of the item.
	ref int64
}

type elem[T any] struct {
	data T
	meta metadata
}

// Set is an open addressing hash set using robin hood probing. Items with a
// longer probe sequence steal slots from items with a shorter one, which
// keeps lookups short and lets deletion shift followers back instead of
// leaving tombstones.
type Set[T Hashable[T]] struct {
	// The backing store of items, indexed by ID. ID 0 is never used.
	items []*elem[T]
	// Table slots holding item IDs, 0 for empty.
	table []ID

	// Maximum probe sequence length.
	maxPSL uint64

	// pslStats counts the items at each probe sequence length so maxPSL
	// can shrink on delete.
	pslStats []int64

	// The next never-used ID, and IDs released by deleted items.
	nextID ID
	free   []ID

	// The number of living items currently in the set.
	living int
}

type Options struct {
	// Cap is the maximum number of items in the set.
	// If not set, it defaults to 1000.
	Cap *uint64
}

func New[T Hashable[T]](opts Options) *Set[T] {
	var capacity uint64
	if opts.Cap == nil {
		capacity = 1000
	} else {
		capacity = *opts.Cap
	}
	utils.Assert(capacity > 0, "set capacity must be positive")
	return &Set[T]{
		items:    make([]*elem[T], capacity+1),
		table:    make([]ID, capacity),
		pslStats: make([]int64, capacity),
		nextID:   1,
	}
}

// Add an item to the set if not present and increment its ref count.
//
// Returns the item's ID. Adding a new item to a full set panics.
func (s *Set[T]) Add(value T) ID {
	if id, found := s.Lookup(value); found {
		s.items[id].meta.ref++
		return id
	}
	utils.Assert(s.living < len(s.table), fmt.Sprintf("set is full (%d items)", s.living))

	id := s.allocate()
	s.items[id] = &elem[T]{data: value, meta: metadata{ref: 1}}
	s.insert(id, value.Hash())
	s.living++
	return id
}

func (s *Set[T]) allocate() ID {
	if n := len(s.free); n > 0 {
		id := s.free[n-1]
		s.free = s.free[:n-1]
		return id
	}
	id := s.nextID
	s.nextID++
	return id
}

// insert places id in the table starting at the home slot of hash.
func (s *Set[T]) insert(id ID, hash uint64) {
	n := uint64(len(s.table))
	p := hash % n

	heldID := id
	var heldPSL uint64
	for range n {
		current := s.table[p]

		// Empty bucket, the held item lands here.
		if current == 0 {
			s.place(heldID, p, heldPSL)
			return
		}

		// The resident is closer to its home than the held item is to
		// ours, so it gives up the slot and continues probing instead.
		item := s.items[current]
		if item.meta.psl < heldPSL {
			residentPSL := item.meta.psl
			s.pslStats[residentPSL]--
			s.place(heldID, p, heldPSL)
			heldID, heldPSL = current, residentPSL
		}

		p = (p + 1) % n
		heldPSL++
	}
	utils.Assert(false, fmt.Sprintf("no free bucket for item %d", heldID))
}

func (s *Set[T]) place(id ID, bucket, psl uint64) {
	s.table[bucket] = id
	s.items[id].meta.bucket = bucket
	s.items[id].meta.psl = psl
	s.pslStats[psl]++
	s.maxPSL = max(s.maxPSL, psl)
}

// Lookup finds an item in the table and returns its ID.
// If the item doesn't exist in the table, it returns 0 and false.
func (s *Set[T]) Lookup(value T) (ID, bool) {
	n := uint64(len(s.table))
	p := value.Hash() % n

	for i := uint64(0); i <= s.maxPSL; i++ {
		id := s.table[p]

		// Empty bucket, our item cannot have probed past this point.
		if id == 0 {
			return 0, false
		}

		// An item closer to its home than we are to ours would have been
		// displaced by our item, so our item is not present.
		item := s.items[id]
		if item.meta.psl < i {
			return 0, false
		}

		if item.meta.psl == i && item.data.Equal(value) {
			return id, true
		}
		p = (p + 1) % n
	}
	return 0, false
}

// delete removes an item from the table and frees its ID. Followers in the
// same run are shifted back one slot.
func (s *Set[T]) delete(id ID) {
	n := uint64(len(s.table))
	item := s.items[id]
	utils.Assert(s.table[item.meta.bucket] == id, fmt.Sprintf("item %d not found in table", id))

	s.pslStats[item.meta.psl]--
	prev := item.meta.bucket
	next := (prev + 1) % n
	for range n - 1 {
		if s.table[next] == 0 || s.items[s.table[next]].meta.psl == 0 {
			break
		}
		moved := s.items[s.table[next]]
		s.pslStats[moved.meta.psl]--
		moved.meta.psl--
		moved.meta.bucket = prev
		s.pslStats[moved.meta.psl]++
		s.table[prev] = s.table[next]

		prev = next
		next = (next + 1) % n
	}
	s.table[prev] = 0

	for s.maxPSL > 0 && s.pslStats[s.maxPSL] == 0 {
		s.maxPSL--
	}

	s.items[id] = nil
	s.free = append(s.free, id)
}

// Use takes another reference to a living item.
func (s *Set[T]) Use(id ID) {
	item := s.get(id)
	item.meta.ref++
}

// Release drops a reference to an item. The item is removed from the set
// when its last reference goes.
func (s *Set[T]) Release(id ID) {
	item := s.get(id)
	item.meta.ref--
	if item.meta.ref == 0 {
		s.delete(id)
		s.living--
	}
}

// Get returns the item stored under id.
func (s *Set[T]) Get(id ID) T {
	return s.get(id).data
}

// Refs returns the reference count of a living item.
func (s *Set[T]) Refs(id ID) int64 {
	return s.get(id).meta.ref
}

func (s *Set[T]) get(id ID) *elem[T] {
	utils.Assert(id > 0 && int(id) < len(s.items), fmt.Sprintf("invalid item ID %d", id))
	item := s.items[id]
	utils.Assert(item != nil && item.meta.ref > 0, fmt.Sprintf("item %d is not alive", id))
	return item
}

func (s *Set[T]) Count() int {
	return s.living
}
