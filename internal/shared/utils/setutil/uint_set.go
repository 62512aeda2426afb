// Package setutil provides set utilities for id collections.
package setutil

// UintSet is a set of uint values.
type UintSet struct {
	items map[uint]struct{}
}

// NewUintSetWithCap creates a new UintSet with initial capacity.
func NewUintSetWithCap(cap int) *UintSet {
	return &UintSet{
		items: make(map[uint]struct{}, cap),
	}
}

// Add adds an id to the set and reports whether it was new.
func (s *UintSet) Add(id uint) bool {
	if _, ok := s.items[id]; ok {
		return false
	}
	s.items[id] = struct{}{}
	return true
}

// Has returns true if the id exists in the set.
func (s *UintSet) Has(id uint) bool {
	_, ok := s.items[id]
	return ok
}

// Len returns the number of elements in the set.
func (s *UintSet) Len() int {
	return len(s.items)
}

// Distinct returns ids with duplicates removed, keeping the first
// occurrence of each and the original order.
func Distinct(ids []uint) []uint {
	seen := NewUintSetWithCap(len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if seen.Add(id) {
			out = append(out, id)
		}
	}
	return out
}
