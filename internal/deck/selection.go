package deck

import "sort"

// Selection tracks multi-select mode and the set of picked card
// indices. Indices reference the current canonical list and are
// presentation-transient: any reorder or delete outside of
// DeleteSelected invalidates them, so callers clear the selection
// rather than remap it.
type Selection struct {
	active bool
	picked map[int]bool
}

// Active reports whether multi-select mode is on.
func (s *Selection) Active() bool {
	return s.active
}

// ToggleMode flips multi-select mode. Turning it off clears the picked
// set.
func (s *Selection) ToggleMode() {
	s.active = !s.active
	if !s.active {
		s.picked = nil
	}
}

// Toggle adds or removes an index from the picked set. It is a no-op
// while multi-select mode is off.
func (s *Selection) Toggle(i int) {
	if !s.active || i < 0 {
		return
	}
	if s.picked == nil {
		s.picked = make(map[int]bool)
	}
	if s.picked[i] {
		delete(s.picked, i)
	} else {
		s.picked[i] = true
	}
}

// Picked reports whether index i is selected.
func (s *Selection) Picked(i int) bool {
	return s.active && s.picked[i]
}

// Count returns the number of selected indices.
func (s *Selection) Count() int {
	if !s.active {
		return 0
	}
	return len(s.picked)
}

// Indices returns the selected indices in ascending order.
func (s *Selection) Indices() []int {
	if !s.active || len(s.picked) == 0 {
		return nil
	}
	out := make([]int, 0, len(s.picked))
	for i := range s.picked {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Clear drops the picked set without leaving multi-select mode.
func (s *Selection) Clear() {
	s.picked = nil
}

// DeleteSelected removes every selected card from the store in one
// batch, then exits multi-select mode and clears the set. Indices that
// no longer fit the current list length are discarded before use.
// Returns the number of cards removed.
func (s *Selection) DeleteSelected(store *Store) int {
	if !s.active || len(s.picked) == 0 {
		return 0
	}

	length := store.Len()
	indices := s.Indices()
	valid := indices[:0]
	for _, i := range indices {
		if i < length {
			valid = append(valid, i)
		}
	}

	removed := 0
	if len(valid) > 0 {
		removed = store.DeleteMany(valid)
	}

	s.active = false
	s.picked = nil
	return removed
}
