package deck

import (
	"log"
	"sync"

	"cram/internal/card"
)

// SaveFunc persists the canonical card list. Failures are logged and
// never interrupt the in-memory flow.
type SaveFunc func([]card.Card) error

// Store owns the canonical ordered card list and the one-slot undo
// snapshot. Mutating operations persist the new list through the save
// function before returning.
//
// Bubble Tea commands run outside the update goroutine, so access is
// mutex-protected in the same way the UI and a background fetch would
// share any other snapshot store.
type Store struct {
	mu      sync.Mutex
	cards   []card.Card
	undo    []card.Card
	hasUndo bool
	save    SaveFunc
}

// NewStore builds a Store around an initial card list. save may be nil
// for a store that keeps state in memory only.
func NewStore(initial []card.Card, save SaveFunc) *Store {
	return &Store{
		cards: card.Clone(initial),
		save:  save,
	}
}

// Cards returns a defensive copy of the canonical list.
func (s *Store) Cards() []card.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return card.Clone(s.cards)
}

// Len returns the number of cards in the canonical list.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cards)
}

// SetCards replaces the canonical list wholesale and persists it. Used
// by generation and initial load; it does not capture an undo snapshot.
func (s *Store) SetCards(cards []card.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards = card.Clone(cards)
	s.persist()
}

// Snapshot deep-copies the current list into the undo slot. Each call
// overwrites the previous snapshot; only the most recent destructive
// operation is undoable.
func (s *Store) Snapshot() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshotLocked()
}

// ClearUndo drops the undo snapshot. A new generation replaces the deck
// as a fresh baseline and is not undoable.
func (s *Store) ClearUndo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.undo = nil
	s.hasUndo = false
}

// CanUndo reports whether an undo snapshot exists.
func (s *Store) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasUndo
}

// Undo restores the snapshot as the canonical list, persists it, and
// consumes the snapshot. It reports whether anything was restored; with
// no snapshot it is a no-op.
func (s *Store) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasUndo {
		return false
	}
	s.cards = s.undo
	s.undo = nil
	s.hasUndo = false
	s.persist()
	return true
}

// UpdateCard replaces the card at index i after snapshotting. When the
// trimmed term and definition are unchanged the edit is a no-op: no
// snapshot is taken and nothing is persisted. Returns whether the list
// changed.
func (s *Store) UpdateCard(i int, c card.Card) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.cards) {
		return false
	}
	c = c.Normalize()
	if !c.Valid() || s.cards[i].Equal(c) {
		return false
	}
	s.snapshotLocked()
	s.cards[i] = c
	s.persist()
	return true
}

// DeleteCard removes the card at index i after snapshotting. Returns
// whether a card was removed.
func (s *Store) DeleteCard(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.cards) {
		return false
	}
	s.snapshotLocked()
	s.cards = append(s.cards[:i:i], s.cards[i+1:]...)
	s.persist()
	return true
}

// DeleteMany removes every card whose index appears in indices, in a
// single filtering pass so earlier removals cannot shift later ones.
// Out-of-range indices are ignored. Returns the number removed; when
// nothing qualifies the list is untouched and no snapshot is taken.
func (s *Store) DeleteMany(indices []int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	doomed := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(s.cards) {
			doomed[i] = true
		}
	}
	if len(doomed) == 0 {
		return 0
	}

	s.snapshotLocked()
	kept := s.cards[:0:0]
	for i, c := range s.cards {
		if !doomed[i] {
			kept = append(kept, c)
		}
	}
	s.cards = kept
	s.persist()
	return len(doomed)
}

// Reorder replaces the canonical list with the given permutation of it
// after snapshotting. An invalid permutation leaves the list untouched.
// Returns whether the order changed.
func (s *Store) Reorder(perm []int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := Permute(s.cards, perm)
	if !ok {
		return false
	}
	identity := true
	for i, p := range perm {
		if p != i {
			identity = false
			break
		}
	}
	if identity {
		return false
	}

	s.snapshotLocked()
	s.cards = next
	s.persist()
	return true
}

func (s *Store) snapshotLocked() {
	s.undo = card.Clone(s.cards)
	s.hasUndo = true
}

func (s *Store) persist() {
	if s.save == nil {
		return
	}
	if err := s.save(card.Clone(s.cards)); err != nil {
		log.Printf("save cards failed: %v", err)
	}
}
