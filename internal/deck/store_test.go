package deck

import (
	"errors"
	"reflect"
	"testing"

	"cram/internal/card"
)

func sampleCards() []card.Card {
	return []card.Card{
		{Term: "France", Definition: "Paris"},
		{Term: "Germany", Definition: "Berlin"},
		{Term: "Italy", Definition: "Rome"},
		{Term: "Spain", Definition: "Madrid"},
	}
}

// countingSaver records every persisted list.
type countingSaver struct {
	calls int
	last  []card.Card
	err   error
}

func (c *countingSaver) save(cards []card.Card) error {
	c.calls++
	c.last = cards
	return c.err
}

func TestStore_CardsReturnsCopy(t *testing.T) {
	s := NewStore(sampleCards(), nil)

	got := s.Cards()
	got[0].Term = "mutated"

	if s.Cards()[0].Term != "France" {
		t.Fatal("Cards should return a defensive copy")
	}
}

func TestStore_UndoRestoresPreviousList(t *testing.T) {
	s := NewStore(sampleCards(), nil)

	if !s.DeleteCard(0) {
		t.Fatal("DeleteCard failed")
	}
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}

	if !s.Undo() {
		t.Fatal("Undo returned false with a snapshot present")
	}
	if !reflect.DeepEqual(s.Cards(), sampleCards()) {
		t.Fatalf("Undo did not restore: %#v", s.Cards())
	}
}

func TestStore_UndoIsSingleSlot(t *testing.T) {
	s := NewStore(sampleCards(), nil)

	// Two destructive operations; only the second is undoable.
	s.DeleteCard(0) // drops France
	afterFirst := s.Cards()
	s.DeleteCard(0) // drops Germany

	if !s.Undo() {
		t.Fatal("Undo returned false")
	}
	if !reflect.DeepEqual(s.Cards(), afterFirst) {
		t.Fatalf("Undo = %#v, want state before second delete %#v", s.Cards(), afterFirst)
	}
}

func TestStore_UndoIsOneShot(t *testing.T) {
	s := NewStore(sampleCards(), nil)

	s.DeleteCard(0)
	if !s.Undo() {
		t.Fatal("first Undo returned false")
	}
	before := s.Cards()
	if s.Undo() {
		t.Fatal("second Undo should be a no-op")
	}
	if !reflect.DeepEqual(s.Cards(), before) {
		t.Fatal("second Undo changed the list")
	}
}

func TestStore_ClearUndo(t *testing.T) {
	s := NewStore(sampleCards(), nil)
	s.DeleteCard(0)
	if !s.CanUndo() {
		t.Fatal("CanUndo = false after delete")
	}
	s.ClearUndo()
	if s.CanUndo() {
		t.Fatal("CanUndo = true after ClearUndo")
	}
	if s.Undo() {
		t.Fatal("Undo should be a no-op after ClearUndo")
	}
}

func TestStore_UpdateCardNoOpGuard(t *testing.T) {
	saver := &countingSaver{}
	s := NewStore(sampleCards(), saver.save)
	saves := saver.calls

	// Same content modulo whitespace: no snapshot, no save.
	if s.UpdateCard(1, card.Card{Term: "  Germany ", Definition: "Berlin  "}) {
		t.Fatal("UpdateCard reported a change for identical content")
	}
	if s.CanUndo() {
		t.Fatal("no-op edit must not create an undo snapshot")
	}
	if saver.calls != saves {
		t.Fatalf("no-op edit persisted: %d saves", saver.calls-saves)
	}

	// A real change snapshots and persists.
	if !s.UpdateCard(1, card.Card{Term: "Germany", Definition: "Bonn"}) {
		t.Fatal("UpdateCard reported no change for new definition")
	}
	if !s.CanUndo() {
		t.Fatal("edit must create an undo snapshot")
	}
	if saver.calls != saves+1 {
		t.Fatalf("saves = %d, want %d", saver.calls, saves+1)
	}
	if s.Cards()[1].Definition != "Bonn" {
		t.Fatalf("definition = %q, want Bonn", s.Cards()[1].Definition)
	}
}

func TestStore_UpdateCardRejectsInvalid(t *testing.T) {
	s := NewStore(sampleCards(), nil)
	if s.UpdateCard(0, card.Card{Term: " ", Definition: "x"}) {
		t.Fatal("UpdateCard accepted an empty term")
	}
	if s.UpdateCard(9, card.Card{Term: "a", Definition: "b"}) {
		t.Fatal("UpdateCard accepted an out-of-range index")
	}
}

func TestStore_DeleteManyRemovesExactSet(t *testing.T) {
	s := NewStore(sampleCards(), nil)

	removed := s.DeleteMany([]int{1, 3})
	if removed != 2 {
		t.Fatalf("removed = %d, want 2", removed)
	}
	want := []card.Card{
		{Term: "France", Definition: "Paris"},
		{Term: "Italy", Definition: "Rome"},
	}
	if !reflect.DeepEqual(s.Cards(), want) {
		t.Fatalf("Cards = %#v, want %#v", s.Cards(), want)
	}
}

func TestStore_DeleteManyIgnoresStaleIndices(t *testing.T) {
	s := NewStore(sampleCards(), nil)

	removed := s.DeleteMany([]int{2, 17, -1})
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}

	// Nothing valid: list untouched, no snapshot overwrite.
	s.ClearUndo()
	if n := s.DeleteMany([]int{42}); n != 0 {
		t.Fatalf("removed = %d, want 0", n)
	}
	if s.CanUndo() {
		t.Fatal("empty batch delete must not snapshot")
	}
}

func TestStore_ReorderAppliesPermutation(t *testing.T) {
	s := NewStore(sampleCards(), nil)

	if !s.Reorder([]int{3, 0, 1, 2}) {
		t.Fatal("Reorder returned false for a valid permutation")
	}
	want := []card.Card{
		{Term: "Spain", Definition: "Madrid"},
		{Term: "France", Definition: "Paris"},
		{Term: "Germany", Definition: "Berlin"},
		{Term: "Italy", Definition: "Rome"},
	}
	if !reflect.DeepEqual(s.Cards(), want) {
		t.Fatalf("Cards = %#v, want %#v", s.Cards(), want)
	}

	if !s.Undo() {
		t.Fatal("reorder must be undoable")
	}
	if !reflect.DeepEqual(s.Cards(), sampleCards()) {
		t.Fatal("Undo did not restore the pre-reorder order")
	}
}

func TestStore_ReorderRejectsBadPermutations(t *testing.T) {
	s := NewStore(sampleCards(), nil)
	for _, perm := range [][]int{
		{0, 1},       // wrong length
		{0, 1, 2, 2}, // duplicate
		{0, 1, 2, 9}, // out of range
		{0, 1, 2, 3}, // identity
	} {
		if s.Reorder(perm) {
			t.Fatalf("Reorder(%v) = true, want false", perm)
		}
	}
	if s.CanUndo() {
		t.Fatal("rejected reorders must not snapshot")
	}
}

func TestStore_SaveFailureKeepsMemoryState(t *testing.T) {
	saver := &countingSaver{err: errors.New("quota exceeded")}
	s := NewStore(sampleCards(), saver.save)

	if !s.DeleteCard(0) {
		t.Fatal("DeleteCard failed")
	}
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3 despite save failure", s.Len())
	}
}

func TestStore_SetCardsPersistsWithoutSnapshot(t *testing.T) {
	saver := &countingSaver{}
	s := NewStore(nil, saver.save)

	s.SetCards(sampleCards())
	if saver.calls != 1 {
		t.Fatalf("saves = %d, want 1", saver.calls)
	}
	if len(saver.last) != 4 {
		t.Fatalf("persisted %d cards, want 4", len(saver.last))
	}
	if s.CanUndo() {
		t.Fatal("SetCards must not create an undo snapshot")
	}
}
