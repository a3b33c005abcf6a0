package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"cram/internal/card"
	"cram/internal/deck"
)

func testCards() []card.Card {
	return []card.Card{
		{Term: "France", Definition: "Paris"},
		{Term: "Germany", Definition: "Berlin"},
		{Term: "Italy", Definition: "Rome"},
	}
}

func newTestModel(cards []card.Card) Model {
	m := New(Options{Store: deck.NewStore(cards, nil)})
	m.width = 80
	m.height = 24
	m.ready = true
	return m
}

func asModel(t *testing.T, res interface{ View() string }) Model {
	t.Helper()
	m, ok := res.(Model)
	if !ok {
		t.Fatalf("update returned %T, want Model", res)
	}
	return m
}

func TestNew_TopicOptionStartsGeneration(t *testing.T) {
	store := deck.NewStore(testCards(), nil)
	store.DeleteCard(0)
	if !store.CanUndo() {
		t.Fatal("precondition: expected an undo snapshot")
	}

	m := New(Options{Store: store, Topic: "  chemistry  "})

	if !m.generating {
		t.Fatal("a startup topic must disable the trigger immediately")
	}
	if got := m.topicInput.Value(); got != "chemistry" {
		t.Fatalf("topic input = %q, want trimmed topic", got)
	}
	if store.CanUndo() {
		t.Fatal("a startup generation must clear the undo snapshot")
	}
	if m.Init() == nil {
		t.Fatal("Init returned no command for the startup generation")
	}
}

func TestNew_NoTopicOptionStaysIdle(t *testing.T) {
	m := New(Options{Store: deck.NewStore(testCards(), nil), Topic: "   "})
	if m.generating {
		t.Fatal("a blank topic must not start a generation")
	}
}

func TestStartGenerate_DisablesTriggerAndClearsUndo(t *testing.T) {
	m := newTestModel(testCards())

	// A destructive op leaves a snapshot; generating must drop it.
	m.store.DeleteCard(0)
	m.refresh()
	if !m.store.CanUndo() {
		t.Fatal("precondition: expected an undo snapshot")
	}

	res, cmd := m.startGenerate("chemistry")
	m = asModel(t, res)

	if !m.generating {
		t.Fatal("generating flag not set")
	}
	if cmd == nil {
		t.Fatal("startGenerate returned no command")
	}
	if m.store.CanUndo() {
		t.Fatal("starting a generation must clear the undo snapshot")
	}
}

func TestGenerateDone_SuccessReplacesDeck(t *testing.T) {
	m := newTestModel(testCards())
	m.generating = true

	res, _ := m.handleGenerateDone(generateDoneMsg{
		text: "Ohm: unit of resistance\nVolt: unit of potential",
	})
	m = asModel(t, res)

	if m.generating {
		t.Fatal("generating flag must be lifted on success")
	}
	if len(m.cards) != 2 || m.cards[0].Term != "Ohm" {
		t.Fatalf("cards = %#v, want parsed deck", m.cards)
	}
	if m.store.Len() != 2 {
		t.Fatalf("store.Len = %d, want 2", m.store.Len())
	}
}

func TestGenerateDone_FailureKeepsDeckAndSurfacesMessage(t *testing.T) {
	m := newTestModel(testCards())
	m.generating = true

	res, _ := m.handleGenerateDone(generateDoneMsg{err: errors.New("rate limit exceeded")})
	m = asModel(t, res)

	if m.generating {
		t.Fatal("generating flag must be lifted on failure")
	}
	if m.store.Len() != 3 {
		t.Fatalf("store.Len = %d, deck must be untouched", m.store.Len())
	}
	if m.status.text != "rate limit exceeded" || m.status.kind != statusError {
		t.Fatalf("status = %#v, want verbatim error", m.status)
	}
}

func TestGenerateDone_ZeroCardsIsSoftFailure(t *testing.T) {
	m := newTestModel(testCards())
	m.generating = true

	res, _ := m.handleGenerateDone(generateDoneMsg{text: "no usable lines here"})
	m = asModel(t, res)

	if m.generating {
		t.Fatal("generating flag must be lifted on empty parse")
	}
	if m.store.Len() != 3 {
		t.Fatal("deck must be untouched when nothing parses")
	}
	if m.status.kind != statusMuted {
		t.Fatalf("status kind = %v, want soft message", m.status.kind)
	}
}

func TestSearch_FilterAndCounter(t *testing.T) {
	m := newTestModel(testCards())

	m.searchInput.SetValue("germ berl")
	m.refresh()

	visible := m.visibleIndices()
	if len(visible) != 1 || visible[0] != 1 {
		t.Fatalf("visibleIndices = %v, want [1]", visible)
	}
	if counter := m.renderCounter(); !strings.Contains(counter, "1 of 3 cards") {
		t.Fatalf("counter = %q, want \"1 of 3 cards\"", counter)
	}

	m.searchInput.SetValue("")
	m.refresh()
	if len(m.visibleIndices()) != 3 {
		t.Fatal("clearing the query must show every card")
	}
}

func TestClampCursor_FollowsVisibility(t *testing.T) {
	m := newTestModel(testCards())
	m.cursor = 0

	// Only the last card matches; the cursor must land on it.
	m.searchInput.SetValue("rome")
	m.refresh()
	if m.cursor != 2 {
		t.Fatalf("cursor = %d, want 2", m.cursor)
	}
}

func TestCommitEdit_NoChangeLeavesNoUndo(t *testing.T) {
	m := newTestModel(testCards())

	m.editor = startEdit(1, m.cards[1])
	m.focus = focusEdit

	res, _ := m.commitEdit()
	m = asModel(t, res)

	if m.store.CanUndo() {
		t.Fatal("saving an unchanged card must not create an undo snapshot")
	}
	if m.focus != focusCards {
		t.Fatal("commit must return focus to the card list")
	}
}

func TestCommitEdit_ChangeGoesThroughStore(t *testing.T) {
	m := newTestModel(testCards())

	m.editor = startEdit(1, m.cards[1])
	m.editor.def.SetValue("Bonn")
	m.focus = focusEdit

	res, _ := m.commitEdit()
	m = asModel(t, res)

	if m.cards[1].Definition != "Bonn" {
		t.Fatalf("definition = %q, want Bonn", m.cards[1].Definition)
	}
	if !m.store.CanUndo() {
		t.Fatal("a real edit must be undoable")
	}
}

func TestConfirmDelete_Single(t *testing.T) {
	m := newTestModel(testCards())
	m.confirm = confirmState{index: 1}
	m.focus = focusConfirm

	res, _ := m.confirmDelete()
	m = asModel(t, res)

	if len(m.cards) != 2 {
		t.Fatalf("cards = %d, want 2", len(m.cards))
	}
	if m.cards[0].Term != "France" || m.cards[1].Term != "Italy" {
		t.Fatalf("cards = %#v, want France and Italy", m.cards)
	}
}

func TestConfirmDelete_BatchRemovesSelection(t *testing.T) {
	m := newTestModel(testCards())
	m.sel.ToggleMode()
	m.sel.Toggle(0)
	m.sel.Toggle(2)
	m.confirm = confirmState{batch: true}
	m.focus = focusConfirm

	res, _ := m.confirmDelete()
	m = asModel(t, res)

	if len(m.cards) != 1 || m.cards[0].Term != "Germany" {
		t.Fatalf("cards = %#v, want Germany only", m.cards)
	}
	if m.sel.Active() {
		t.Fatal("batch delete must exit multi-select mode")
	}
}

func TestHandleUndo(t *testing.T) {
	m := newTestModel(testCards())

	res, _ := m.handleUndo()
	m = asModel(t, res)
	if m.status.kind != statusMuted {
		t.Fatalf("status = %#v, want nothing-to-undo message", m.status)
	}

	m.store.DeleteCard(0)
	m.refresh()

	res, _ = m.handleUndo()
	m = asModel(t, res)
	if len(m.cards) != 3 {
		t.Fatalf("cards = %d, want restored deck of 3", len(m.cards))
	}
	if m.status.kind != statusOK {
		t.Fatalf("status = %#v, want success message", m.status)
	}
}

func TestDropCard_MovesToEndWhenPointerBelowAll(t *testing.T) {
	m := newTestModel(testCards())

	res, _ := m.dropCard(0, 10_000)
	m = asModel(t, res)

	terms := []string{m.cards[0].Term, m.cards[1].Term, m.cards[2].Term}
	want := []string{"Germany", "Italy", "France"}
	for i := range want {
		if terms[i] != want[i] {
			t.Fatalf("order = %v, want %v", terms, want)
		}
	}
	if !m.store.CanUndo() {
		t.Fatal("a committed reorder must be undoable")
	}
}

func TestDrag_CancelledWhenConfirmOpens(t *testing.T) {
	m := newTestModel(testCards())

	top := m.rowSpans()[0].top
	res, _ := m.handleMouse(tea.MouseMsg{Y: top, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = asModel(t, res)
	if m.drag.index != 0 {
		t.Fatalf("drag.index = %d, want 0 after grab", m.drag.index)
	}

	res, _ = m.handleCardsKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	m = asModel(t, res)
	if m.focus != focusConfirm {
		t.Fatal("d must open the delete confirmation")
	}
	if m.drag.index != -1 {
		t.Fatal("opening the confirmation must abandon the drag")
	}

	// Confirm the delete, then release the button far below the list.
	// The abandoned grab must not reorder anything.
	res, _ = m.handleConfirmKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	m = asModel(t, res)
	res, _ = m.handleMouse(tea.MouseMsg{Y: 10_000, Action: tea.MouseActionRelease})
	m = asModel(t, res)

	if len(m.cards) != 2 || m.cards[0].Term != "Germany" || m.cards[1].Term != "Italy" {
		t.Fatalf("cards = %#v, want Germany and Italy in place", m.cards)
	}
}

func TestStatusExpiry_IgnoresSupersededMessages(t *testing.T) {
	m := newTestModel(testCards())

	res, _ := m.setStatus("first", statusOK)
	m = asModel(t, res)
	firstSeq := m.statusSeq

	res, _ = m.setStatus("second", statusOK)
	m = asModel(t, res)

	// The first message's expiry must not clear the second.
	res, _ = m.Update(statusExpireMsg(firstSeq))
	m = asModel(t, res)
	if m.status.text != "second" {
		t.Fatalf("status = %q, want second", m.status.text)
	}

	res, _ = m.Update(statusExpireMsg(m.statusSeq))
	m = asModel(t, res)
	if m.status.text != "" {
		t.Fatalf("status = %q, want cleared", m.status.text)
	}
}
