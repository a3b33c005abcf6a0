package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cram/internal/card"
)

// editor holds in-place edit state for a single card. While it is
// active, flip-on-activate is suspended for the edited card.
type editor struct {
	index      int
	term       textinput.Model
	def        textinput.Model
	editingDef bool
}

// startEdit builds an editor pre-filled with the card at index.
func startEdit(index int, c card.Card) editor {
	term := textinput.New()
	term.SetValue(c.Term)
	term.CharLimit = 200
	term.Focus()

	def := textinput.New()
	def.SetValue(c.Definition)
	def.CharLimit = 500

	return editor{index: index, term: term, def: def}
}

// value returns the card as currently edited.
func (e editor) value() card.Card {
	return card.Card{Term: e.term.Value(), Definition: e.def.Value()}.Normalize()
}

// switchField moves focus between the term and definition inputs.
func (e *editor) switchField() {
	e.editingDef = !e.editingDef
	if e.editingDef {
		e.term.Blur()
		e.def.Focus()
	} else {
		e.def.Blur()
		e.term.Focus()
	}
}

// handleEditKey processes keys while a card is being edited. Enter
// commits, Escape cancels, Tab switches between term and definition.
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.focus = focusCards
		return m, nil

	case msg.String() == "tab":
		m.editor.switchField()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Confirm):
		return m.commitEdit()
	}

	var cmd tea.Cmd
	if m.editor.editingDef {
		m.editor.def, cmd = m.editor.def.Update(msg)
	} else {
		m.editor.term, cmd = m.editor.term.Update(msg)
	}
	return m, cmd
}

// commitEdit saves the edited card. The store applies the no-op guard:
// an unchanged card creates no snapshot and writes nothing.
func (m Model) commitEdit() (tea.Model, tea.Cmd) {
	edited := m.editor.value()
	index := m.editor.index
	m.focus = focusCards

	if !edited.Valid() {
		return m.setStatus("Term and definition must not be empty", statusError)
	}
	if !m.store.UpdateCard(index, edited) {
		return m, nil
	}
	m.refresh()
	return m.setStatus("Card updated", statusOK)
}
