package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// confirmState describes a pending delete confirmation: either a
// single card (index) or the whole selection (batch).
type confirmState struct {
	index int
	batch bool
}

// handleConfirmKey processes keys while the delete confirmation is up.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "y", key.Matches(msg, m.keys.Confirm):
		return m.confirmDelete()

	case msg.String() == "n", key.Matches(msg, m.keys.Escape):
		m.confirm = confirmState{index: -1}
		m.focus = focusCards
		return m, nil
	}
	return m, nil
}

// confirmDelete commits the pending deletion.
func (m Model) confirmDelete() (tea.Model, tea.Cmd) {
	pending := m.confirm
	m.confirm = confirmState{index: -1}
	m.focus = focusCards

	if pending.batch {
		removed := m.sel.DeleteSelected(m.store)
		m.refresh()
		if removed == 0 {
			return m, nil
		}
		return m.setStatus(fmt.Sprintf("Deleted %d cards", removed), statusOK)
	}

	if !m.store.DeleteCard(pending.index) {
		return m, nil
	}
	m.sel.Clear()
	m.refresh()
	return m.setStatus("Card deleted", statusOK)
}

// renderConfirm draws the delete confirmation dialog.
func (m Model) renderConfirm() string {
	var prompt string
	if m.confirm.batch {
		prompt = fmt.Sprintf("Delete %d selected cards?", m.sel.Count())
	} else if m.confirm.index >= 0 && m.confirm.index < len(m.cards) {
		prompt = fmt.Sprintf("Delete %q?", m.cards[m.confirm.index].Term)
	} else {
		prompt = "Delete card?"
	}

	box := m.styles.CardFocus.Render(
		m.styles.DangerText.Render(prompt) + "\n\n" +
			m.styles.MutedText.Render("y: delete    n/esc: cancel"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
