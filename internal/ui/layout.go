package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"cram/internal/deck"
)

// dragState tracks a mouse-driven reorder in progress.
type dragState struct {
	index    int // canonical index of the grabbed card, -1 when idle
	pointerY int
}

// rowSpan records where one visible card is rendered on screen.
type rowSpan struct {
	index  int // canonical card index
	top    int
	height int
}

func (r rowSpan) midpoint() int {
	return r.top + r.height/2
}

// listTop returns the number of terminal rows above the card list:
// header, topic line, search line, counter, status.
func (m Model) listTop() int {
	return 5
}

// rowSpans computes the vertical extent of every visible card by
// rendering them the same way View does.
func (m Model) rowSpans() []rowSpan {
	spans := make([]rowSpan, 0, len(m.cards))
	y := m.listTop()
	for _, idx := range m.visibleIndices() {
		rendered := m.renderCard(idx)
		h := strings.Count(rendered, "\n") + 1
		spans = append(spans, rowSpan{index: idx, top: y, height: h})
		y += h
	}
	return spans
}

// cardAt returns the canonical index of the card rendered at terminal
// row y, or -1.
func (m Model) cardAt(y int) int {
	for _, span := range m.rowSpans() {
		if y >= span.top && y < span.top+span.height {
			return span.index
		}
	}
	return -1
}

// cancelDrag abandons any drag in progress. Called whenever focus
// leaves the card list so a later release cannot commit a stale grab.
func (m *Model) cancelDrag() {
	m.drag = dragState{index: -1}
}

// handleMouse implements drag reorder: press grabs a card, release
// drops it at the slot nearest the pointer. The drop position is
// computed by the deck package from plain midpoint values.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.focus != focusCards || m.showHelp {
		m.cancelDrag()
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if idx := m.cardAt(msg.Y); idx >= 0 {
			m.drag = dragState{index: idx, pointerY: msg.Y}
			m.cursor = idx
		}
		return m, nil

	case tea.MouseActionMotion:
		if m.drag.index >= 0 {
			m.drag.pointerY = msg.Y
		}
		return m, nil

	case tea.MouseActionRelease:
		if m.drag.index < 0 {
			return m, nil
		}
		from := m.drag.index
		pointerY := msg.Y
		m.drag = dragState{index: -1}
		return m.dropCard(from, pointerY)
	}

	return m, nil
}

// dropCard commits a drag: candidate slots are the visible cards other
// than the dragged one, described to the reorder engine as midpoints.
func (m Model) dropCard(from, pointerY int) (tea.Model, tea.Cmd) {
	var candidates []rowSpan
	for _, span := range m.rowSpans() {
		if span.index != from {
			candidates = append(candidates, span)
		}
	}

	midpoints := make([]int, len(candidates))
	for i, span := range candidates {
		midpoints[i] = span.midpoint()
	}

	slot := deck.DropIndex(midpoints, pointerY)
	to := len(m.cards)
	if slot < len(candidates) {
		to = candidates[slot].index
	}

	perm := deck.MovePerm(len(m.cards), from, to)
	if !m.store.Reorder(perm) {
		return m, nil
	}
	m.sel.Clear()
	m.refresh()
	m.followCard(perm, from)
	return m, nil
}
