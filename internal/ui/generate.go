package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cram/internal/card"
	"cram/internal/deck"
	"cram/internal/llm"
)

// statusKind selects the style of the transient status line.
type statusKind int

const (
	statusNone statusKind = iota
	statusOK
	statusError
	statusMuted
)

// status is the one-line feedback message under the inputs.
type status struct {
	text string
	kind statusKind
}

const statusTTL = 3 * time.Second

// statusExpireMsg clears the status line, but only when no newer
// message has superseded the one it was scheduled for.
type statusExpireMsg int

// generateDoneMsg carries the outcome of a generation request.
type generateDoneMsg struct {
	text string
	err  error
}

// setStatus replaces the status line and schedules its expiry.
func (m Model) setStatus(text string, kind statusKind) (tea.Model, tea.Cmd) {
	m.statusSeq++
	m.status = status{text: text, kind: kind}
	seq := m.statusSeq
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpireMsg(seq)
	})
}

// setStickyStatus replaces the status line without scheduling expiry;
// used for the "generating" indicator, which the completion handler
// replaces.
func (m *Model) setStickyStatus(text string, kind statusKind) {
	m.statusSeq++
	m.status = status{text: text, kind: kind}
}

// startGenerate kicks off a generation request. The trigger is
// disabled for its duration and the undo snapshot is dropped: a fresh
// deck is a new baseline, not an undoable edit.
func (m Model) startGenerate(topic string) (tea.Model, tea.Cmd) {
	m.generating = true
	m.store.ClearUndo()
	m.topicInput.Blur()
	m.focus = focusCards
	m.setStickyStatus("Generating flashcards…", statusMuted)
	return m, generateCmd(m.ctx, m.client, topic)
}

// handleGenerateDone finishes a generation request. All three outcomes
// (cards, zero cards, failure) lift the trigger disable.
func (m Model) handleGenerateDone(msg generateDoneMsg) (tea.Model, tea.Cmd) {
	m.generating = false

	if msg.err != nil {
		// Surface the service's message verbatim; the deck is untouched.
		return m.setStatus(msg.err.Error(), statusError)
	}

	cards := card.Parse(msg.text)
	if len(cards) == 0 {
		return m.setStatus("No valid flashcards in the response", statusMuted)
	}

	m.store.SetCards(cards)
	m.sel = deck.Selection{}
	m.refresh()
	return m.setStatus(fmt.Sprintf("Generated %d cards", len(cards)), statusOK)
}

func generateCmd(ctx context.Context, client llm.Generator, topic string) tea.Cmd {
	return func() tea.Msg {
		if client == nil {
			return generateDoneMsg{err: fmt.Errorf("no generation service configured")}
		}
		text, err := client.Generate(ctx, topic)
		return generateDoneMsg{text: text, err: err}
	}
}
