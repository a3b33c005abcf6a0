package ui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// renderMain draws the full UI: header, inputs, counter, status, and
// the card list. Every call rebuilds the whole frame from current
// state; nothing from a previous render survives.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTopicLine())
	b.WriteString("\n")
	b.WriteString(m.renderSearchLine())
	b.WriteString("\n")
	b.WriteString(m.renderCounter())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderCards())
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderHeader() string {
	title := m.styles.AccentText.Render("cram")
	mode := ""
	if m.sel.Active() {
		mode = m.styles.DangerText.Render(fmt.Sprintf("  MULTI-SELECT (%d)", m.sel.Count()))
	}
	theme := m.styles.MutedText.Render("  theme: " + m.theme.Name)
	return title + mode + theme
}

func (m Model) renderTopicLine() string {
	label := m.styles.Text.Render("Topic: ")
	if m.generating {
		// The trigger is disabled while a request is in flight.
		return label + m.styles.MutedText.Render(m.topicInput.Value()+"  (generating…)")
	}
	return label + m.topicInput.View()
}

func (m Model) renderSearchLine() string {
	return m.searchInput.View()
}

// renderCounter shows how many cards survive the current filter.
func (m Model) renderCounter() string {
	visible := len(m.visibleIndices())
	return m.styles.MutedText.Render(fmt.Sprintf("%d of %d cards", visible, len(m.cards)))
}

func (m Model) renderStatus() string {
	switch m.status.kind {
	case statusOK:
		return m.styles.SuccessText.Render(m.status.text)
	case statusError:
		return m.styles.DangerText.Render(m.status.text)
	case statusMuted:
		return m.styles.MutedText.Render(m.status.text)
	}
	return ""
}

func (m Model) renderCards() string {
	visible := m.visibleIndices()
	if len(visible) == 0 {
		if len(m.cards) == 0 {
			return m.styles.MutedText.Render("No cards yet. Press t, enter a topic, and hit enter.") + "\n"
		}
		return m.styles.MutedText.Render("No cards match the search.") + "\n"
	}

	var b strings.Builder
	for _, idx := range visible {
		b.WriteString(m.renderCard(idx))
		b.WriteString("\n")
	}
	return b.String()
}

// renderCard draws one card box. The same output feeds both View and
// the mouse hit testing in layout.go, so the two always agree.
func (m Model) renderCard(idx int) string {
	c := m.cards[idx]

	if m.focus == focusEdit && m.editor.index == idx {
		body := "Term: " + m.editor.term.View() + "\n" +
			"Definition: " + m.editor.def.View() + "\n" +
			m.styles.MutedText.Render("enter: save   esc: cancel   tab: switch field")
		return m.styles.CardFocus.Render(body)
	}

	var prefix string
	if m.sel.Active() {
		if m.sel.Picked(idx) {
			prefix = "[x] "
		} else {
			prefix = "[ ] "
		}
	}
	if m.drag.index == idx {
		prefix = "≡ " + prefix
	}

	width := m.width - 6
	if width < 20 {
		width = 20
	}

	var body string
	if m.flipped[idx] {
		body = prefix + wordwrap.String(c.Definition, width)
	} else {
		body = prefix + m.styles.Text.Render(c.Term)
	}

	style := m.styles.Card
	if idx == m.cursor {
		style = m.styles.CardFocus
	}
	if m.sel.Picked(idx) {
		body = m.styles.Selected.Render(body)
	}
	return style.Width(width).Render(body)
}

func (m Model) renderFooter() string {
	var parts []string
	for _, b := range m.keys.ShortHelp() {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return m.styles.Footer.Render(strings.Join(parts, "  ·  "))
}

// renderHelp draws the full-screen help overlay.
func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render("cram: keys"))
	b.WriteString("\n\n")
	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			b.WriteString(fmt.Sprintf("  %-14s %s\n",
				binding.Help().Key, binding.Help().Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.MutedText.Render("press any key to close"))
	return b.String()
}
