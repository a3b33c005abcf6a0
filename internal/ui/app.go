// Package ui provides the Bubble Tea front end for cram. It is the
// only package that touches the terminal: every keypress and mouse
// gesture is translated into calls on the deck store, and each View is
// a full rebuild from the store's current state.
package ui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cram/internal/card"
	"cram/internal/deck"
	"cram/internal/llm"
	"cram/internal/storage"
)

// focusArea identifies which part of the UI consumes keystrokes.
type focusArea int

const (
	focusCards focusArea = iota
	focusTopic
	focusSearch
	focusEdit
	focusConfirm
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    llm.Generator
	Store     *deck.Store
	Storage   *storage.Store
	ThemeName string
	// Topic, when non-empty, is generated as soon as the program
	// starts, as if the user had typed it and pressed enter.
	Topic string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx     context.Context
	client  llm.Generator
	store   *deck.Store
	storage *storage.Store
	keys    keyMap

	// UI state
	theme  Theme
	styles Styles
	width  int
	height int
	ready  bool
	focus  focusArea

	// Card presentation state, re-derived from the store after every
	// mutation.
	cards   []card.Card
	vis     []bool
	flipped map[int]bool
	cursor  int

	// Selection / editing / confirmation
	sel     deck.Selection
	editor  editor
	confirm confirmState

	// Inputs
	topicInput  textinput.Model
	searchInput textinput.Model

	// Generation state; initialTopic drives the startup request from
	// the -topic flag.
	generating   bool
	initialTopic string

	// Transient status line; seq guards expiry against newer messages.
	status    status
	statusSeq int

	// Mouse drag reorder
	drag dragState

	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	topic := textinput.New()
	topic.Placeholder = "topic to study"
	topic.CharLimit = 200

	search := textinput.New()
	search.Placeholder = "search"
	search.Prompt = "/"

	m := Model{
		ctx:         ctx,
		client:      opts.Client,
		store:       opts.Store,
		storage:     opts.Storage,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(opts.ThemeName),
		flipped:     make(map[int]bool),
		topicInput:  topic,
		searchInput: search,
		confirm:     confirmState{index: -1},
		drag:        dragState{index: -1},
	}
	m.styles = m.theme.Styles()
	m.refresh()

	if initial := strings.TrimSpace(opts.Topic); initial != "" {
		m.initialTopic = initial
		m.topicInput.SetValue(initial)
		m.generating = true
		m.store.ClearUndo()
		m.setStickyStatus("Generating flashcards…", statusMuted)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.generating && m.initialTopic != "" {
		return tea.Batch(tea.EnterAltScreen, generateCmd(m.ctx, m.client, m.initialTopic))
	}
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.topicInput.Width = msg.Width - 10
		m.searchInput.Width = msg.Width - 10
		return m, nil

	case generateDoneMsg:
		return m.handleGenerateDone(msg)

	case statusExpireMsg:
		if int(msg) == m.statusSeq {
			m.status = status{}
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.focus == focusConfirm {
		return m.renderConfirm()
	}
	return m.renderMain()
}

// handleKey routes keyboard input to whichever area has focus.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch m.focus {
	case focusTopic:
		return m.handleTopicKey(msg)
	case focusSearch:
		return m.handleSearchKey(msg)
	case focusEdit:
		return m.handleEditKey(msg)
	case focusConfirm:
		return m.handleConfirmKey(msg)
	}
	return m.handleCardsKey(msg)
}

// handleCardsKey processes keys while the card list has focus.
func (m Model) handleCardsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		m.setTheme(NextTheme(m.theme.Name))
		return m, nil

	case key.Matches(msg, m.keys.Topic):
		m.cancelDrag()
		m.focus = focusTopic
		m.topicInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Search):
		m.cancelDrag()
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Escape):
		if m.sel.Active() {
			m.sel.ToggleMode()
			return m, nil
		}
		if m.searchInput.Value() != "" {
			m.searchInput.SetValue("")
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.MultiSelect):
		m.sel.ToggleMode()
		return m, nil

	case key.Matches(msg, m.keys.Undo):
		return m.handleUndo()

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.cursorToEdge(false)
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.cursorToEdge(true)
		return m, nil

	case key.Matches(msg, m.keys.MoveUp):
		return m.moveCard(-1)

	case key.Matches(msg, m.keys.MoveDown):
		return m.moveCard(1)
	}

	// Everything below needs a card under the cursor.
	if len(m.cards) == 0 || m.cursor < 0 || m.cursor >= len(m.cards) {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Flip):
		if m.sel.Active() {
			m.sel.Toggle(m.cursor)
			return m, nil
		}
		m.flipped[m.cursor] = !m.flipped[m.cursor]
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if m.sel.Active() {
			return m, nil
		}
		m.cancelDrag()
		m.editor = startEdit(m.cursor, m.cards[m.cursor])
		m.focus = focusEdit
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Delete):
		m.cancelDrag()
		if m.sel.Active() {
			if m.sel.Count() == 0 {
				return m.setStatus("Nothing selected", statusMuted)
			}
			m.confirm = confirmState{batch: true}
			m.focus = focusConfirm
			return m, nil
		}
		m.confirm = confirmState{index: m.cursor}
		m.focus = focusConfirm
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		c := m.cards[m.cursor]
		if err := clipboard.WriteAll(c.Term + ": " + c.Definition); err != nil {
			return m.setStatus("Copy failed: "+err.Error(), statusError)
		}
		return m.setStatus("Copied to clipboard", statusOK)
	}

	return m, nil
}

// handleTopicKey processes keys while the topic input has focus.
func (m Model) handleTopicKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.focus = focusCards
		m.topicInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		topic := strings.TrimSpace(m.topicInput.Value())
		if topic == "" {
			return m.setStatus("Enter a topic first", statusError)
		}
		if m.generating {
			// Only one request may be in flight.
			return m, nil
		}
		return m.startGenerate(topic)
	}

	var cmd tea.Cmd
	m.topicInput, cmd = m.topicInput.Update(msg)
	return m, cmd
}

// handleSearchKey processes keys while the search input has focus. The
// visibility vector tracks every keystroke.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.focus = focusCards
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.searchInput.Blur()
		m.focus = focusCards
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.refresh()
	return m, cmd
}

// handleUndo restores the pre-mutation list when a snapshot exists.
func (m Model) handleUndo() (tea.Model, tea.Cmd) {
	if !m.store.Undo() {
		return m.setStatus("Nothing to undo", statusMuted)
	}
	m.refresh()
	return m.setStatus("Undone", statusOK)
}

// moveCard reorders the card under the cursor one visible slot up or
// down. The commit goes through the store as a permutation.
func (m Model) moveCard(dir int) (tea.Model, tea.Cmd) {
	if len(m.cards) == 0 || m.cursor < 0 || m.cursor >= len(m.cards) {
		return m, nil
	}

	visible := m.visibleIndices()
	pos := -1
	for i, idx := range visible {
		if idx == m.cursor {
			pos = i
			break
		}
	}
	if pos < 0 {
		return m, nil
	}

	var to int
	switch {
	case dir < 0 && pos > 0:
		to = visible[pos-1]
	case dir > 0 && pos < len(visible)-1:
		// Insert after the next visible card.
		to = visible[pos+1] + 1
	default:
		return m, nil
	}

	from := m.cursor
	perm := deck.MovePerm(len(m.cards), from, to)
	if !m.store.Reorder(perm) {
		return m, nil
	}
	m.sel.Clear()
	m.refresh()
	m.followCard(perm, from)
	return m, nil
}

// setTheme switches and persists the color theme.
func (m *Model) setTheme(name string) {
	m.theme = GetTheme(name)
	m.styles = m.theme.Styles()
	if m.storage != nil {
		if err := m.storage.SaveTheme(m.theme.Name); err != nil {
			logSaveTheme(err)
		}
	}
}

// refresh re-derives the presentation state from the store: card list,
// visibility vector, cursor clamp. Flip state is dropped because
// indices may have shifted.
func (m *Model) refresh() {
	m.cards = m.store.Cards()
	m.vis = card.Visible(m.cards, m.searchInput.Value())
	m.flipped = make(map[int]bool)
	m.clampCursor()
}

// clampCursor keeps the cursor on a visible card where possible.
func (m *Model) clampCursor() {
	visible := m.visibleIndices()
	if len(visible) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= len(m.cards) {
		m.cursor = visible[len(visible)-1]
		return
	}
	if m.vis[m.cursor] {
		return
	}
	// Nearest visible card after the cursor, else before it.
	for _, idx := range visible {
		if idx > m.cursor {
			m.cursor = idx
			return
		}
	}
	m.cursor = visible[len(visible)-1]
}

// visibleIndices returns the canonical indices of visible cards in
// display order.
func (m Model) visibleIndices() []int {
	var out []int
	for i, v := range m.vis {
		if v {
			out = append(out, i)
		}
	}
	return out
}

// moveCursor steps the cursor through visible cards.
func (m *Model) moveCursor(dir int) {
	visible := m.visibleIndices()
	if len(visible) == 0 {
		return
	}
	pos := 0
	for i, idx := range visible {
		if idx == m.cursor {
			pos = i
			break
		}
	}
	pos += dir
	if pos < 0 {
		pos = 0
	}
	if pos > len(visible)-1 {
		pos = len(visible) - 1
	}
	m.cursor = visible[pos]
}

// cursorToEdge jumps to the first or last visible card.
func (m *Model) cursorToEdge(bottom bool) {
	visible := m.visibleIndices()
	if len(visible) == 0 {
		return
	}
	if bottom {
		m.cursor = visible[len(visible)-1]
		return
	}
	m.cursor = visible[0]
}

// followCard repositions the cursor on the card that was at oldIndex
// before the given permutation was applied.
func (m *Model) followCard(perm []int, oldIndex int) {
	for newPos, src := range perm {
		if src == oldIndex {
			m.cursor = newPos
			return
		}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
