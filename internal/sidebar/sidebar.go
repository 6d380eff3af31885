// Package sidebar renders the note list pane and turns key presses into
// intents the app root executes against the collection.
package sidebar

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/marcus/jot/internal/note"
)

// Mode represents the sidebar interaction mode.
type Mode int

const (
	ModeBrowsing Mode = iota
	ModeRenaming
)

// Intent messages emitted for the app root to execute.
type (
	// CreateMsg asks for a new note.
	CreateMsg struct{}

	// SelectMsg asks for the note to be shown in the editor pane.
	SelectMsg struct{ ID uuid.UUID }

	// DeleteMsg asks for the note to be deleted.
	DeleteMsg struct{ ID uuid.UUID }

	// RenameMsg asks for the note title to be replaced.
	RenameMsg struct {
		ID    uuid.UUID
		Title string
	}
)

// Model is the sidebar pane.
type Model struct {
	notes []note.Note

	cursor    int
	scrollOff int
	selected  uuid.UUID // uuid.Nil = no selection

	mode        Mode
	renameID    uuid.UUID
	renameInput textinput.Model

	width  int
	height int

	// g key state for g g sequence
	pendingG bool
}

// New returns an empty sidebar.
func New() Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0
	return Model{renameInput: ti}
}

// SetSize updates the pane dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.renameInput.Width = width - 4
	m.ensureCursorVisible()
}

// SetNotes replaces the displayed snapshot. The cursor follows the note it
// was on when possible; otherwise it is clamped. A rename in progress on a
// note that vanished is cancelled.
func (m *Model) SetNotes(notes []note.Note) {
	var cursorID uuid.UUID
	if m.cursor >= 0 && m.cursor < len(m.notes) {
		cursorID = m.notes[m.cursor].ID
	}

	m.notes = notes

	if cursorID != uuid.Nil {
		for i, n := range notes {
			if n.ID == cursorID {
				m.cursor = i
				cursorID = uuid.Nil
				break
			}
		}
	}
	if m.cursor >= len(notes) {
		m.cursor = len(notes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	if m.mode == ModeRenaming {
		found := false
		for _, n := range notes {
			if n.ID == m.renameID {
				found = true
				break
			}
		}
		if !found {
			m.cancelRename()
		}
	}

	m.ensureCursorVisible()
}

// Select moves the cursor to the note and marks it selected.
func (m *Model) Select(id uuid.UUID) {
	m.selected = id
	for i, n := range m.notes {
		if n.ID == id {
			m.cursor = i
			break
		}
	}
	m.ensureCursorVisible()
}

// ClearSelection drops the selection highlight.
func (m *Model) ClearSelection() {
	m.selected = uuid.Nil
}

// Selected returns the selected note id, or uuid.Nil.
func (m *Model) Selected() uuid.UUID {
	return m.selected
}

// Mode returns the current interaction mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// CursorNote returns the note under the cursor.
func (m *Model) CursorNote() (note.Note, bool) {
	if len(m.notes) == 0 || m.cursor < 0 || m.cursor >= len(m.notes) {
		return note.Note{}, false
	}
	return m.notes[m.cursor], true
}

// Update handles key input for the sidebar pane.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.mode == ModeRenaming {
		return m.handleRenameKey(keyMsg)
	}
	return m.handleBrowseKey(keyMsg)
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()

	// Handle g g sequence for jump to top
	if m.pendingG {
		m.pendingG = false
		if key == "g" {
			m.cursor = 0
			m.scrollOff = 0
			return m, m.selectCursor()
		}
		// Not a g, fall through to normal handling
	}

	if len(m.notes) == 0 {
		if key == "n" {
			return m, create()
		}
		return m, nil
	}

	switch key {
	case "j", "down":
		if m.cursor < len(m.notes)-1 {
			m.cursor++
		}
		m.ensureCursorVisible()
		return m, m.selectCursor()
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		m.ensureCursorVisible()
		return m, m.selectCursor()
	case "g":
		m.pendingG = true
	case "G":
		m.cursor = len(m.notes) - 1
		m.ensureCursorVisible()
		return m, m.selectCursor()
	case "n":
		return m, create()
	case "enter":
		return m, m.selectCursor()
	case "d", "x":
		if n, ok := m.CursorNote(); ok {
			id := n.ID
			return m, func() tea.Msg { return DeleteMsg{ID: id} }
		}
	case "r":
		if n, ok := m.CursorNote(); ok {
			m.mode = ModeRenaming
			m.renameID = n.ID
			m.renameInput.SetValue(n.Title)
			m.renameInput.CursorEnd()
			m.renameInput.Focus()
		}
	}
	return m, nil
}

func (m Model) handleRenameKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := strings.TrimSpace(m.renameInput.Value())
		id := m.renameID
		m.cancelRename()
		if title == "" {
			// Empty draft confirms to nothing; treat as cancel.
			return m, nil
		}
		return m, func() tea.Msg { return RenameMsg{ID: id, Title: title} }

	case "esc":
		m.cancelRename()
		return m, nil
	}

	var cmd tea.Cmd
	m.renameInput, cmd = m.renameInput.Update(msg)
	return m, cmd
}

func (m *Model) cancelRename() {
	m.mode = ModeBrowsing
	m.renameID = uuid.Nil
	m.renameInput.SetValue("")
	m.renameInput.Blur()
}

// selectCursor emits a SelectMsg for the note under the cursor.
func (m *Model) selectCursor() tea.Cmd {
	n, ok := m.CursorNote()
	if !ok {
		return nil
	}
	id := n.ID
	return func() tea.Msg { return SelectMsg{ID: id} }
}

func create() tea.Cmd {
	return func() tea.Msg { return CreateMsg{} }
}

// visibleRows returns how many note entries fit in the pane. Each entry
// takes two lines; one line is reserved for the header.
func (m *Model) visibleRows() int {
	rows := (m.height - 1) / entryHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

// ensureCursorVisible adjusts the scroll offset to keep the cursor on screen.
func (m *Model) ensureCursorVisible() {
	rows := m.visibleRows()
	if m.cursor < m.scrollOff {
		m.scrollOff = m.cursor
	}
	if m.cursor >= m.scrollOff+rows {
		m.scrollOff = m.cursor - rows + 1
	}
	if m.scrollOff < 0 {
		m.scrollOff = 0
	}
}
