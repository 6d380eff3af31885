// Package editor renders the selected note in the main pane: title header,
// timestamp, and the content as terminal markdown in a scrollable viewport.
package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/marcus/jot/internal/note"
	"github.com/marcus/jot/internal/styles"
	"github.com/marcus/jot/internal/ui"
)

// headerHeight is the title line, meta line, and blank separator.
const headerHeight = 3

// Model is the editor pane. It displays a snapshot of the selected note;
// mutations happen elsewhere and arrive via Load.
type Model struct {
	note    note.Note
	hasNote bool

	viewport viewport.Model
	renderer *ui.MarkdownRenderer

	width  int
	height int
}

// New returns an empty editor pane using the given markdown style.
func New(markdownStyle string) Model {
	return Model{
		viewport: viewport.New(0, 0),
		renderer: ui.NewMarkdownRenderer(markdownStyle),
	}
}

// SetSize updates the pane dimensions and re-renders the content.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - headerHeight
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}
	m.refreshContent()
}

// Load displays the note, resetting scroll position.
func (m *Model) Load(n note.Note) {
	m.note = n
	m.hasNote = true
	m.refreshContent()
	m.viewport.GotoTop()
}

// Clear empties the pane.
func (m *Model) Clear() {
	m.note = note.Note{}
	m.hasNote = false
	m.viewport.SetContent("")
}

// DisplayedID returns the id of the displayed note, or uuid.Nil.
func (m *Model) DisplayedID() uuid.UUID {
	if !m.hasNote {
		return uuid.Nil
	}
	return m.note.ID
}

// Note returns the displayed note snapshot.
func (m *Model) Note() (note.Note, bool) {
	return m.note, m.hasNote
}

// Update handles scroll keys via the viewport.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) refreshContent() {
	if !m.hasNote || m.width <= 0 {
		return
	}
	if m.note.Content == "" {
		m.viewport.SetContent(styles.Placeholder.Render("This note is empty"))
		return
	}
	m.viewport.SetContent(m.renderer.Render(m.note.Content, m.width))
}

// View renders the editor pane content.
func (m Model) View() string {
	if !m.hasNote {
		return styles.Placeholder.Render("Select a note, or press n to create one")
	}

	title := m.note.Title
	if title == "" {
		title = note.DefaultTitle
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("Updated " + m.note.FormattedTime()))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	return b.String()
}
