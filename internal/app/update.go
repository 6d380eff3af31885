package app

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/marcus/jot/internal/msg"
	"github.com/marcus/jot/internal/note"
	"github.com/marcus/jot/internal/sidebar"
)

// Update handles all messages and returns the updated model and commands.
func (m Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch teaMsg := teaMsg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(teaMsg)

	case tea.WindowSizeMsg:
		m.width = teaMsg.Width
		m.height = teaMsg.Height
		m.ready = true
		m.layout()
		return m, nil

	case TickMsg:
		m.ClearToast()
		return m, tickCmd()

	case msg.ToastMsg:
		if teaMsg.IsError {
			m.ShowErrorToast(teaMsg.Message, teaMsg.Duration)
		} else {
			m.ShowToast(teaMsg.Message, teaMsg.Duration)
		}
		return m, nil

	case ErrorMsg:
		m.logger.Error("operation failed", "error", teaMsg.Err)
		m.ShowErrorToast("Error: "+teaMsg.Err.Error(), 5*time.Second)
		return m, nil

	case sidebar.CreateMsg:
		return m.createNote()

	case sidebar.SelectMsg:
		m.selectNote(teaMsg.ID)
		return m, nil

	case sidebar.DeleteMsg:
		return m.deleteNote(teaMsg.ID)

	case sidebar.RenameMsg:
		return m.renameNote(teaMsg.ID, teaMsg.Title)

	case NotesChangedMsg:
		m.reloadFromDisk()
		if m.watcher != nil {
			return m, waitForChange(m.watcher.Events())
		}
		return m, nil

	case WatchClosedMsg:
		return m, nil
	}

	return m, nil
}

// handleKeyMsg processes keyboard input.
func (m Model) handleKeyMsg(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While renaming, the sidebar input owns every key except ctrl+c.
	if m.sidebar.Mode() == sidebar.ModeRenaming {
		if keyMsg.String() == "ctrl+c" {
			return m.quit()
		}
		var cmd tea.Cmd
		m.sidebar, cmd = m.sidebar.Update(keyMsg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m.quit()

	case "y":
		return m, m.yankContent()

	case "Y":
		return m, m.yankTitle()

	case "[":
		m.sidebarWidth -= 2
		m.layout()
		return m, nil

	case "]":
		m.sidebarWidth += 2
		m.layout()
		return m, nil

	case "ctrl+r":
		m.reloadFromDisk()
		return m, msg.ShowToast("Reloaded", 2*time.Second)

	case "pgup", "pgdown", "ctrl+d", "ctrl+u", "ctrl+e", "ctrl+y":
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(keyMsg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.sidebar, cmd = m.sidebar.Update(keyMsg)
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.persistSession()
	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			m.logger.Warn("watcher close failed", "error", err)
		}
	}
	return m, tea.Quit
}

// createNote adds a fresh note, selects it, and shows it in the editor.
func (m Model) createNote() (tea.Model, tea.Cmd) {
	n := note.New()
	if err := m.coll.Add(n); err != nil {
		return m, ReportError(err)
	}
	m.sidebar.SetNotes(m.coll.All())
	m.selectNote(n.ID)
	return m, nil
}

// deleteNote removes the note. Deleting the selected note clears both panes.
func (m Model) deleteNote(id uuid.UUID) (tea.Model, tea.Cmd) {
	n, ok := m.coll.Get(id)
	if !ok {
		return m, nil
	}
	if err := m.coll.Remove(id); err != nil {
		return m, ReportError(err)
	}

	wasSelected := m.sidebar.Selected() == id || m.editor.DisplayedID() == id
	m.sidebar.SetNotes(m.coll.All())
	if wasSelected {
		m.clearSelection()
	}

	title := n.Title
	if title == "" {
		title = note.DefaultTitle
	}
	return m, msg.ShowToast("Deleted: "+title, 2*time.Second)
}

// renameNote retitles the note, keeping the editor header in sync when the
// renamed note is on display.
func (m Model) renameNote(id uuid.UUID, title string) (tea.Model, tea.Cmd) {
	renamed, ok, err := m.coll.Rename(id, title)
	if err != nil {
		return m, ReportError(err)
	}
	if !ok {
		return m, nil
	}

	m.sidebar.SetNotes(m.coll.All())
	if m.editor.DisplayedID() == id {
		m.editor.Load(renamed)
	}
	if m.sidebar.Selected() == id {
		m.sidebar.Select(id)
	}
	return m, nil
}

// reloadFromDisk rebuilds the collection after an external change. The
// selection survives when its note still exists; otherwise both panes clear.
func (m *Model) reloadFromDisk() {
	if err := m.coll.Load(); err != nil {
		m.logger.Error("reload failed", "error", err)
		m.ShowErrorToast("Reload failed: "+err.Error(), 5*time.Second)
		return
	}

	m.sidebar.SetNotes(m.coll.All())

	selected := m.sidebar.Selected()
	if selected == uuid.Nil {
		return
	}
	if n, ok := m.coll.Get(selected); ok {
		m.sidebar.Select(n.ID)
		m.editor.Load(n)
	} else {
		m.clearSelection()
	}
}

// yankContent copies the displayed note's content to the system clipboard.
func (m *Model) yankContent() tea.Cmd {
	n, ok := m.currentNote()
	if !ok {
		return nil
	}
	if n.Content == "" {
		return msg.ShowToast("No content to copy", 2*time.Second)
	}
	if err := clipboard.WriteAll(n.Content); err != nil {
		return msg.ShowErrorToast("Copy failed: "+err.Error(), 2*time.Second)
	}
	return msg.ShowToast("Copied note content", 2*time.Second)
}

// yankTitle copies the displayed note's title to the system clipboard.
func (m *Model) yankTitle() tea.Cmd {
	n, ok := m.currentNote()
	if !ok {
		return nil
	}
	title := n.Title
	if title == "" {
		title = note.DefaultTitle
	}
	if err := clipboard.WriteAll(title); err != nil {
		return msg.ShowErrorToast("Copy failed: "+err.Error(), 2*time.Second)
	}
	return msg.ShowToast("Copied: "+title, 2*time.Second)
}

// currentNote returns the note under the sidebar cursor, falling back to
// the displayed note.
func (m *Model) currentNote() (note.Note, bool) {
	if n, ok := m.sidebar.CursorNote(); ok {
		return n, true
	}
	return m.editor.Note()
}
