// Package app is the root Bubble Tea model: it owns the collection, wires
// the sidebar and editor panes together, and executes sidebar intents.
package app

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/marcus/jot/internal/collection"
	"github.com/marcus/jot/internal/config"
	"github.com/marcus/jot/internal/editor"
	"github.com/marcus/jot/internal/sidebar"
	"github.com/marcus/jot/internal/state"
	"github.com/marcus/jot/internal/watch"
)

const (
	dividerWidth    = 1
	minSidebarWidth = 20
)

// Model is the root Bubble Tea model for the jot application.
type Model struct {
	cfg    *config.Config
	logger *slog.Logger

	coll    *collection.Collection
	watcher *watch.Watcher

	sidebar sidebar.Model
	editor  editor.Model

	// UI state
	width, height int
	sidebarWidth  int
	showFooter    bool
	ready         bool

	// Status/toast messages
	statusMsg     string
	statusExpiry  time.Time
	statusIsError bool

	// Version info
	currentVersion string
}

// New creates the application model. The watcher may be nil when file
// watching is unavailable; the app then runs without external refresh.
func New(cfg *config.Config, coll *collection.Collection, watcher *watch.Watcher, logger *slog.Logger, currentVersion string) Model {
	if logger == nil {
		logger = slog.Default()
	}

	sidebarWidth := cfg.UI.SidebarWidth
	if saved := state.GetSidebarWidth(); saved > 0 {
		sidebarWidth = saved
	}

	m := Model{
		cfg:            cfg,
		logger:         logger,
		coll:           coll,
		watcher:        watcher,
		sidebar:        sidebar.New(),
		editor:         editor.New(cfg.UI.MarkdownStyle),
		sidebarWidth:   sidebarWidth,
		showFooter:     cfg.UI.ShowFooter,
		currentVersion: currentVersion,
	}

	m.sidebar.SetNotes(coll.All())
	m.restoreSelection()
	return m
}

// Init starts the clock and the watch loop.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd()}
	if m.watcher != nil {
		cmds = append(cmds, waitForChange(m.watcher.Events()))
	}
	return tea.Batch(cmds...)
}

// restoreSelection re-selects the note remembered from the previous run.
func (m *Model) restoreSelection() {
	id, err := uuid.Parse(state.GetSelectedNote())
	if err != nil {
		return
	}
	if n, ok := m.coll.Get(id); ok {
		m.sidebar.Select(n.ID)
		m.editor.Load(n)
	}
}

// selectNote makes the note the current selection in both panes and records
// it in the state file, so the selection survives even an unclean exit.
func (m *Model) selectNote(id uuid.UUID) {
	n, ok := m.coll.Get(id)
	if !ok {
		return
	}
	m.sidebar.Select(n.ID)
	m.editor.Load(n)
	if err := state.SetSelectedNote(n.ID.String()); err != nil {
		m.logger.Warn("failed to persist selection", "error", err)
	}
}

// clearSelection empties both panes' selection.
func (m *Model) clearSelection() {
	m.sidebar.ClearSelection()
	m.editor.Clear()
	if err := state.SetSelectedNote(""); err != nil {
		m.logger.Warn("failed to persist selection", "error", err)
	}
}

// ShowToast displays a temporary status message.
func (m *Model) ShowToast(msg string, duration time.Duration) {
	m.statusMsg = msg
	m.statusExpiry = time.Now().Add(duration)
	m.statusIsError = false
}

// ShowErrorToast displays a temporary error message.
func (m *Model) ShowErrorToast(msg string, duration time.Duration) {
	m.ShowToast(msg, duration)
	m.statusIsError = true
}

// ClearToast clears any expired toast message.
func (m *Model) ClearToast() {
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
		m.statusIsError = false
	}
}

// persistSession saves selection and layout for the next run.
func (m *Model) persistSession() {
	selected := ""
	if id := m.sidebar.Selected(); id != uuid.Nil {
		selected = id.String()
	}
	if err := state.SetSelectedNote(selected); err != nil {
		m.logger.Warn("failed to persist selection", "error", err)
	}
	if err := state.SetSidebarWidth(m.sidebarWidth); err != nil {
		m.logger.Warn("failed to persist sidebar width", "error", err)
	}
}

// layout recomputes pane sizes from the window dimensions.
func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}

	maxSidebar := m.width / 2
	if m.sidebarWidth > maxSidebar {
		m.sidebarWidth = maxSidebar
	}
	if m.sidebarWidth < minSidebarWidth {
		m.sidebarWidth = minSidebarWidth
	}

	contentHeight := m.height - 2 // pane borders
	if m.showFooter {
		contentHeight--
	}
	if contentHeight < 1 {
		contentHeight = 1
	}

	editorWidth := m.width - m.sidebarWidth - dividerWidth - 8 // borders + padding
	if editorWidth < 1 {
		editorWidth = 1
	}

	m.sidebar.SetSize(m.sidebarWidth-4, contentHeight)
	m.editor.SetSize(editorWidth, contentHeight)
}
