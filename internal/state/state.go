// Package state persists lightweight session state (last selected note,
// sidebar width) across runs, separate from user configuration.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// State holds persistent session state.
type State struct {
	// SelectedNote is the id of the last selected note, empty if none.
	SelectedNote string `json:"selectedNote,omitempty"`

	// SidebarWidth is the sidebar width in cells (0 = use config default).
	SidebarWidth int `json:"sidebarWidth,omitempty"`
}

var (
	current *State
	mu      sync.RWMutex
	path    string
)

// Init loads state from the default location.
func Init() error {
	cfgDir, err := os.UserConfigDir()
	if err != nil {
		return err
	}
	return InitWithDir(filepath.Join(cfgDir, "jot"))
}

// InitWithDir loads state from a specified directory.
// This is primarily for testing to avoid reading real user state.
func InitWithDir(dir string) error {
	path = filepath.Join(dir, "state.json")
	return Load()
}

// Load reads state from disk.
func Load() error {
	mu.Lock()
	defer mu.Unlock()

	current = &State{}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil // no state file yet, use defaults
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(data, current)
}

// Save writes state to disk.
func Save() error {
	mu.RLock()
	defer mu.RUnlock()

	if current == nil {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetSelectedNote returns the last selected note id, empty if none.
func GetSelectedNote() string {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return ""
	}
	return current.SelectedNote
}

// SetSelectedNote saves the selected note id. Pass empty to clear.
func SetSelectedNote(id string) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.SelectedNote = id
	mu.Unlock()
	return Save()
}

// GetSidebarWidth returns the saved sidebar width.
// Returns 0 if no preference is saved (use default).
func GetSidebarWidth() int {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return 0
	}
	return current.SidebarWidth
}

// SetSidebarWidth saves the sidebar width.
func SetSidebarWidth(width int) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.SidebarWidth = width
	mu.Unlock()
	return Save()
}
