package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/marcus/jot/internal/note"
)

// Storage persists one JSON document per note in a single directory.
// The directory listing is the index; there is no manifest.
type Storage struct {
	dir    string
	logger *slog.Logger
}

// DefaultDir returns the platform notes directory, <UserConfigDir>/jot/notes.
func DefaultDir() (string, error) {
	cfgDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(cfgDir, "jot", "notes"), nil
}

// New creates a Storage rooted at dir, creating the directory if needed.
// The app cannot function without the directory, so callers treat an error
// here as fatal.
func New(dir string, logger *slog.Logger) (*Storage, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create notes dir: %w", err)
	}
	return &Storage{dir: dir, logger: logger}, nil
}

// Dir returns the notes directory.
func (s *Storage) Dir() string {
	return s.dir
}

// Save serializes the note to <dir>/<id>.json, replacing any existing file.
// On error the caller must not assume the note persisted.
func (s *Storage) Save(n note.Note) error {
	data, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal note %s: %w", n.ID, err)
	}
	if err := writeFileAtomic(s.notePath(n.ID), data, 0644); err != nil {
		return fmt.Errorf("write note %s: %w", n.ID, err)
	}
	return nil
}

// LoadAll parses every *.json file in the directory, sorted most recently
// updated first. A corrupt file is logged and skipped; it never aborts the
// scan.
func (s *Storage) LoadAll() ([]note.Note, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read notes dir: %w", err)
	}

	var notes []note.Note
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			s.logger.Warn("skipping unreadable note file", "path", path, "error", err)
			continue
		}
		var n note.Note
		if err := json.Unmarshal(data, &n); err != nil {
			s.logger.Warn("skipping corrupt note file", "path", path, "error", err)
			continue
		}
		notes = append(notes, n)
	}

	sort.Slice(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})

	return notes, nil
}

// Delete removes the note file for id. A missing file is not an error;
// delete is idempotent.
func (s *Storage) Delete(id uuid.UUID) error {
	if err := os.Remove(s.notePath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete note %s: %w", id, err)
	}
	return nil
}

func (s *Storage) notePath(id uuid.UUID) string {
	return filepath.Join(s.dir, id.String()+".json")
}

// writeFileAtomic writes data to a temp file in the same directory and
// renames it over path, so readers never observe a partial note.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".tmp.%s.%d", base, os.Getpid()))

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
