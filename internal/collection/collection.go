// Package collection holds the in-memory note map, the single writable
// source of truth while the app runs. Every mutation goes to disk first;
// memory is only updated once the write succeeded, so memory never claims
// durability it doesn't have.
package collection

import (
	"sort"

	"github.com/google/uuid"

	"github.com/marcus/jot/internal/note"
	"github.com/marcus/jot/internal/storage"
)

// Collection maps note identity to Note, synchronized with a Storage.
type Collection struct {
	notes map[uuid.UUID]note.Note
	store *storage.Storage
}

// New returns an empty collection backed by store.
func New(store *storage.Storage) *Collection {
	return &Collection{
		notes: make(map[uuid.UUID]note.Note),
		store: store,
	}
}

// Load rebuilds the map from disk, replacing the current contents.
func (c *Collection) Load() error {
	notes, err := c.store.LoadAll()
	if err != nil {
		return err
	}
	c.notes = make(map[uuid.UUID]note.Note, len(notes))
	for _, n := range notes {
		c.notes[n.ID] = n
	}
	return nil
}

// Add persists the note, then inserts it into the map. On a failed save the
// map is left untouched.
func (c *Collection) Add(n note.Note) error {
	if err := c.store.Save(n); err != nil {
		return err
	}
	c.notes[n.ID] = n
	return nil
}

// Remove deletes the note file, then drops the note from the map. Removing
// an unknown id is a no-op; storage delete is idempotent.
func (c *Collection) Remove(id uuid.UUID) error {
	if err := c.store.Delete(id); err != nil {
		return err
	}
	delete(c.notes, id)
	return nil
}

// Rename sets a new title on the note, persisting before the in-memory copy
// is replaced. An absent id is a silent no-op. Returns the renamed note and
// whether a rename happened.
func (c *Collection) Rename(id uuid.UUID, title string) (note.Note, bool, error) {
	n, ok := c.notes[id]
	if !ok {
		return note.Note{}, false, nil
	}

	n.SetTitle(title)
	if err := c.store.Save(n); err != nil {
		return note.Note{}, false, err
	}
	c.notes[id] = n
	return n, true, nil
}

// Get returns the note for id.
func (c *Collection) Get(id uuid.UUID) (note.Note, bool) {
	n, ok := c.notes[id]
	return n, ok
}

// All returns the notes sorted most recently updated first.
func (c *Collection) All() []note.Note {
	notes := make([]note.Note, 0, len(c.notes))
	for _, n := range c.notes {
		notes = append(notes, n)
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
	return notes
}

// Len returns the number of notes.
func (c *Collection) Len() int {
	return len(c.notes)
}
