package note

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultTitle is the title assigned to freshly created notes.
	DefaultTitle = "Untitled"

	// previewLimit is the number of characters shown in the sidebar preview.
	previewLimit = 50

	// noContentPlaceholder is shown in place of a preview for empty notes.
	noContentPlaceholder = "No content"
)

// Note is a single note. Content is opaque markdown-flavored text.
type Note struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New returns a fresh note with a generated identity, the default title,
// empty content, and matching created/updated timestamps.
func New() Note {
	now := time.Now()
	return Note{
		ID:        uuid.New(),
		Title:     DefaultTitle,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetTitle replaces the title and refreshes the updated timestamp.
// Empty titles are allowed; callers that want to reject them do so upstream.
func (n *Note) SetTitle(title string) {
	n.Title = title
	n.UpdatedAt = time.Now()
}

// SetContent replaces the content and refreshes the updated timestamp.
func (n *Note) SetContent(content string) {
	n.Content = content
	n.UpdatedAt = time.Now()
}

// Preview returns the first 50 characters of content for sidebar display,
// with "..." appended when the content was truncated. Empty notes get a
// placeholder instead.
func (n Note) Preview() string {
	if n.Content == "" {
		return noContentPlaceholder
	}
	runes := []rune(n.Content)
	if len(runes) <= previewLimit {
		return n.Content
	}
	return string(runes[:previewLimit]) + "..."
}

// FormattedTime renders the updated timestamp as "2006-01-02 15:04".
func (n Note) FormattedTime() string {
	return n.UpdatedAt.Format("2006-01-02 15:04")
}
