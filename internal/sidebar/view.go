package sidebar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/marcus/jot/internal/note"
	"github.com/marcus/jot/internal/styles"
)

// entryHeight is the number of lines one note entry occupies.
const entryHeight = 2

// View renders the sidebar content for the current dimensions.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if len(m.notes) == 0 {
		b.WriteString(styles.Placeholder.Render("No notes yet"))
		b.WriteString("\n")
		b.WriteString(styles.Subtle.Render("press n to create one"))
		return b.String()
	}

	rows := m.visibleRows()
	end := m.scrollOff + rows
	if end > len(m.notes) {
		end = len(m.notes)
	}

	for i := m.scrollOff; i < end; i++ {
		b.WriteString(m.renderEntry(i))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderHeader() string {
	title := styles.PaneHeader.Render("Notes")
	count := styles.Muted.Render(fmt.Sprintf(" %d", len(m.notes)))
	return title + count
}

// renderEntry renders one note as a title line and a meta line.
func (m Model) renderEntry(i int) string {
	n := m.notes[i]
	isCursor := i == m.cursor
	isSelected := n.ID == m.selected

	titleLine := m.renderTitleLine(n, isCursor)
	metaLine := m.renderMetaLine(n, isCursor, isSelected)
	return titleLine + "\n" + metaLine
}

func (m Model) renderTitleLine(n note.Note, isCursor bool) string {
	marker := "  "
	if isCursor {
		marker = "> "
	}

	if m.mode == ModeRenaming && n.ID == m.renameID {
		return truncate(marker+m.renameInput.View(), m.width)
	}

	title := n.Title
	if title == "" {
		title = note.DefaultTitle
	}
	line := truncate(marker+title, m.width)
	if isCursor {
		return styles.ListItemCursor.Render(pad(line, m.width))
	}
	return styles.ListItemNormal.Render(line)
}

func (m Model) renderMetaLine(n note.Note, isCursor, isSelected bool) string {
	preview := strings.ReplaceAll(n.Preview(), "\n", " ")
	meta := truncate("  "+n.FormattedTime()+"  "+preview, m.width)
	if isCursor {
		return styles.ListItemSelected.Render(pad(meta, m.width))
	}
	if isSelected {
		return styles.ListMeta.Render(pad(meta, m.width))
	}
	return styles.ListMeta.Render(meta)
}

// truncate cuts s to the pane width, ANSI-aware.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// pad right-fills s with spaces to width so row highlights span the pane.
func pad(s string, width int) string {
	w := runewidth.StringWidth(ansi.Strip(s))
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
