package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/jot/internal/styles"
)

// View renders the full application frame.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	contentHeight := m.height - 2
	if m.showFooter {
		contentHeight--
	}
	if contentHeight < 1 {
		contentHeight = 1
	}

	editorOuter := m.width - m.sidebarWidth - dividerWidth
	if editorOuter < 3 {
		editorOuter = 3
	}

	sidebarPane := styles.PaneActive.
		Width(m.sidebarWidth - 2).
		Height(contentHeight).
		MaxHeight(contentHeight + 2).
		Render(m.sidebar.View())

	divider := styles.Divider.Render(strings.TrimRight(
		strings.Repeat("│\n", contentHeight+2), "\n"))

	editorPane := styles.PaneInactive.
		Width(editorOuter - 2).
		Height(contentHeight).
		MaxHeight(contentHeight + 2).
		Render(m.editor.View())

	row := lipgloss.JoinHorizontal(lipgloss.Top, sidebarPane, divider, editorPane)

	if !m.showFooter {
		return row
	}
	return row + "\n" + m.renderFooter()
}

// renderFooter renders the status line: toast if one is active, otherwise
// key hints, with the version chip on the right.
func (m Model) renderFooter() string {
	var left string
	switch {
	case m.statusMsg != "" && m.statusIsError:
		left = styles.ToastError.Render(m.statusMsg)
	case m.statusMsg != "":
		left = styles.ToastSuccess.Render(m.statusMsg)
	default:
		left = styles.FooterText.Render(
			"n new · enter open · r rename · d delete · y yank · q quit")
	}

	right := styles.FooterChip.Render("jot " + m.currentVersion)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}
