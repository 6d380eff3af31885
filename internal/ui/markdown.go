// Package ui holds rendering helpers shared by the panes.
package ui

import (
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders note content as styled terminal markdown. The
// underlying glamour renderer is wrap-width dependent, so it is rebuilt
// lazily when the width changes.
type MarkdownRenderer struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
}

// NewMarkdownRenderer returns a renderer using the given glamour style name.
// "auto" picks light or dark based on the terminal background.
func NewMarkdownRenderer(style string) *MarkdownRenderer {
	if style == "" {
		style = "auto"
	}
	return &MarkdownRenderer{style: style}
}

// Render renders content wrapped to width. On any renderer failure the raw
// content is returned so the note is never invisible.
func (r *MarkdownRenderer) Render(content string, width int) string {
	if width < 1 {
		width = 1
	}
	if r.renderer == nil || r.width != width {
		opts := []glamour.TermRendererOption{
			glamour.WithWordWrap(width),
		}
		if r.style == "auto" {
			opts = append(opts, glamour.WithAutoStyle())
		} else {
			opts = append(opts, glamour.WithStandardStyle(r.style))
		}
		renderer, err := glamour.NewTermRenderer(opts...)
		if err != nil {
			return content
		}
		r.renderer = renderer
		r.width = width
	}

	out, err := r.renderer.Render(content)
	if err != nil {
		return content
	}
	return out
}
