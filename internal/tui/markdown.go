package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdown renders markdown for a given width, rebuilding the glamour renderer
// only when the width changes.
type markdown struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
}

func newMarkdown(style string) *markdown {
	return &markdown{style: style}
}

// Render returns s rendered at width. On renderer failure the raw text is
// returned so content is never lost.
func (md *markdown) Render(s string, width int) string {
	if width < 1 {
		return s
	}

	if md.renderer == nil || md.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(md.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return s
		}
		md.renderer = r
		md.width = width
	}

	out, err := md.renderer.Render(s)
	if err != nil {
		return s
	}
	return strings.Trim(out, "\n")
}
