package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Segments is the row of story progress bars: one bar per image, filled up
// to and including the active one.
type Segments struct {
	Count  int
	Active int
	Gap    int
}

func (s Segments) Render(width, height int) string {
	if width <= 0 || height <= 0 || s.Count <= 0 {
		return ""
	}
	gap := max(0, s.Gap)
	usable := width - gap*(s.Count-1)
	if usable < s.Count {
		gap = 0
		usable = width
	}
	widths := splitWidths(usable, s.Count, nil)
	filled := lipgloss.NewStyle().Foreground(ColorText)
	empty := lipgloss.NewStyle().Foreground(ColorDim)

	var b strings.Builder
	for i, w := range widths {
		if w <= 0 {
			continue
		}
		style := empty
		if i <= s.Active {
			style = filled
		}
		b.WriteString(style.Render(strings.Repeat("━", w)))
		if i < s.Count-1 {
			b.WriteString(strings.Repeat(" ", gap))
		}
	}
	return b.String()
}
