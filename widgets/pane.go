package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane draws a titled rounded frame. Selected and focused panes get accent
// borders and a title marker.
type Pane struct {
	Title    string
	Content  string
	Selected bool
	Focused  bool
}

func (p Pane) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	width = max(width, 4)
	h := max(height, 3)

	border := ColorBorder
	titlePrefix := "  "
	if p.Selected {
		border = ColorAccent
		titlePrefix = "▶ "
	}
	if p.Focused {
		border = ColorFocus
		titlePrefix = "● "
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(ColorText).Bold(true)

	innerWidth := width - 2
	contentWidth := max(1, innerWidth-2)

	title := strings.TrimSpace(titlePrefix + p.Title)
	titleText := " " + title + " "
	if ansi.StringWidth(titleText) > innerWidth {
		titleText = " " + ansi.Truncate(title, max(1, innerWidth-2), "") + " "
	}
	dashes := max(0, innerWidth-ansi.StringWidth(titleText))
	leftDash := min(1, dashes)
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭"+strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)+"╮")

	innerHeight := h - 2
	contentLines := strings.Split(p.Content, "\n")
	rows := make([]string, 0, h)
	rows = append(rows, top)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		rows = append(rows, v+" "+padRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}
