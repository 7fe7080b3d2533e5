package tabs

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/storygram/widgets"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(widgets.ColorText).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(widgets.ColorMuted)
	accentStyle   = lipgloss.NewStyle().Foreground(widgets.ColorAccent).Bold(true)
	likeStyle     = lipgloss.NewStyle().Foreground(widgets.ColorLike)
	saveStyle     = lipgloss.NewStyle().Foreground(widgets.ColorSave)
	starStyle     = lipgloss.NewStyle().Foreground(widgets.ColorStar)
	chipStyle     = lipgloss.NewStyle().Foreground(widgets.ColorMuted).Padding(0, 1)
	chipOnStyle   = lipgloss.NewStyle().Foreground(widgets.ColorOverlay).Background(widgets.ColorAccent).Bold(true).Padding(0, 1)
	buttonStyle   = lipgloss.NewStyle().Foreground(widgets.ColorSave).Bold(true)
	buttonOnStyle = lipgloss.NewStyle().Foreground(widgets.ColorMuted)
	cursorMark    = accentStyle.Render("▌")
)

// clamp keeps a list cursor inside [0, n-1]; an empty list pins it at 0.
func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	return min(i, n-1)
}

func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func chips(labels []string, active int) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		if i == active {
			parts[i] = chipOnStyle.Render(l)
		} else {
			parts[i] = chipStyle.Render(l)
		}
	}
	return strings.Join(parts, " ")
}

func followButton(following bool) string {
	if following {
		return buttonOnStyle.Render("[Following]")
	}
	return buttonStyle.Render("[Follow]")
}

// row marks the cursor line and right-aligns an optional trailing part.
func row(selected bool, left, right string, width int) string {
	mark := " "
	if selected {
		mark = cursorMark
	}
	line := mark + " " + left
	if right == "" {
		return line
	}
	gap := max(1, width-ansi.StringWidth(line)-ansi.StringWidth(right))
	return line + strings.Repeat(" ", gap) + right
}

// window returns the slice bounds that keep cur visible in a list showing at
// most size entries.
func window(cur, n, size int) (int, int) {
	if size <= 0 || n <= size {
		return 0, n
	}
	start := min(max(0, cur-size+1), n-size)
	return start, start + size
}

func newQueryInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = "⌕ "
	in.CharLimit = 64
	return in
}

// updateQuery feeds a key to a focused query box. It reports whether the
// query text changed; esc and enter only leave the box.
func updateQuery(in *textinput.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		in.Blur()
		return false, nil
	case "ctrl+u":
		changed := in.Value() != ""
		in.Reset()
		return changed, nil
	}
	before := in.Value()
	next, cmd := in.Update(msg)
	*in = next
	return in.Value() != before, cmd
}
