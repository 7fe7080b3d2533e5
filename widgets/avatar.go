package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Avatar stands in for a profile picture: the first letter in parentheses.
func Avatar(name string) string {
	r := []rune(strings.TrimSpace(name))
	if len(r) == 0 {
		return "( )"
	}
	return lipgloss.NewStyle().Foreground(ColorAccent).Render("(" + strings.ToUpper(string(r[0])) + ")")
}
