package core

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/storygram/widgets"
)

func RenderFooter(m Model) string {
	bindings := m.keys.BindingsForScope(m.ActiveScope())
	bg := colorMantle
	keyStyle := lipgloss.NewStyle().Foreground(widgets.ColorAccent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(widgets.ColorMuted).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(strings.Join(b.Keys, "/"), b.Description))
		h := kb.Help()
		if h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = descStyle.Render("No shortcuts")
	}
	return renderBar(footerStyle, max(1, m.width), line, bg)
}

func RenderStatusBar(m Model) string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	if m.statusErr {
		return renderBar(statusErrBarStyle, max(1, m.width), msg, colorSurface)
	}
	return renderBar(statusBarStyle, max(1, m.width), msg, colorSurface)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := ansi.Truncate(strings.ReplaceAll(text, "\n", " "), width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}
