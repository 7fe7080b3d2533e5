package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/storygram/widgets"
)

const appName = "storygram"

func (m Model) View() string {
	if m.quitting {
		return "Bye\n"
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	bodyHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer))

	var body string
	top := m.screens.Top()
	if fs, ok := top.(FullScreen); ok && fs.FullScreen() {
		body = top.View(m.width, bodyHeight)
	} else {
		if len(m.tabs) > 0 && bodyHeight > 0 {
			body = m.tabs[m.activeTab].Build(&m).Render(max(1, m.width), bodyHeight)
		}
		if top != nil && bodyHeight > 0 {
			popup := top.View(max(20, m.width*2/3), max(8, bodyHeight-4))
			body = widgets.RenderPopup(body, popup, m.width, bodyHeight)
		}
	}
	body = widgets.FitHeight(body, bodyHeight)
	view := strings.Join([]string{header, status, body, footer}, "\n")
	view = widgets.FitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func renderHeader(m Model) string {
	tabs := make([]string, 0, len(m.tabs))
	for i, t := range m.tabs {
		label := fmt.Sprintf("%d:%s", i+1, t.Title())
		if i == m.activeTab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	left := headerAppStyle.Render(appName)
	right := tabSepStyle.Render(" ") + strings.Join(tabs, tabSepStyle.Render("│"))
	right = ansi.Truncate(right, max(1, m.width), "")
	gap := 1
	if leftW, rightW := ansi.StringWidth(left), ansi.StringWidth(right); leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right, colorMantle)
}
