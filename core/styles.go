package core

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/storygram/widgets"
)

var (
	colorMantle  lipgloss.Color = "#181825"
	colorSurface lipgloss.Color = "#313244"
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorError   lipgloss.Color = "#f38ba8"

	appStyle = lipgloss.NewStyle().Foreground(widgets.ColorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(widgets.ColorAccent).Bold(true).Background(colorMantle)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(widgets.ColorText)
	tabSepStyle = lipgloss.NewStyle().
			Foreground(widgets.ColorBorder).
			Background(colorMantle)

	activeTabStyle = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(widgets.ColorAccent).
			Bold(true).
			Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().
				Background(colorMantle).
				Foreground(widgets.ColorMuted).
				Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)
)
