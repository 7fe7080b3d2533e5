package widgets

import "github.com/charmbracelet/lipgloss"

var (
	ColorText    lipgloss.Color = "#cdd6f4"
	ColorMuted   lipgloss.Color = "#a6adc8"
	ColorBorder  lipgloss.Color = "#585b70"
	ColorAccent  lipgloss.Color = "#ff00af"
	ColorFocus   lipgloss.Color = "#a6e3a1"
	ColorLike    lipgloss.Color = "#ff69b4"
	ColorSave    lipgloss.Color = "#0095f6"
	ColorStar    lipgloss.Color = "#ffd700"
	ColorDim     lipgloss.Color = "#45475a"
	ColorOverlay lipgloss.Color = "#11111b"
)
