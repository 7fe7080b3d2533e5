package widgets

import "strings"

// Widget renders itself into a width x height cell box.
type Widget interface {
	Render(width, height int) string
}

// Text is a widget of pre-rendered lines, clipped to the box.
type Text string

func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(string(t), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

// Func adapts a render function to Widget.
type Func func(width, height int) string

func (f Func) Render(width, height int) string { return f(width, height) }
