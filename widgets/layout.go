package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VStack stacks widgets top to bottom. Sizes pins a widget to a fixed number
// of rows; widgets with size 0 share what is left according to Ratios.
type VStack struct {
	Widgets []Widget
	Spacing int
	Sizes   []int
	Ratios  []float64
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	spacingTotal := max(0, v.Spacing*(len(v.Widgets)-1))
	heights := v.heights(max(1, height-spacingTotal))
	lines := make([]string, 0, height)
	for i, w := range v.Widgets {
		if heights[i] <= 0 {
			continue
		}
		lines = append(lines, splitToLines(w.Render(width, heights[i]), heights[i])...)
		if i < len(v.Widgets)-1 {
			for s := 0; s < v.Spacing; s++ {
				lines = append(lines, "")
			}
		}
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func (v VStack) heights(total int) []int {
	n := len(v.Widgets)
	out := make([]int, n)
	flex := make([]int, 0, n)
	ratios := make([]float64, 0, n)
	used := 0
	for i := range v.Widgets {
		if i < len(v.Sizes) && v.Sizes[i] > 0 {
			out[i] = min(v.Sizes[i], max(0, total-used))
			used += out[i]
			continue
		}
		flex = append(flex, i)
		if i < len(v.Ratios) {
			ratios = append(ratios, v.Ratios[i])
		} else {
			ratios = append(ratios, 1)
		}
	}
	if len(flex) == 0 {
		return out
	}
	shares := splitWidths(max(0, total-used), len(flex), ratios)
	for j, i := range flex {
		out[i] = shares[j]
	}
	return out
}

type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gapTotal := max(0, h.Gap*(len(h.Widgets)-1))
	usable := max(1, width-gapTotal)
	widths := splitWidths(usable, len(h.Widgets), h.Ratios)
	rendered := make([][]string, len(h.Widgets))
	maxLines := 0
	for i, w := range h.Widgets {
		part := strings.Split(w.Render(max(1, widths[i]), height), "\n")
		rendered[i] = part
		maxLines = max(maxLines, len(part))
	}
	out := make([]string, 0, maxLines)
	for line := 0; line < maxLines; line++ {
		cols := make([]string, len(rendered))
		for i := range rendered {
			if line < len(rendered[i]) {
				cols[i] = padRight(rendered[i][line], widths[i])
			} else {
				cols[i] = strings.Repeat(" ", widths[i])
			}
		}
		out = append(out, strings.Join(cols, strings.Repeat(" ", h.Gap)))
	}
	return strings.Join(out, "\n")
}

func splitWidths(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	if len(ratios) != n {
		for i := range out {
			out[i] = total / n
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	sum := 0.0
	for _, r := range ratios {
		sum += positive(r)
	}
	used := 0
	for i := range out {
		out[i] = int(math.Floor((positive(ratios[i]) / sum) * float64(total)))
		used += out[i]
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

func positive(r float64) float64 {
	if r <= 0 {
		return 1
	}
	return r
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
