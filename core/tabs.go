package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/storygram/widgets"
)

type Pane interface {
	ID() string
	Title() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	View(width, height int, selected, focused bool) string
}

// PaneFocuser panes are told when they gain or lose keyboard focus.
type PaneFocuser interface {
	OnFocus(m *Model) tea.Cmd
	OnBlur(m *Model) tea.Cmd
}

// PaneHost tracks which pane is selected and which, if any, has focus.
// Unfocused, arrow keys move the selection; enter focuses; esc unfocuses.
type PaneHost struct {
	panes    []Pane
	selected int
	focused  int
}

func NewPaneHost(panes ...Pane) PaneHost {
	return PaneHost{panes: panes, selected: 0, focused: -1}
}

func (h *PaneHost) Scope() string {
	if idx := h.activeIndex(); idx >= 0 {
		return h.panes[idx].Scope()
	}
	return ""
}

func (h *PaneHost) ActivePaneTitle() string {
	if idx := h.activeIndex(); idx >= 0 {
		return h.panes[idx].Title()
	}
	return ""
}

func (h *PaneHost) Focused() bool {
	return h.focused >= 0 && h.focused < len(h.panes)
}

func (h *PaneHost) activeIndex() int {
	if h.Focused() {
		return h.focused
	}
	if h.selected >= 0 && h.selected < len(h.panes) {
		return h.selected
	}
	return -1
}

func (h *PaneHost) active() Pane {
	if idx := h.activeIndex(); idx >= 0 {
		return h.panes[idx]
	}
	return nil
}

func (h *PaneHost) UpdateActive(m *Model, msg tea.Msg) tea.Cmd {
	p := h.active()
	if p == nil {
		return nil
	}
	return p.Update(m, msg)
}

// CapturesInput reports whether the focused pane is reading text.
func (h *PaneHost) CapturesInput() bool {
	if !h.Focused() {
		return false
	}
	c, ok := h.panes[h.focused].(InputCapturer)
	return ok && c.CapturesInput()
}

func (h *PaneHost) HandlePaneKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	if len(h.panes) == 0 {
		return false, nil
	}
	if h.Focused() {
		if msg.String() == "esc" {
			return true, h.unfocus(m)
		}
		return false, nil
	}
	switch msg.String() {
	case "left", "up":
		return true, h.move(m, -1)
	case "right", "down":
		return true, h.move(m, 1)
	case "enter":
		return true, h.focusSelected(m)
	default:
		return false, nil
	}
}

func (h *PaneHost) move(m *Model, delta int) tea.Cmd {
	if len(h.panes) <= 1 {
		return nil
	}
	h.selected = (h.selected + delta + len(h.panes)) % len(h.panes)
	m.SetStatus("Selected pane: " + h.panes[h.selected].Title())
	return nil
}

// Focus selects and focuses the pane with the given id.
func (h *PaneHost) Focus(m *Model, id string) tea.Cmd {
	for i, p := range h.panes {
		if p.ID() == id {
			h.selected = i
			return h.focusSelected(m)
		}
	}
	return nil
}

func (h *PaneHost) focusSelected(m *Model) tea.Cmd {
	if h.selected < 0 || h.selected >= len(h.panes) || h.focused == h.selected {
		return nil
	}
	var cmds []tea.Cmd
	if h.Focused() {
		cmds = append(cmds, blurPane(m, h.panes[h.focused]))
	}
	h.focused = h.selected
	m.SetStatus("Focused pane: " + h.panes[h.focused].Title())
	if f, ok := h.panes[h.focused].(PaneFocuser); ok {
		cmds = append(cmds, f.OnFocus(m))
	}
	return tea.Batch(cmds...)
}

func (h *PaneHost) unfocus(m *Model) tea.Cmd {
	if !h.Focused() {
		return nil
	}
	p := h.panes[h.focused]
	h.focused = -1
	m.SetStatus("Pane unfocused: " + p.Title())
	return blurPane(m, p)
}

func blurPane(m *Model, p Pane) tea.Cmd {
	if f, ok := p.(PaneFocuser); ok {
		return f.OnBlur(m)
	}
	return nil
}

type paneWidget struct {
	pane     Pane
	selected bool
	focused  bool
}

func (w paneWidget) Render(width, height int) string {
	return w.pane.View(width, height, w.selected, w.focused)
}

func (h *PaneHost) BuildPane(id string) widgets.Widget {
	for idx, p := range h.panes {
		if p.ID() == id {
			return paneWidget{pane: p, selected: idx == h.selected, focused: idx == h.focused}
		}
	}
	return widgets.Pane{Title: "Missing pane", Content: id}
}

type LayoutBuilder func(host *PaneHost, m *Model) widgets.Widget

// GeneratedTab is a tab made only of panes arranged by a layout function.
type GeneratedTab struct {
	id     string
	title  string
	host   PaneHost
	layout LayoutBuilder
	init   func(m *Model) tea.Cmd
}

func NewGeneratedTab(id, title string, panes []Pane, layout LayoutBuilder) *GeneratedTab {
	return &GeneratedTab{id: id, title: title, host: NewPaneHost(panes...), layout: layout}
}

// WithInit sets a hook run from the program's Init, typically to focus the
// starting pane.
func (t *GeneratedTab) WithInit(fn func(m *Model, host *PaneHost) tea.Cmd) *GeneratedTab {
	t.init = func(m *Model) tea.Cmd { return fn(m, &t.host) }
	return t
}

func (t *GeneratedTab) ID() string              { return t.id }
func (t *GeneratedTab) Title() string           { return t.title }
func (t *GeneratedTab) Scope() string           { return t.host.Scope() }
func (t *GeneratedTab) ActivePaneTitle() string { return t.host.ActivePaneTitle() }
func (t *GeneratedTab) CapturesInput() bool     { return t.host.CapturesInput() }
func (t *GeneratedTab) Host() *PaneHost         { return &t.host }

func (t *GeneratedTab) InitTab(m *Model) tea.Cmd {
	if t.init == nil {
		return nil
	}
	return t.init(m)
}

func (t *GeneratedTab) HandlePaneKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandlePaneKey(m, msg)
}

func (t *GeneratedTab) Update(m *Model, msg tea.Msg) tea.Cmd {
	return t.host.UpdateActive(m, msg)
}

func (t *GeneratedTab) Build(m *Model) widgets.Widget {
	if t.layout == nil {
		return widgets.Pane{Title: t.title}
	}
	return t.layout(&t.host, m)
}
