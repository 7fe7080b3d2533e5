package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/storygram/core"
)

type CommandOption struct {
	ID       string
	Name     string
	Desc     string
	Disabled bool
	Reason   string
}

func (i CommandOption) Title() string {
	if i.Disabled && i.Reason != "" {
		return fmt.Sprintf("%s (%s)", i.Name, i.Reason)
	}
	return i.Name
}
func (i CommandOption) Description() string { return i.Desc }
func (i CommandOption) FilterValue() string { return i.Name + " " + i.Desc + " " + i.ID }

// CommandScreen is the palette: a query box over a list of matching commands.
type CommandScreen struct {
	scope    string
	keys     *core.KeyRegistry
	search   func(query string) []CommandOption
	onSelect func(id string) tea.Msg
	input    textinput.Model
	list     list.Model
}

func NewCommandScreen(scope string, keys *core.KeyRegistry, search func(query string) []CommandOption, onSelect func(id string) tea.Msg) *CommandScreen {
	inp := textinput.New()
	inp.Placeholder = "Search commands"
	inp.Prompt = "cmd> "
	inp.Focus()
	lst := list.New(nil, list.NewDefaultDelegate(), 64, 14)
	lst.SetShowTitle(false)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	s := &CommandScreen{scope: scope, keys: keys, search: search, onSelect: onSelect, input: inp, list: lst}
	s.refresh()
	return s
}

func (s *CommandScreen) Title() string { return "Command Palette" }
func (s *CommandScreen) Scope() string { return core.ScopeCommand }

// Options returns the commands currently listed.
func (s *CommandScreen) Options() []CommandOption {
	items := s.list.Items()
	out := make([]CommandOption, 0, len(items))
	for _, it := range items {
		if opt, ok := it.(CommandOption); ok {
			out = append(out, opt)
		}
	}
	return out
}

func (s *CommandScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch s.keys.Action(km, s.Scope()) {
		case "close":
			return s, nil, true
		case "select":
			it, ok := s.list.SelectedItem().(CommandOption)
			if !ok {
				return s, nil, false
			}
			if it.Disabled {
				return s, core.StatusCmd(it.Reason), true
			}
			if s.onSelect != nil {
				return s, func() tea.Msg { return s.onSelect(it.ID) }, true
			}
			return s, nil, true
		}
		switch km.Type {
		case tea.KeyUp, tea.KeyDown:
			var cmd tea.Cmd
			s.list, cmd = s.list.Update(msg)
			return s, cmd, false
		}
	}
	var cmd tea.Cmd
	before := s.input.Value()
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before {
		s.refresh()
	}
	return s, cmd, false
}

func (s *CommandScreen) refresh() {
	items := s.search(strings.TrimSpace(s.input.Value()))
	ls := make([]list.Item, 0, len(items))
	for _, it := range items {
		ls = append(ls, it)
	}
	s.list.SetItems(ls)
	s.list.Select(0)
}

func (s *CommandScreen) View(width, height int) string {
	s.list.SetWidth(width)
	s.list.SetHeight(max(6, height-3))
	return "Command Palette (" + s.scope + ")\n" + s.input.View() + "\n" + s.list.View()
}
