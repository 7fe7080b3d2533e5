package core

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		for _, s := range m.screens.items {
			m.sizeScreen(s)
		}
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case PushScreenMsg:
		m.PushScreen(msg.Screen)
		return m, nil
	case PopScreenMsg:
		m.PopScreen()
		return m, nil
	case CommandExecuteMsg:
		return m, m.commands.Execute(msg.CommandID, &m)
	case TabSwitchMsg:
		m.SwitchTab(msg.Index)
		return m, nil
	case DispatchMsg:
		if msg.Fn != nil {
			msg.Fn()
		}
		m.popDone()
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.screens.Top() != nil {
			return m.updateScreen(msg)
		}
		if m.capturesInput() {
			return m, m.updateTab(msg)
		}

		scope := m.ActiveScope()
		if m.keys.IsAction(msg, "quit", scope) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.keys.IsAction(msg, "open-command-palette", scope) && m.OpenCommandModal != nil {
			m.PushScreen(m.OpenCommandModal(&m, scope))
			return m, nil
		}
		for i := range m.tabs {
			if m.keys.IsAction(msg, fmt.Sprintf("switch-tab-%d", i+1), scope) {
				m.SwitchTab(i)
				return m, nil
			}
		}
		if len(m.tabs) > 0 {
			if handler, ok := m.tabs[m.activeTab].(PaneKeyHandler); ok {
				if handled, cmd := handler.HandlePaneKey(&m, msg); handled {
					return m, cmd
				}
			}
		}
		return m, m.updateTab(msg)
	}

	if m.screens.Top() != nil {
		return m.updateScreen(msg)
	}
	return m, m.updateTab(msg)
}

func (m Model) updateScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd, pop := m.screens.Top().Update(msg)
	if pop {
		m.PopScreen()
		return m, cmd
	}
	m.screens.Replace(next)
	m.popDone()
	return m, cmd
}

func (m *Model) updateTab(msg tea.Msg) tea.Cmd {
	if len(m.tabs) == 0 {
		return nil
	}
	return m.tabs[m.activeTab].Update(m, msg)
}

// popDone drops screens that finished outside their own Update, like a story
// overlay whose viewer was closed by the auto-advance timer.
func (m *Model) popDone() {
	for {
		d, ok := m.screens.Top().(ScreenDoner)
		if !ok || !d.Done() {
			return
		}
		m.PopScreen()
	}
}

func (m Model) capturesInput() bool {
	if len(m.tabs) == 0 {
		return false
	}
	c, ok := m.tabs[m.activeTab].(InputCapturer)
	return ok && c.CapturesInput()
}

// IsAction matches msg against the bindings of the active scope.
func (m Model) IsAction(msg tea.KeyMsg, action string) bool {
	return m.keys.IsAction(msg, action, m.ActiveScope())
}

func (m Model) Keys() *KeyRegistry { return m.keys }
