package core

import (
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/storygram/widgets"
)

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// FullScreen screens replace the tab body instead of floating over it.
type FullScreen interface {
	FullScreen() bool
}

// ScreenCloser is called when a screen leaves the stack for any reason.
type ScreenCloser interface {
	Close()
}

// Sizer screens are told the terminal size when pushed and on every resize.
type Sizer interface {
	SetSize(width, height int)
}

// ScreenDoner lets a screen ask to be popped after an out-of-band change,
// such as a timer that closed it.
type ScreenDoner interface {
	Done() bool
}

type Tab interface {
	ID() string
	Title() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model) widgets.Widget
}

type PaneKeyHandler interface {
	HandlePaneKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd)
	ActivePaneTitle() string
}

type TabInitializer interface {
	InitTab(m *Model) tea.Cmd
}

// InputCapturer is implemented by tabs and panes that are reading text; while
// it reports true, single-key global bindings are not applied.
type InputCapturer interface {
	CapturesInput() bool
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type Model struct {
	width            int
	height           int
	tabs             []Tab
	activeTab        int
	screens          ScreenStack
	keys             *KeyRegistry
	commands         *CommandRegistry
	status           string
	statusErr        bool
	quitting         bool
	log              *slog.Logger
	OpenCommandModal func(m *Model, scope string) Screen
}

func NewModel(tabs []Tab, keys *KeyRegistry, commands *CommandRegistry, log *slog.Logger) Model {
	if log == nil {
		log = discardLogger
	}
	return Model{
		tabs:     tabs,
		keys:     keys,
		commands: commands,
		log:      log,
		status:   "Ready",
		width:    100,
		height:   32,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs))
	for _, t := range m.tabs {
		if initTab, ok := t.(TabInitializer); ok {
			if cmd := initTab.InitTab(&m); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m Model) Status() (string, bool) { return m.status, m.statusErr }

func (m Model) Logger() *slog.Logger {
	if m.log == nil {
		return discardLogger
	}
	return m.log
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if len(m.tabs) == 0 {
		return "app"
	}
	return m.tabs[m.activeTab].Scope()
}

func (m Model) ActiveTab() int { return m.activeTab }

func (m Model) Tabs() []Tab { return m.tabs }

func (m *Model) SwitchTab(index int) {
	if index < 0 || index >= len(m.tabs) {
		return
	}
	m.activeTab = index
}

// SwitchTabID activates the tab with the given id and reports whether it exists.
func (m *Model) SwitchTabID(id string) bool {
	for i, t := range m.tabs {
		if t.ID() == id {
			m.activeTab = i
			return true
		}
	}
	return false
}

func (m *Model) PushScreen(s Screen) {
	if s == nil {
		return
	}
	m.sizeScreen(s)
	m.screens.Push(s)
}

func (m *Model) sizeScreen(s Screen) {
	if sz, ok := s.(Sizer); ok {
		sz.SetSize(m.width, m.height)
	}
}

func (m *Model) PopScreen() {
	closeScreen(m.screens.Pop())
}

func (m Model) TopScreen() Screen { return m.screens.Top() }

func (m Model) ScreenDepth() int { return m.screens.Len() }

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

func (m Model) Quitting() bool { return m.quitting }

func closeScreen(s Screen) {
	if c, ok := s.(ScreenCloser); ok {
		c.Close()
	}
}
