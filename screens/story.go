package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/storygram/core"
	"github.com/jask/storygram/internal/story"
	"github.com/jask/storygram/widgets"
)

// StoryScreen is the full-screen overlay over an open story.Viewer. It owns
// no story state of its own: every frame is drawn from the viewer snapshot,
// and the screen leaves the stack as soon as the viewer is closed.
type StoryScreen struct {
	viewer *story.Viewer
	keys   *core.KeyRegistry
	width  int
	height int
}

func NewStoryScreen(v *story.Viewer, keys *core.KeyRegistry) *StoryScreen {
	return &StoryScreen{viewer: v, keys: keys, width: 80, height: 24}
}

func (s *StoryScreen) Title() string    { return s.viewer.State().Story.Name }
func (s *StoryScreen) Scope() string    { return core.ScopeStory }
func (s *StoryScreen) FullScreen() bool { return true }
func (s *StoryScreen) Done() bool       { return !s.viewer.IsOpen() }
func (s *StoryScreen) Close()           { s.viewer.Close() }

func (s *StoryScreen) SetSize(width, height int) {
	s.width, s.height = width, height
}

func (s *StoryScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch s.keys.Action(msg, s.Scope()) {
		case "story-back":
			s.viewer.Back()
		case "story-forward":
			s.viewer.Forward()
		case "story-close":
			s.viewer.Close()
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			s.viewer.HandleTap(msg.X, s.width)
		}
	}
	return s, nil, !s.viewer.IsOpen()
}

func (s *StoryScreen) View(width, height int) string {
	st := s.viewer.State()
	if !st.Open {
		return ""
	}
	bar := widgets.Segments{Count: st.Story.Len(), Active: st.Index, Gap: 1}
	return widgets.VStack{
		Widgets: []widgets.Widget{
			widgets.Func(func(w, h int) string { return " " + bar.Render(max(1, w-2), 1) }),
			widgets.Text(storyHeader(st, width)),
			widgets.Func(func(w, h int) string { return imageFrame(st, w, h) }),
			widgets.Text(storyHint),
		},
		Sizes: []int{1, 1, 0, 1},
	}.Render(width, height)
}

const storyHint = " ◀ tap left half · tap right half ▶ · esc close"

var (
	storyNameStyle  = lipgloss.NewStyle().Foreground(widgets.ColorText).Bold(true)
	storyMutedStyle = lipgloss.NewStyle().Foreground(widgets.ColorMuted)
	storyFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(widgets.ColorDim)
)

func storyHeader(st story.State, width int) string {
	left := " " + widgets.Avatar(st.Story.Name) + " " + storyNameStyle.Render(st.Story.Name)
	right := storyMutedStyle.Render(fmt.Sprintf("%d/%d ✕ ", st.Index+1, st.Story.Len()))
	gap := max(1, width-ansi.StringWidth(left)-ansi.StringWidth(right))
	return left + strings.Repeat(" ", gap) + right
}

func imageFrame(st story.State, width, height int) string {
	if width < 4 || height < 3 {
		return ""
	}
	inner := max(1, width-2)
	lines := make([]string, max(1, height-2))
	mid := len(lines) / 2
	lines[mid] = center(ansi.Truncate(st.Image(), inner, "…"), inner)
	if mid+1 < len(lines) {
		lines[mid+1] = center(storyMutedStyle.Render(fmt.Sprintf("image %d of %d", st.Index+1, st.Story.Len())), inner)
	}
	return storyFrameStyle.Width(inner).Render(strings.Join(lines, "\n"))
}

func center(s string, width int) string {
	pad := max(0, (width-ansi.StringWidth(s))/2)
	return strings.Repeat(" ", pad) + s
}
