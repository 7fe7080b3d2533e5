package screens

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/storygram/core"
	"github.com/jask/storygram/internal/social"
	"github.com/jask/storygram/widgets"
)

var errEmptyComment = errors.New("comment is empty")

// CommentsScreen lists the comments typed this session for one target and
// lets the user add more.
type CommentsScreen struct {
	state  *social.State
	target string
	title  string
	author string
	keys   *core.KeyRegistry
	input  textinput.Model
}

func NewCommentsScreen(state *social.State, keys *core.KeyRegistry, target, title, author string) *CommentsScreen {
	inp := textinput.New()
	inp.Placeholder = "Add a comment…"
	inp.Prompt = "› "
	inp.CharLimit = 280
	inp.Focus()
	return &CommentsScreen{state: state, target: target, title: title, author: author, keys: keys, input: inp}
}

func (s *CommentsScreen) Title() string { return "Comments" }
func (s *CommentsScreen) Scope() string { return core.ScopeComments }

func (s *CommentsScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch s.keys.Action(km, s.Scope()) {
		case "close":
			return s, nil, true
		case "comment-submit":
			if _, ok := s.state.AddComment(s.target, s.author, s.input.Value()); ok {
				s.input.Reset()
				return s, core.StatusCmd("Comment posted"), false
			}
			return s, core.ErrorCmd(errEmptyComment), false
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, false
}

var (
	commentAuthorStyle = lipgloss.NewStyle().Foreground(widgets.ColorText).Bold(true)
	commentMutedStyle  = lipgloss.NewStyle().Foreground(widgets.ColorMuted)
)

func (s *CommentsScreen) View(width, height int) string {
	comments := s.state.Comments(s.target)
	rows := max(1, height-4)
	lines := []string{commentAuthorStyle.Render(s.title), ""}
	if len(comments) == 0 {
		lines = append(lines, commentMutedStyle.Render("No comments yet. Start the conversation."))
	}
	if len(comments) > rows {
		comments = comments[len(comments)-rows:]
	}
	for _, c := range comments {
		lines = append(lines, commentAuthorStyle.Render(c.Author)+" "+c.Text)
	}
	s.input.Width = max(10, width-4)
	lines = append(lines, "", s.input.View())
	return widgets.Text(strings.Join(lines, "\n")).Render(width, min(height, len(lines)))
}
