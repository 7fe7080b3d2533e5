package screens

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/jonboulle/clockwork"

	"github.com/jask/storygram/core"
	"github.com/jask/storygram/internal/story"
	"github.com/jask/storygram/widgets"
)

func testStories() story.Collection {
	return story.NewCollection([]story.Story{
		{ID: "1", Name: "Dormammu", Images: []string{"img-a", "img-b", "img-c"}},
		{ID: "2", Name: "Strange", Images: []string{"img-z"}},
	})
}

type queue chan func()

func (q queue) dispatch(fn func()) { q <- fn }

func (q queue) next(t *testing.T) func() {
	t.Helper()
	select {
	case fn := <-q:
		return fn
	case <-time.After(time.Second):
		t.Fatalf("expected a timer fire")
		return nil
	}
}

func openScreen(t *testing.T) (*StoryScreen, *story.Viewer, *clockwork.FakeClock, queue) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	q := make(queue, 8)
	v := story.NewViewer(testStories(), story.WithClock(clock), story.WithDispatcher(q.dispatch))
	if !v.OpenAt(0) {
		t.Fatalf("open failed")
	}
	s := NewStoryScreen(v, core.NewKeyRegistry(core.DefaultKeyBindings()))
	s.SetSize(400, 30)
	return s, v, clock, q
}

func click(x int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestStoryScreenKeys(t *testing.T) {
	s, v, _, _ := openScreen(t)
	s.Update(tea.KeyMsg{Type: tea.KeyRight})
	s.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if got := v.State().Index; got != 2 {
		t.Fatalf("expected index 2, got %d", got)
	}
	s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	if got := v.State().Index; got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}
	_, _, pop := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !pop || v.IsOpen() {
		t.Fatalf("esc should close the viewer and pop")
	}
}

func TestStoryScreenTapHalves(t *testing.T) {
	s, v, _, _ := openScreen(t)
	s.Update(click(300))
	if got := v.State().Index; got != 1 {
		t.Fatalf("right-half tap should advance, got %d", got)
	}
	s.Update(click(100))
	if got := v.State().Index; got != 0 {
		t.Fatalf("left-half tap should go back, got %d", got)
	}
	s.Update(click(100))
	if got := v.State().Index; got != 0 || !v.IsOpen() {
		t.Fatalf("tap back at first image is a no-op")
	}
	s.Update(tea.MouseMsg{X: 300, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if got := v.State().Index; got != 0 {
		t.Fatalf("release should be ignored, got %d", got)
	}
}

func TestStoryScreenTerminalTapPops(t *testing.T) {
	s, v, _, _ := openScreen(t)
	var pop bool
	for i := 0; i < 3; i++ {
		_, _, pop = s.Update(click(399))
	}
	if !pop || v.IsOpen() {
		t.Fatalf("tapping past the last image should close and pop")
	}
}

func TestStoryScreenView(t *testing.T) {
	s, v, _, _ := openScreen(t)
	v.Forward()
	out := ansi.Strip(s.View(60, 14))
	lines := strings.Split(out, "\n")
	if len(lines) != 14 {
		t.Fatalf("expected 14 rows, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "Dormammu") || !strings.Contains(lines[1], "2/3") {
		t.Fatalf("unexpected header %q", lines[1])
	}
	if !strings.Contains(out, "img-b") || strings.Contains(out, "img-a") {
		t.Fatalf("expected only the active image:\n%s", out)
	}
	if strings.Count(lines[0], " ") < 3 {
		t.Fatalf("expected three separated segments, got %q", lines[0])
	}
	v.Close()
	if s.View(60, 14) != "" {
		t.Fatalf("closed viewer renders nothing")
	}
}

func TestTimerCloseRemovesOverlay(t *testing.T) {
	clock := clockwork.NewFakeClock()
	q := make(queue, 8)
	v := story.NewViewer(testStories(), story.WithClock(clock), story.WithDispatcher(q.dispatch))
	keys := core.NewKeyRegistry(core.DefaultKeyBindings())
	m := core.NewModel([]core.Tab{core.NewGeneratedTab("home", "Home", nil, func(*core.PaneHost, *core.Model) widgets.Widget {
		return widgets.Text("bar")
	})}, keys, core.NewCommandRegistry(nil), nil)

	v.OpenAt(1)
	m.PushScreen(NewStoryScreen(v, keys))
	clock.Advance(story.DefaultDwell)
	next, _ := m.Update(core.DispatchMsg{Fn: q.next(t)})
	m = next.(core.Model)
	if v.IsOpen() {
		t.Fatalf("single-image story should close when its timer fires")
	}
	if m.ScreenDepth() != 0 {
		t.Fatalf("story overlay should pop once the viewer closes")
	}
}

func TestPoppingOverlayCancelsTimer(t *testing.T) {
	s, v, _, _ := openScreen(t)
	s.Close()
	if v.IsOpen() || v.Armed() {
		t.Fatalf("closing the screen should close the viewer and its timer")
	}
	if !s.Done() {
		t.Fatalf("screen should report done")
	}
}
