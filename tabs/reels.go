package tabs

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/storygram/core"
	"github.com/jask/storygram/internal/catalog"
	"github.com/jask/storygram/internal/social"
	"github.com/jask/storygram/screens"
	"github.com/jask/storygram/widgets"
)

// ReelsTab shows one reel at a time. Play, pause and mute only flip flags;
// nothing is decoded or played.
type ReelsTab struct {
	reels  []catalog.Reel
	state  *social.State
	author string
	cur    int
}

func NewReelsTab(reels []catalog.Reel, state *social.State, author string) *ReelsTab {
	return &ReelsTab{reels: reels, state: state, author: author}
}

func (t *ReelsTab) ID() string    { return "reels" }
func (t *ReelsTab) Title() string { return "Reels" }
func (t *ReelsTab) Scope() string { return core.ScopeReels }
func (t *ReelsTab) Cursor() int   { return t.cur }

func (t *ReelsTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok || len(t.reels) == 0 {
		return nil
	}
	r := t.reels[t.cur]
	key := social.ReelKey(r.ID)
	switch {
	case m.IsAction(km, "item-up"):
		t.cur = clamp(t.cur-1, len(t.reels))
	case m.IsAction(km, "item-down"):
		t.cur = clamp(t.cur+1, len(t.reels))
	case m.IsAction(km, "toggle-like"):
		t.state.Toggle(social.Like, key)
	case m.IsAction(km, "toggle-follow"):
		on := t.state.Toggle(social.Follow, social.UserKey(r.UserName))
		return core.StatusCmd(social.FollowLabel(on) + " " + r.UserName)
	case m.IsAction(km, "toggle-save"):
		if t.state.Toggle(social.Save, key) {
			return core.StatusCmd("Saved to your profile")
		}
		return core.StatusCmd("Removed from saved")
	case m.IsAction(km, "toggle-mute"):
		t.state.Toggle(social.Mute, key)
	case m.IsAction(km, "toggle-pause"):
		t.state.Toggle(social.Pause, key)
	case m.IsAction(km, "open-comments"):
		title := r.UserName + "'s reel"
		return core.PushScreenCmd(screens.NewCommentsScreen(t.state, m.Keys(), key, title, t.author))
	}
	return nil
}

func (t *ReelsTab) Build(m *core.Model) widgets.Widget {
	return widgets.Func(func(width, height int) string {
		if len(t.reels) == 0 {
			return widgets.Box{Title: "Reels", Content: "No reels yet"}.Render(width, height)
		}
		return widgets.Pane{Title: fmt.Sprintf("Reels %d/%d", t.cur+1, len(t.reels)), Content: t.reelView(t.reels[t.cur], max(1, width-4), max(1, height-2)), Selected: true}.Render(width, height)
	})
}

func (t *ReelsTab) reelView(r catalog.Reel, width, height int) string {
	key := social.ReelKey(r.ID)
	liked := t.state.On(social.Like, key)
	saved := t.state.On(social.Save, key)
	muted := t.state.On(social.Mute, key)
	paused := t.state.On(social.Pause, key)

	playing := accentStyle.Render("▶ playing")
	if paused {
		playing = mutedStyle.Render("❚❚ paused")
	}
	sound := mutedStyle.Render("♪ sound on")
	if muted {
		sound = mutedStyle.Render("✕ muted")
	}
	heart := mutedStyle.Render("♡")
	if liked {
		heart = likeStyle.Render("♥")
	}
	mark := mutedStyle.Render("▭ save")
	if saved {
		mark = saveStyle.Render("▬ saved")
	}
	comments := r.Comments + len(t.state.Comments(key))

	frame := max(1, height-5)
	lines := make([]string, 0, height)
	for i := 0; i < frame; i++ {
		switch i {
		case frame / 2:
			lines = append(lines, center(ansi.Truncate(r.Video, width, "…"), width))
		case frame/2 + 1:
			lines = append(lines, center(playing+"  "+sound, width))
		default:
			lines = append(lines, "")
		}
	}
	lines = append(lines,
		row(false, widgets.Avatar(r.UserName)+" "+titleStyle.Render(r.UserName), followButton(t.state.On(social.Follow, social.UserKey(r.UserName))), width),
		"  "+ansi.Truncate(r.Description, max(1, width-2), "…"),
		"",
		fmt.Sprintf("  %s %d   ✉ %d   ➤   %s", heart, social.LikeCount(r.Likes, liked), comments, mark),
	)
	return strings.Join(lines, "\n")
}

func center(s string, width int) string {
	return strings.Repeat(" ", max(0, (width-ansi.StringWidth(s))/2)) + s
}
