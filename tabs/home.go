package tabs

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/storygram/core"
	"github.com/jask/storygram/internal/catalog"
	"github.com/jask/storygram/internal/social"
	"github.com/jask/storygram/internal/story"
	"github.com/jask/storygram/screens"
	"github.com/jask/storygram/widgets"
)

// NewHomeTab builds the story bar over the post feed. The story bar starts
// focused so left/right pick a story and enter opens it.
func NewHomeTab(c catalog.Catalog, viewer *story.Viewer, state *social.State) *core.GeneratedTab {
	panes := []core.Pane{
		NewStoriesPane(viewer),
		NewFeedPane(c.Posts, state),
	}
	layout := func(host *core.PaneHost, m *core.Model) widgets.Widget {
		return widgets.VStack{
			Widgets: []widgets.Widget{host.BuildPane("stories"), host.BuildPane("feed")},
			Sizes:   []int{5, 0},
		}
	}
	return core.NewGeneratedTab("home", "Home", panes, layout).WithInit(func(m *core.Model, host *core.PaneHost) tea.Cmd {
		return host.Focus(m, "stories")
	})
}

type StoriesPane struct {
	viewer   *story.Viewer
	selected int
}

func NewStoriesPane(viewer *story.Viewer) *StoriesPane {
	return &StoriesPane{viewer: viewer}
}

func (p *StoriesPane) ID() string    { return "stories" }
func (p *StoriesPane) Title() string { return "Stories" }
func (p *StoriesPane) Scope() string { return core.ScopeStories }
func (p *StoriesPane) Selected() int { return p.selected }

func (p *StoriesPane) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	n := p.viewer.Stories().Len()
	switch {
	case m.IsAction(km, "story-prev"):
		p.selected = clamp(p.selected-1, n)
	case m.IsAction(km, "story-next"):
		p.selected = clamp(p.selected+1, n)
	case m.IsAction(km, "story-open"):
		return OpenStory(m, p.viewer, p.selected)
	}
	return nil
}

// OpenStory opens the story at index i and pushes the viewer overlay.
func OpenStory(m *core.Model, viewer *story.Viewer, i int) tea.Cmd {
	if !viewer.OpenAt(i) {
		return core.StatusCmd("Story unavailable")
	}
	m.Logger().Info("story opened", "story", viewer.State().Story.ID)
	return core.PushScreenCmd(screens.NewStoryScreen(viewer, m.Keys()))
}

func (p *StoriesPane) View(width, height int, selected, focused bool) string {
	all := p.viewer.Stories().All()
	inner := max(1, width-4)
	cells := make([]string, len(all))
	names := make([]string, len(all))
	for i, s := range all {
		name := ansi.Truncate(s.Name, 12, "…")
		cells[i] = " " + widgets.Avatar(s.Name) + " "
		if i == p.selected && focused {
			names[i] = accentStyle.Render(name)
		} else {
			names[i] = mutedStyle.Render(name)
		}
	}
	const cellWidth = 14
	visible := max(1, inner/cellWidth)
	start, end := window(p.selected, len(all), visible)
	var top, bottom strings.Builder
	for i := start; i < end; i++ {
		top.WriteString(padCell(cells[i], cellWidth))
		bottom.WriteString(padCell(names[i], cellWidth))
	}
	hint := mutedStyle.Render("enter to focus")
	if focused {
		hint = mutedStyle.Render(fmt.Sprintf("%d of %d · enter to watch", p.selected+1, len(all)))
	}
	content := strings.Join([]string{top.String(), bottom.String(), hint}, "\n")
	return widgets.Pane{Title: p.Title(), Content: content, Selected: selected, Focused: focused}.Render(width, height)
}

func padCell(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	return s + strings.Repeat(" ", max(0, width-ansi.StringWidth(s)))
}

type FeedPane struct {
	posts []catalog.Post
	state *social.State
	cur   int
}

func NewFeedPane(posts []catalog.Post, state *social.State) *FeedPane {
	return &FeedPane{posts: posts, state: state}
}

func (p *FeedPane) ID() string    { return "feed" }
func (p *FeedPane) Title() string { return "Feed" }
func (p *FeedPane) Scope() string { return core.ScopeFeed }
func (p *FeedPane) Cursor() int   { return p.cur }

func (p *FeedPane) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok || len(p.posts) == 0 {
		return nil
	}
	post := p.posts[p.cur]
	switch {
	case m.IsAction(km, "item-up"):
		p.cur = clamp(p.cur-1, len(p.posts))
	case m.IsAction(km, "item-down"):
		p.cur = clamp(p.cur+1, len(p.posts))
	case m.IsAction(km, "toggle-like"):
		if p.state.Toggle(social.Like, social.PostKey(post.ID)) {
			return core.StatusCmd("Liked " + post.UserName + "'s post")
		}
		return core.StatusCmd("Removed like")
	case m.IsAction(km, "toggle-follow"):
		on := p.state.Toggle(social.Follow, social.UserKey(post.UserName))
		return core.StatusCmd(social.FollowLabel(on) + " " + post.UserName)
	case m.IsAction(km, "toggle-save"):
		if p.state.Toggle(social.Save, social.PostKey(post.ID)) {
			return core.StatusCmd("Saved to your profile")
		}
		return core.StatusCmd("Removed from saved")
	}
	return nil
}

const postRows = 5

func (p *FeedPane) View(width, height int, selected, focused bool) string {
	inner := max(1, width-4)
	if len(p.posts) == 0 {
		return widgets.Pane{Title: p.Title(), Content: mutedStyle.Render("No posts yet"), Selected: selected, Focused: focused}.Render(width, height)
	}
	start, end := window(p.cur, len(p.posts), max(1, (height-2)/postRows))
	lines := make([]string, 0, height)
	for i := start; i < end; i++ {
		lines = append(lines, p.renderPost(p.posts[i], i == p.cur && focused, inner)...)
	}
	return widgets.Pane{Title: p.Title(), Content: strings.Join(lines, "\n"), Selected: selected, Focused: focused}.Render(width, height)
}

func (p *FeedPane) renderPost(post catalog.Post, cursor bool, width int) []string {
	liked := p.state.On(social.Like, social.PostKey(post.ID))
	saved := p.state.On(social.Save, social.PostKey(post.ID))
	following := p.state.On(social.Follow, social.UserKey(post.UserName))

	heart := mutedStyle.Render("♡")
	if liked {
		heart = likeStyle.Render("♥")
	}
	mark := mutedStyle.Render("▭")
	if saved {
		mark = saveStyle.Render("▬")
	}
	head := widgets.Avatar(post.UserName) + " " + titleStyle.Render(post.UserName) + " " + mutedStyle.Render(post.Date)
	return []string{
		row(cursor, head, followButton(following), width),
		row(cursor, mutedStyle.Render("▧ "+ansi.Truncate(post.Image, max(1, width-6), "…")), "", width),
		row(cursor, fmt.Sprintf("✉ %d   %s   ➤", post.CommentCount, heart), mark, width),
		row(cursor, post.LatestComment, "", width),
		"",
	}
}
