package tabs

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/storygram/core"
	"github.com/jask/storygram/internal/catalog"
	"github.com/jask/storygram/internal/social"
	"github.com/jask/storygram/widgets"
)

var profileSections = []string{"posts", "saved", "tagged"}

type ProfileTab struct {
	profile catalog.Profile
	state   *social.State
	labels  map[string]string
	section int
}

func NewProfileTab(c catalog.Catalog, state *social.State) *ProfileTab {
	labels := make(map[string]string, len(c.Posts)+len(c.Reels))
	for _, p := range c.Posts {
		labels[social.PostKey(p.ID)] = "Post by " + p.UserName
	}
	for _, r := range c.Reels {
		labels[social.ReelKey(r.ID)] = "Reel by " + r.UserName
	}
	return &ProfileTab{profile: c.Profile, state: state, labels: labels}
}

func (t *ProfileTab) ID() string      { return "profile" }
func (t *ProfileTab) Title() string   { return "Profile" }
func (t *ProfileTab) Scope() string   { return core.ScopeProfile }
func (t *ProfileTab) Section() string { return profileSections[t.section] }

func (t *ProfileTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok && m.IsAction(km, "next-section") {
		t.section = wrap(t.section+1, len(profileSections))
	}
	return nil
}

// Saved lists what was saved this session, oldest first.
func (t *ProfileTab) Saved() []string {
	keys := t.state.Keys(social.Save)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if label, ok := t.labels[k]; ok {
			out = append(out, label)
		}
	}
	return out
}

func (t *ProfileTab) Build(m *core.Model) widgets.Widget {
	return widgets.Func(func(width, height int) string {
		inner := max(1, width-4)
		p := t.profile
		stats := fmt.Sprintf("%d posts   %s followers   %d following", p.Stats.Posts, p.Stats.Followers, p.Stats.Following)
		lines := []string{
			widgets.Avatar(p.UserName) + " " + titleStyle.Render(p.UserName),
			"    " + mutedStyle.Render(stats),
			"",
		}
		for _, l := range strings.Split(p.Bio, "\n") {
			lines = append(lines, ansi.Truncate(l, inner, "…"))
		}
		lines = append(lines, "", t.highlights(inner), "", chips(profileSections, t.section), "")
		lines = append(lines, t.sectionView(inner)...)
		return widgets.Pane{Title: t.Title(), Content: strings.Join(lines, "\n"), Selected: true}.Render(width, height)
	})
}

func (t *ProfileTab) highlights(width int) string {
	parts := make([]string, 0, len(t.profile.Highlights))
	for _, h := range t.profile.Highlights {
		parts = append(parts, widgets.Avatar(h.Title)+" "+mutedStyle.Render(h.Title))
	}
	return ansi.Truncate(strings.Join(parts, "  "), width, "…")
}

func (t *ProfileTab) sectionView(width int) []string {
	switch t.Section() {
	case "saved":
		saved := t.Saved()
		if len(saved) == 0 {
			return []string{mutedStyle.Render("Nothing saved yet")}
		}
		out := make([]string, len(saved))
		for i, s := range saved {
			out[i] = saveStyle.Render("▬ ") + s
		}
		return out
	case "tagged":
		return []string{mutedStyle.Render("No tagged posts yet")}
	}
	return gridLines(t.profile.Posts, width)
}

// gridLines lays the profile posts out three to a row.
func gridLines(posts []catalog.GridPost, width int) []string {
	if len(posts) == 0 {
		return []string{mutedStyle.Render("No posts yet")}
	}
	cell := max(4, (width-2)/3)
	var out []string
	for i := 0; i < len(posts); i += 3 {
		var b strings.Builder
		for j := i; j < min(i+3, len(posts)); j++ {
			if j > i {
				b.WriteString(" ")
			}
			b.WriteString(padCell(mutedStyle.Render(fmt.Sprintf("▧ post %s", posts[j].ID)), cell))
		}
		out = append(out, b.String())
	}
	return out
}
