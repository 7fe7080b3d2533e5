package tabs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/storygram/core"
	"github.com/jask/storygram/internal/catalog"
	"github.com/jask/storygram/internal/search"
	"github.com/jask/storygram/internal/social"
	"github.com/jask/storygram/widgets"
)

// SearchTab shows recent searches and suggestions for an empty query and
// filtered results by kind otherwise.
type SearchTab struct {
	index     search.Index
	recents   *search.Recents
	suggested []catalog.Account
	state     *social.State
	input     textinput.Model
	kind      search.Kind
	cur       int
}

func NewSearchTab(c catalog.Catalog, state *social.State) *SearchTab {
	return &SearchTab{
		index:     search.NewIndex(c),
		recents:   search.NewRecents(c.Recent),
		suggested: c.Suggested,
		state:     state,
		input:     newQueryInput("Search accounts, tags, places"),
		kind:      search.Top,
	}
}

func (t *SearchTab) ID() string          { return "search" }
func (t *SearchTab) Title() string       { return "Search" }
func (t *SearchTab) Scope() string       { return core.ScopeSearch }
func (t *SearchTab) CapturesInput() bool { return t.input.Focused() }
func (t *SearchTab) Query() string       { return t.input.Value() }
func (t *SearchTab) Kind() search.Kind   { return t.kind }
func (t *SearchTab) Results() []search.Result {
	return t.index.Query(t.input.Value(), t.kind)
}

// searchRow is one selectable line: a recent search, a suggestion or a result.
type searchRow struct {
	recent  *catalog.Account
	suggest *catalog.Account
	result  *search.Result
}

func (t *SearchTab) rows() []searchRow {
	if strings.TrimSpace(t.input.Value()) != "" {
		res := t.Results()
		out := make([]searchRow, len(res))
		for i := range res {
			out[i] = searchRow{result: &res[i]}
		}
		return out
	}
	recent := t.recents.Items()
	out := make([]searchRow, 0, len(recent)+len(t.suggested))
	for i := range recent {
		out = append(out, searchRow{recent: &recent[i]})
	}
	for i := range t.suggested {
		out = append(out, searchRow{suggest: &t.suggested[i]})
	}
	return out
}

func (t *SearchTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if t.input.Focused() {
		changed, cmd := updateQuery(&t.input, km)
		if changed {
			t.cur = 0
		}
		return cmd
	}
	rows := t.rows()
	switch {
	case m.IsAction(km, "focus-input"):
		return t.input.Focus()
	case m.IsAction(km, "clear-input"):
		t.input.Reset()
		t.cur = 0
	case m.IsAction(km, "next-kind"):
		t.kind = t.kind.Next()
		t.cur = 0
	case m.IsAction(km, "item-up"):
		t.cur = clamp(t.cur-1, len(rows))
	case m.IsAction(km, "item-down"):
		t.cur = clamp(t.cur+1, len(rows))
	case m.IsAction(km, "remove-recent"):
		if len(rows) == 0 || rows[t.cur].recent == nil {
			return nil
		}
		a := rows[t.cur].recent
		t.recents.Remove(a.ID)
		t.cur = clamp(t.cur, len(t.rows()))
		return core.StatusCmd("Removed " + a.UserName + " from recent searches")
	case m.IsAction(km, "toggle-follow"):
		user := t.rowUser(rows)
		if user == "" {
			return nil
		}
		on := t.state.Toggle(social.Follow, social.UserKey(user))
		return core.StatusCmd(social.FollowLabel(on) + " " + user)
	}
	return nil
}

func (t *SearchTab) rowUser(rows []searchRow) string {
	if len(rows) == 0 {
		return ""
	}
	r := rows[clamp(t.cur, len(rows))]
	switch {
	case r.suggest != nil:
		return r.suggest.UserName
	case r.result != nil && r.result.Kind == search.Accounts:
		return r.result.Label
	}
	return ""
}

func (t *SearchTab) Build(m *core.Model) widgets.Widget {
	return widgets.Func(func(width, height int) string {
		t.input.Width = max(10, width-8)
		lines := []string{t.input.View(), ""}
		rows := t.rows()
		inner := max(1, width-4)
		if strings.TrimSpace(t.input.Value()) == "" {
			lines = append(lines, t.emptyView(rows, inner)...)
		} else {
			lines = append(lines, t.resultsView(rows, inner)...)
		}
		return widgets.Pane{Title: t.Title(), Content: strings.Join(lines, "\n"), Selected: true, Focused: t.input.Focused()}.Render(width, height)
	})
}

func (t *SearchTab) emptyView(rows []searchRow, width int) []string {
	lines := []string{titleStyle.Render("Recent")}
	if t.recents.Len() == 0 {
		lines = append(lines, mutedStyle.Render("  No recent searches"))
	}
	for i, r := range rows {
		if i == t.recents.Len() {
			lines = append(lines, "", titleStyle.Render("Suggested for you"))
		}
		if r.recent != nil {
			lines = append(lines, row(i == t.cur, accountLabel(*r.recent), mutedStyle.Render("x"), width))
			continue
		}
		following := t.state.On(social.Follow, social.UserKey(r.suggest.UserName))
		lines = append(lines, row(i == t.cur, accountLabel(*r.suggest), followButton(following), width))
	}
	return lines
}

func (t *SearchTab) resultsView(rows []searchRow, width int) []string {
	labels := make([]string, len(search.Kinds))
	active := 0
	for i, k := range search.Kinds {
		labels[i] = string(k)
		if k == t.kind {
			active = i
		}
	}
	lines := []string{chips(labels, active), ""}
	if len(rows) == 0 {
		return append(lines, mutedStyle.Render(fmt.Sprintf("  No results for %q", strings.TrimSpace(t.input.Value()))))
	}
	for i, r := range rows {
		res := r.result
		right := mutedStyle.Render(string(res.Kind))
		label := res.Label
		if res.Kind == search.Accounts {
			label = widgets.Avatar(res.Label) + " " + titleStyle.Render(res.Label)
			if res.Sub != "" {
				label += " " + mutedStyle.Render(res.Sub)
			}
			right = followButton(t.state.On(social.Follow, social.UserKey(res.Label)))
		}
		lines = append(lines, row(i == t.cur, label, right, width))
	}
	return lines
}

func accountLabel(a catalog.Account) string {
	return widgets.Avatar(a.UserName) + " " + titleStyle.Render(a.UserName) + " " + mutedStyle.Render(a.Name)
}
