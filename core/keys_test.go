package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"ctrl+k"}, Action: "palette", Scopes: []string{"tab:a"}},
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"*"}},
		{Keys: []string{"esc"}, Action: "pane-blur", Scopes: []string{"pane:*"}},
	})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", "tab:a") {
		t.Fatalf("expected ctrl+k in tab:a")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", "tab:b") {
		t.Fatalf("did not expect ctrl+k in tab:b")
	}
	if !reg.IsAction(runes("q"), "quit", "tab:b") {
		t.Fatalf("expected q to match wildcard scope")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyEsc}, "pane-blur", "pane:home:feed") {
		t.Fatalf("expected prefix scope to match")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyEsc}, "pane-blur", "tab:shop") {
		t.Fatalf("prefix scope should not match other scopes")
	}
}

func TestSpaceKeyMatchesByName(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, "story-forward", ScopeStory) {
		t.Fatalf("space should advance the story")
	}
}

func TestSingleRuneKeysAreCaseSensitive(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"G"}, Action: "bottom", Scopes: []string{"*"}},
		{Keys: []string{"g"}, Action: "top", Scopes: []string{"*"}},
		{Keys: []string{"Ctrl+K", "Enter"}, Action: "named", Scopes: []string{"*"}},
	})
	if got := reg.Action(runes("G"), ScopeFeed); got != "bottom" {
		t.Fatalf("G resolved to %q", got)
	}
	if got := reg.Action(runes("g"), ScopeFeed); got != "top" {
		t.Fatalf("g resolved to %q", got)
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "named", ScopeFeed) {
		t.Fatalf("chords should match regardless of case")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyEnter}, "named", ScopeFeed) {
		t.Fatalf("named keys should match regardless of case")
	}
}

func TestActionPrefersExactScope(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"l"}, Action: "generic", Scopes: []string{"*"}},
		{Keys: []string{"l"}, Action: "toggle-like", Scopes: []string{ScopeFeed}},
	})
	if got := reg.Action(runes("l"), ScopeFeed); got != "toggle-like" {
		t.Fatalf("expected exact scope to win, got %q", got)
	}
	if got := reg.Action(runes("l"), ScopeShop); got != "generic" {
		t.Fatalf("expected wildcard fallback, got %q", got)
	}
	if got := reg.Action(runes("z"), ScopeShop); got != "" {
		t.Fatalf("unbound key should resolve to nothing, got %q", got)
	}
}

func TestDefaultBindingsStoryScope(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	cases := []struct {
		msg    tea.KeyMsg
		action string
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, "story-back"},
		{runes("h"), "story-back"},
		{tea.KeyMsg{Type: tea.KeyRight}, "story-forward"},
		{runes("l"), "story-forward"},
		{tea.KeyMsg{Type: tea.KeyEsc}, "story-close"},
		{runes("q"), "story-close"},
	}
	for _, tc := range cases {
		if got := reg.Action(tc.msg, ScopeStory); got != tc.action {
			t.Fatalf("%s: expected %s, got %q", tc.msg, tc.action, got)
		}
	}
	if reg.IsAction(runes("q"), "quit", ScopeStory) {
		t.Fatalf("quit should not be bound inside the story overlay")
	}
}

func TestFooterListsEachActionOnce(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	seen := map[string]bool{}
	for _, b := range reg.BindingsForScope(ScopeShop) {
		if seen[b.Action] {
			t.Fatalf("duplicate action %s", b.Action)
		}
		seen[b.Action] = true
	}
	for _, want := range []string{"focus-input", "category-next", "quit", "switch-tab-4"} {
		if !seen[want] {
			t.Fatalf("expected %s in shop footer", want)
		}
	}
}

func TestApplyActionKeybindingsOverrides(t *testing.T) {
	base := DefaultKeyBindings()
	out := ApplyActionKeybindings(base, map[string][]string{"toggle-like": {"L"}, "quit": nil})
	reg := NewKeyRegistry(out)
	if !reg.IsAction(runes("L"), "toggle-like", ScopeFeed) {
		t.Fatalf("override should bind L")
	}
	if reg.IsAction(runes("l"), "toggle-like", ScopeFeed) {
		t.Fatalf("override should replace the default key")
	}
	if !reg.IsAction(runes("q"), "quit", ScopeFeed) {
		t.Fatalf("empty override should keep defaults")
	}
	if got := DefaultKeybindingsByAction(base)["story-forward"]; len(got) != 3 {
		t.Fatalf("unexpected story-forward keys %v", got)
	}
}
