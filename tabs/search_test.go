package tabs

import (
	"strings"
	"testing"

	"github.com/jask/storygram/internal/search"
	"github.com/jask/storygram/internal/social"
)

func TestSearchEmptyQueryShowsRecentsAndSuggestions(t *testing.T) {
	c := sample(t)
	state := social.New()
	tab := NewSearchTab(c, state)
	m := newModel(tab)

	out := render(m, tab)
	for _, want := range []string{"Recent", "travel_enthusiast", "Suggested for you", "photography_world", "[Follow]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}

	m = send(t, m, "x")
	if tab.recents.Len() != len(c.Recent)-1 {
		t.Fatalf("x should remove the first recent search")
	}
	if strings.Contains(render(m, tab), "travel_enthusiast") {
		t.Fatalf("removed recent still shown")
	}

	for range tab.recents.Len() {
		m = send(t, m, "down")
	}
	m = send(t, m, "f")
	if !state.On(social.Follow, social.UserKey(c.Suggested[0].UserName)) {
		t.Fatalf("f should follow the selected suggestion")
	}
	m = send(t, m, "x")
	if tab.recents.Len() != len(c.Recent)-1 {
		t.Fatalf("x on a suggestion must not remove recents")
	}
}

func TestSearchTypingCapturesKeys(t *testing.T) {
	c := sample(t)
	tab := NewSearchTab(c, social.New())
	m := newModel(tab)

	m = send(t, m, "/")
	if !tab.CapturesInput() {
		t.Fatalf("slash should focus the query box")
	}
	m = typeInto(t, m, "goa")
	if m.Quitting() || tab.Query() != "goa" {
		t.Fatalf("typed keys should reach the input, query %q", tab.Query())
	}
	res := tab.Results()
	if len(res) != 2 || res[0].Kind != search.Tags || res[1].Kind != search.Places {
		t.Fatalf("expected tag and place for goa, got %+v", res)
	}
	m = send(t, m, "esc", "tab")
	if tab.Kind() != search.Accounts || len(tab.Results()) != 0 {
		t.Fatalf("accounts should have no goa results, got %+v", tab.Results())
	}
	if !strings.Contains(render(m, tab), `No results for "goa"`) {
		t.Fatalf("expected empty results message")
	}
	m = send(t, m, "ctrl+u")
	if tab.Query() != "" {
		t.Fatalf("ctrl+u should clear the query")
	}
}

func TestSearchFollowFromResults(t *testing.T) {
	c := sample(t)
	state := social.New()
	tab := NewSearchTab(c, state)
	m := newModel(tab)
	m = send(t, m, "/")
	m = typeInto(t, m, "travle")
	m = send(t, m, "enter", "tab")
	res := tab.Results()
	if len(res) == 0 || res[0].Label != "travel_enthusiast" {
		t.Fatalf("typo should still find travel accounts, got %+v", res)
	}
	m = send(t, m, "f")
	if !state.On(social.Follow, social.UserKey("travel_enthusiast")) {
		t.Fatalf("f on an account result should follow it")
	}
}
