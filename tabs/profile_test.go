package tabs

import (
	"strings"
	"testing"

	"github.com/jask/storygram/internal/social"
)

func TestProfileSections(t *testing.T) {
	c := sample(t)
	state := social.New()
	tab := NewProfileTab(c, state)
	m := newModel(tab)

	out := render(m, tab)
	for _, want := range []string{"Random_user", "12.5M followers", "843 following", "Travel", "▧ post 0"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}

	m = send(t, m, "tab")
	if tab.Section() != "saved" || !strings.Contains(render(m, tab), "Nothing saved yet") {
		t.Fatalf("expected empty saved section")
	}
	state.Toggle(social.Save, social.ReelKey(c.Reels[2].ID))
	state.Toggle(social.Save, social.PostKey(c.Posts[0].ID))
	saved := tab.Saved()
	if len(saved) != 2 || saved[0] != "Reel by "+c.Reels[2].UserName || saved[1] != "Post by "+c.Posts[0].UserName {
		t.Fatalf("unexpected saved list %v", saved)
	}

	m = send(t, m, "tab")
	if tab.Section() != "tagged" || !strings.Contains(render(m, tab), "No tagged posts yet") {
		t.Fatalf("expected tagged section")
	}
	send(t, m, "tab")
	if tab.Section() != "posts" {
		t.Fatalf("sections should wrap")
	}
}
