package search

import (
	"testing"

	"github.com/jask/storygram/internal/catalog"
)

func sampleIndex(t *testing.T) Index {
	t.Helper()
	c, err := catalog.Sample()
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	return NewIndex(c)
}

func labels(rs []Result) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Label)
	}
	return out
}

func TestMatch(t *testing.T) {
	cases := []struct {
		q, c string
		want bool
	}{
		{"", "anything", true},
		{"food", "food_lover", true},
		{"FOOD", "food_lover", true},
		{"foood", "food_lover", true},
		{"trvel", "travel_diaries", true},
		{"tarvle", "travel_diaries", false},
		{"gao", "Goa", false},
		{"xyzzy", "food_lover", false},
		{"goaa", "Goa", true},
	}
	for _, tc := range cases {
		if got := Match(tc.q, tc.c); got != tc.want {
			t.Fatalf("Match(%q, %q) = %v, want %v", tc.q, tc.c, got, tc.want)
		}
	}
}

func TestIndexDeduplicatesAccounts(t *testing.T) {
	idx := sampleIndex(t)
	got := idx.Query("dormammu", Accounts)
	if len(got) != 1 {
		t.Fatalf("expected one Dormammu account, got %v", labels(got))
	}
}

func TestQueryByKind(t *testing.T) {
	idx := sampleIndex(t)
	if got := idx.Query("travel", Accounts); len(got) != 2 {
		t.Fatalf("expected travel_enthusiast and travel_diaries, got %v", labels(got))
	}
	tags := idx.Query("#travel", Tags)
	if len(tags) != 1 || tags[0].Label != "#travel" {
		t.Fatalf("expected #travel tag, got %v", labels(tags))
	}
	if got := idx.Query("goa", Places); len(got) != 1 || got[0].Label != "Goa" {
		t.Fatalf("expected Goa, got %v", labels(got))
	}
	top := idx.Query("travel", Top)
	if len(top) != 3 {
		t.Fatalf("top should mix accounts and tags, got %v", labels(top))
	}
	if top[0].Kind != Accounts || top[len(top)-1].Kind != Tags {
		t.Fatalf("top should keep catalog order, got %+v", top)
	}
}

func TestQueryMatchesDisplayName(t *testing.T) {
	idx := sampleIndex(t)
	got := idx.Query("fitness", Accounts)
	if len(got) != 1 || got[0].Label != "fitness_guru" {
		t.Fatalf("expected fitness_guru, got %v", labels(got))
	}
}

func TestEmptyQueryReturnsNothing(t *testing.T) {
	idx := sampleIndex(t)
	if got := idx.Query("   ", Top); len(got) != 0 {
		t.Fatalf("expected no results, got %v", labels(got))
	}
}

func TestKindNextWraps(t *testing.T) {
	if Top.Next() != Accounts || Places.Next() != Top {
		t.Fatalf("unexpected kind cycle")
	}
}

func TestRecentsRemove(t *testing.T) {
	r := NewRecents([]catalog.Account{{ID: "1", UserName: "a"}, {ID: "2", UserName: "b"}})
	if !r.Remove("1") {
		t.Fatalf("expected removal")
	}
	if r.Remove("1") {
		t.Fatalf("second removal should report false")
	}
	if r.Len() != 1 || r.Items()[0].ID != "2" {
		t.Fatalf("unexpected recents %+v", r.Items())
	}
}
