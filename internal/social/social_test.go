package social

import "testing"

func TestToggleFlipsAndTracksOrder(t *testing.T) {
	s := New()
	if !s.Toggle(Save, PostKey("1")) {
		t.Fatalf("first toggle should turn on")
	}
	s.Toggle(Save, ReelKey("1"))
	if !s.On(Save, PostKey("1")) || !s.On(Save, ReelKey("1")) {
		t.Fatalf("expected both saved")
	}
	if got := s.Keys(Save); len(got) != 2 || got[0] != "post:1" || got[1] != "reel:1" {
		t.Fatalf("unexpected order %v", got)
	}
	if s.Toggle(Save, PostKey("1")) {
		t.Fatalf("second toggle should turn off")
	}
	if s.On(Save, PostKey("1")) || s.Count(Save) != 1 {
		t.Fatalf("expected only the reel to stay saved")
	}
	if s.On(Like, PostKey("1")) {
		t.Fatalf("actions must be independent")
	}
}

func TestUserKeyNormalizes(t *testing.T) {
	s := New()
	s.Toggle(Follow, UserKey(" Dormammu "))
	if !s.On(Follow, UserKey("dormammu")) {
		t.Fatalf("follow should be shared across spellings of the same user")
	}
}

func TestResetKeepsComments(t *testing.T) {
	s := New()
	s.Toggle(Like, ReelKey("3"))
	s.AddComment(ReelKey("3"), "me", "nice")
	s.Reset()
	if s.Count(Like) != 0 || len(s.Keys(Like)) != 0 {
		t.Fatalf("reset should clear toggles")
	}
	if len(s.Comments(ReelKey("3"))) != 1 {
		t.Fatalf("reset should keep comments")
	}
}

func TestAddCommentTrimsAndRejectsBlank(t *testing.T) {
	s := New()
	if _, ok := s.AddComment(ReelKey("1"), "me", "   "); ok {
		t.Fatalf("blank comment should be rejected")
	}
	c, ok := s.AddComment(ReelKey("1"), "me", "  so good  ")
	if !ok || c.Text != "so good" || c.ID == "" {
		t.Fatalf("unexpected comment %+v", c)
	}
	if got := s.Comments(ReelKey("1")); len(got) != 1 || got[0].Target != "reel:1" {
		t.Fatalf("unexpected comments %+v", got)
	}
}

func TestLikeCountAndLabels(t *testing.T) {
	if LikeCount(41, true) != 42 || LikeCount(41, false) != 41 {
		t.Fatalf("like count should add the local like only")
	}
	if FollowLabel(true) != "Following" || FollowLabel(false) != "Follow" {
		t.Fatalf("unexpected labels")
	}
}
