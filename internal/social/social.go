// Package social tracks the optimistic view state behind like, follow, save,
// mute and comment actions. Nothing here leaves the process.
package social

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

type Action string

const (
	Like   Action = "like"
	Follow Action = "follow"
	Save   Action = "save"
	Mute   Action = "mute"
	Pause  Action = "pause"
)

// Key namespaces an identifier so posts, reels and users never collide.
func Key(kind, id string) string { return kind + ":" + id }

func PostKey(id string) string { return Key("post", id) }
func ReelKey(id string) string { return Key("reel", id) }
func UserKey(name string) string {
	return Key("user", strings.ToLower(strings.TrimSpace(name)))
}

type Comment struct {
	ID     string
	Target string
	Author string
	Text   string
}

// State is owned by the UI loop and is not safe for concurrent use.
type State struct {
	on       map[Action]map[string]bool
	order    map[Action][]string
	comments map[string][]Comment
}

func New() *State {
	return &State{
		on:       map[Action]map[string]bool{},
		order:    map[Action][]string{},
		comments: map[string][]Comment{},
	}
}

// Toggle flips the action for key and returns the new value.
func (s *State) Toggle(a Action, key string) bool {
	set, ok := s.on[a]
	if !ok {
		set = map[string]bool{}
		s.on[a] = set
	}
	if set[key] {
		delete(set, key)
		s.order[a] = slices.DeleteFunc(s.order[a], func(k string) bool { return k == key })
		return false
	}
	set[key] = true
	s.order[a] = append(s.order[a], key)
	return true
}

func (s *State) On(a Action, key string) bool {
	return s.on[a][key]
}

// Keys lists the keys with the action on, oldest first.
func (s *State) Keys(a Action) []string {
	return slices.Clone(s.order[a])
}

func (s *State) Count(a Action) int { return len(s.on[a]) }

// Reset clears toggles but keeps comments.
func (s *State) Reset() {
	s.on = map[Action]map[string]bool{}
	s.order = map[Action][]string{}
}

// AddComment appends a trimmed comment to target. Blank text is ignored.
func (s *State) AddComment(target, author, text string) (Comment, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Comment{}, false
	}
	c := Comment{ID: uuid.NewString(), Target: target, Author: author, Text: text}
	s.comments[target] = append(s.comments[target], c)
	return c, true
}

func (s *State) Comments(target string) []Comment {
	return slices.Clone(s.comments[target])
}

// LikeCount is the displayed count: the base count plus the local like.
func LikeCount(base int, liked bool) int {
	if liked {
		return base + 1
	}
	return base
}

func FollowLabel(following bool) string {
	if following {
		return "Following"
	}
	return "Follow"
}
