// Package story holds the story collection and the auto-advancing viewer
// that plays one story at a time.
package story

import "slices"

// Story is a named sequence of full-screen images belonging to one user.
type Story struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Avatar string   `yaml:"avatar"`
	Images []string `yaml:"images"`
}

// Len returns the number of images in the story.
func (s Story) Len() int { return len(s.Images) }

// Collection is the ordered, read-only set of stories shown in the bar.
type Collection struct {
	items []Story
}

// NewCollection copies stories so later edits by the caller cannot leak in.
func NewCollection(stories []Story) Collection {
	items := make([]Story, 0, len(stories))
	for _, s := range stories {
		items = append(items, s.clone())
	}
	return Collection{items: items}
}

func (s Story) clone() Story {
	s.Images = slices.Clone(s.Images)
	return s
}

func (c Collection) Len() int { return len(c.items) }

// At returns the story at position i.
func (c Collection) At(i int) (Story, bool) {
	if i < 0 || i >= len(c.items) {
		return Story{}, false
	}
	return c.items[i].clone(), true
}

// Find looks a story up by ID.
func (c Collection) Find(id string) (Story, bool) {
	if i := c.Index(id); i >= 0 {
		return c.items[i].clone(), true
	}
	return Story{}, false
}

// Index returns the position of the story with the given ID, or -1.
func (c Collection) Index(id string) int {
	return slices.IndexFunc(c.items, func(s Story) bool { return s.ID == id })
}

// All returns a copy of the stories in bar order.
func (c Collection) All() []Story {
	out := make([]Story, 0, len(c.items))
	for _, s := range c.items {
		out = append(out, s.clone())
	}
	return out
}
