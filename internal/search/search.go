// Package search answers the Search tab: accounts, tags and places matched
// against a query with a little typo tolerance. Results keep catalog order.
package search

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/jask/storygram/internal/catalog"
)

type Kind string

const (
	Top      Kind = "top"
	Accounts Kind = "accounts"
	Tags     Kind = "tags"
	Places   Kind = "places"
)

// Kinds is the tab order of the result filter.
var Kinds = []Kind{Top, Accounts, Tags, Places}

// Next returns the kind after k, wrapping around.
func (k Kind) Next() Kind {
	i := slices.Index(Kinds, k)
	return Kinds[(i+1)%len(Kinds)]
}

// fuzzyMin is the shortest query that gets typo tolerance. Shorter queries
// would match almost everything at distance one.
const fuzzyMin = 4

type Result struct {
	Kind  Kind
	Label string
	Sub   string
}

type Index struct {
	entries []Result
}

// NewIndex collects every account the catalog mentions (deduplicated by user
// name), then tags, then places.
func NewIndex(c catalog.Catalog) Index {
	var idx Index
	seen := map[string]bool{}
	addAccount := func(user, name string) {
		key := strings.ToLower(strings.TrimSpace(user))
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		idx.entries = append(idx.entries, Result{Kind: Accounts, Label: user, Sub: name})
	}
	for _, a := range c.Recent {
		addAccount(a.UserName, a.Name)
	}
	for _, a := range c.Suggested {
		addAccount(a.UserName, a.Name)
	}
	for _, s := range c.Stories {
		addAccount(s.Name, "")
	}
	for _, p := range c.Posts {
		addAccount(p.UserName, "")
	}
	for _, r := range c.Reels {
		addAccount(r.UserName, "")
	}
	for _, t := range c.Tags {
		idx.entries = append(idx.entries, Result{Kind: Tags, Label: "#" + strings.TrimPrefix(t, "#")})
	}
	for _, p := range c.Places {
		idx.entries = append(idx.entries, Result{Kind: Places, Label: p})
	}
	return idx
}

func (idx Index) Len() int { return len(idx.entries) }

// Query returns entries of the given kind matching q. Top includes every
// kind. An empty query returns nothing; the tab shows recents instead.
func (idx Index) Query(q string, kind Kind) []Result {
	q = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(q), "#")))
	if q == "" {
		return nil
	}
	out := make([]Result, 0, 8)
	for _, e := range idx.entries {
		if kind != Top && e.Kind != kind {
			continue
		}
		label := strings.TrimPrefix(e.Label, "#")
		if Match(q, label) || (e.Sub != "" && Match(q, e.Sub)) {
			out = append(out, e)
		}
	}
	return out
}

// Match reports whether query occurs in candidate, ignoring case. Queries of
// four or more runes also match a window of candidate within edit distance 1.
func Match(query, candidate string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	c := strings.ToLower(candidate)
	if q == "" {
		return true
	}
	if strings.Contains(c, q) {
		return true
	}
	n := utf8.RuneCountInString(q)
	if n < fuzzyMin {
		return false
	}
	runes := []rune(c)
	for _, w := range []int{n - 1, n, n + 1} {
		if w > len(runes) {
			continue
		}
		for start := 0; start+w <= len(runes); start++ {
			if levenshtein.ComputeDistance(q, string(runes[start:start+w])) <= 1 {
				return true
			}
		}
	}
	return false
}

// Recents is the removable list of recent searches.
type Recents struct {
	items []catalog.Account
}

func NewRecents(items []catalog.Account) *Recents {
	return &Recents{items: slices.Clone(items)}
}

func (r *Recents) Items() []catalog.Account { return slices.Clone(r.items) }

func (r *Recents) Len() int { return len(r.items) }

// Remove drops the entry with the given id and reports whether it existed.
func (r *Recents) Remove(id string) bool {
	before := len(r.items)
	r.items = slices.DeleteFunc(r.items, func(a catalog.Account) bool { return a.ID == id })
	return len(r.items) != before
}
