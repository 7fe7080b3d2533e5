// Package catalog holds the read-only sample data every screen renders:
// stories, feed posts, reels, products, search suggestions and the profile.
//
// The data ships embedded as YAML. A different file with the same schema can
// be loaded instead; nothing here is ever written back.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/jask/storygram/internal/story"
)

//go:embed sample.yaml
var sampleYAML []byte

var (
	ErrNoImages    = errors.New("story has no images")
	ErrDuplicateID = errors.New("duplicate id")
	ErrEmptyName   = errors.New("empty name")
)

type Post struct {
	ID            string `yaml:"id"`
	UserName      string `yaml:"user_name"`
	Avatar        string `yaml:"avatar"`
	Date          string `yaml:"date"`
	Image         string `yaml:"image"`
	CommentCount  int    `yaml:"comment_count"`
	LatestComment string `yaml:"latest_comment"`
}

type Reel struct {
	ID          string `yaml:"id"`
	UserName    string `yaml:"user_name"`
	Description string `yaml:"description"`
	Likes       int    `yaml:"likes"`
	Comments    int    `yaml:"comments"`
	Video       string `yaml:"video"`
	Avatar      string `yaml:"avatar"`
}

type Product struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	Price    float64 `yaml:"price"`
	Image    string  `yaml:"image"`
	Rating   float64 `yaml:"rating"`
	Category string  `yaml:"category"`
}

// Account is a searchable user shown in recent searches and suggestions.
type Account struct {
	ID       string `yaml:"id"`
	UserName string `yaml:"user_name"`
	Name     string `yaml:"name"`
	Avatar   string `yaml:"avatar"`
}

type Highlight struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Image string `yaml:"image"`
}

type GridPost struct {
	ID    string `yaml:"id"`
	Image string `yaml:"image"`
}

type Stats struct {
	Posts     int    `yaml:"posts"`
	Followers string `yaml:"followers"`
	Following int    `yaml:"following"`
}

type Profile struct {
	UserName   string      `yaml:"user_name"`
	Avatar     string      `yaml:"avatar"`
	Bio        string      `yaml:"bio"`
	Stats      Stats       `yaml:"stats"`
	Highlights []Highlight `yaml:"highlights"`
	Posts      []GridPost  `yaml:"posts"`
}

// Catalog is the full sample data set for one session.
type Catalog struct {
	Stories    []story.Story `yaml:"stories"`
	Posts      []Post        `yaml:"posts"`
	Reels      []Reel        `yaml:"reels"`
	Products   []Product     `yaml:"products"`
	Categories []string      `yaml:"categories"`
	Recent     []Account     `yaml:"recent_searches"`
	Suggested  []Account     `yaml:"suggested_accounts"`
	Tags       []string      `yaml:"tags"`
	Places     []string      `yaml:"places"`
	Profile    Profile       `yaml:"profile"`
}

// StoryCollection returns the stories as the viewer's read-only collection.
func (c Catalog) StoryCollection() story.Collection {
	return story.NewCollection(c.Stories)
}

// Sample returns the embedded catalog.
func Sample() (Catalog, error) {
	return Parse(sampleYAML)
}

// Load reads a catalog from path, or the embedded sample when path is empty.
func Load(path string) (Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Sample()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML, fills in missing identifiers and validates the result.
func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	c.fillIDs()
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// StableID derives a deterministic identifier for records that lack one so
// toggle state keys survive a restart with the same data.
func StableID(kind, name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind+":"+name)).String()
}

func (c *Catalog) fillIDs() {
	for i := range c.Stories {
		if c.Stories[i].ID == "" {
			c.Stories[i].ID = StableID("story", c.Stories[i].Name)
		}
	}
	for i := range c.Posts {
		if c.Posts[i].ID == "" {
			c.Posts[i].ID = StableID("post", c.Posts[i].UserName+"|"+c.Posts[i].Image)
		}
	}
	for i := range c.Reels {
		if c.Reels[i].ID == "" {
			c.Reels[i].ID = StableID("reel", c.Reels[i].UserName+"|"+c.Reels[i].Description)
		}
	}
	for i := range c.Products {
		if c.Products[i].ID == "" {
			c.Products[i].ID = StableID("product", c.Products[i].Name)
		}
	}
	for _, accts := range [][]Account{c.Recent, c.Suggested} {
		for i := range accts {
			if accts[i].ID == "" {
				accts[i].ID = StableID("account", accts[i].UserName)
			}
		}
	}
	for i := range c.Profile.Highlights {
		if c.Profile.Highlights[i].ID == "" {
			c.Profile.Highlights[i].ID = StableID("highlight", c.Profile.Highlights[i].Title)
		}
	}
}

// Validate checks the invariants the screens rely on. All problems are
// reported together.
func (c Catalog) Validate() error {
	var errs []error
	seen := map[string]string{}
	check := func(kind, id, name string) {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, fmt.Errorf("%s %q: %w", kind, id, ErrEmptyName))
		}
		key := kind + ":" + id
		if _, dup := seen[key]; dup {
			errs = append(errs, fmt.Errorf("%s %q: %w", kind, id, ErrDuplicateID))
			return
		}
		seen[key] = name
	}
	for _, s := range c.Stories {
		check("story", s.ID, s.Name)
		if len(s.Images) == 0 {
			errs = append(errs, fmt.Errorf("story %q: %w", s.ID, ErrNoImages))
		}
	}
	for _, p := range c.Posts {
		check("post", p.ID, p.UserName)
	}
	for _, r := range c.Reels {
		check("reel", r.ID, r.UserName)
	}
	for _, p := range c.Products {
		check("product", p.ID, p.Name)
	}
	for _, a := range c.Recent {
		check("recent", a.ID, a.UserName)
	}
	for _, a := range c.Suggested {
		check("suggested", a.ID, a.UserName)
	}
	return errors.Join(errs...)
}
