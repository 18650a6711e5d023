package pubtheme

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eringen/pubtheme/content"
)

// ErrPostNotFound is returned when no fixture has the requested slug.
var ErrPostNotFound = errors.New("pubtheme: post not found")

// Fixtures is an immutable set of posts used by the theme preview, ordered
// newest first.
type Fixtures struct {
	posts  []content.Post
	bySlug map[string]int
}

// postEnvelope matches the content API's {"posts": [...]} response shape.
type postEnvelope struct {
	Posts []content.Post `json:"posts" yaml:"posts"`
}

// NewFixtures orders posts by publish date, newest first, and indexes them by
// slug. Every post needs a unique slug.
func NewFixtures(posts []content.Post) (*Fixtures, error) {
	sorted := make([]content.Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt.After(sorted[j].PublishedAt)
	})
	f := &Fixtures{posts: sorted, bySlug: make(map[string]int, len(sorted))}
	for i, p := range sorted {
		if p.Slug == "" {
			return nil, fmt.Errorf("pubtheme: fixture %q has no slug", p.Title)
		}
		if _, dup := f.bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("pubtheme: duplicate fixture slug %q", p.Slug)
		}
		f.bySlug[p.Slug] = i
	}
	return f, nil
}

// LoadFixtures reads every .json, .yaml and .yml file in dir.
func LoadFixtures(dir string) (*Fixtures, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("pubtheme: read fixtures: %w", err)
	}
	var posts []content.Post
	for _, e := range entries {
		if e.IsDir() || !isFixtureFile(e.Name()) {
			continue
		}
		loaded, err := LoadPostFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		posts = append(posts, loaded...)
	}
	return NewFixtures(posts)
}

func isFixtureFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// LoadPostFile reads posts from a JSON or YAML file. The file holds either a
// single post or a {"posts": [...]} envelope.
func LoadPostFile(path string) ([]content.Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pubtheme: read fixture: %w", err)
	}
	unmarshal := yaml.Unmarshal
	if strings.EqualFold(filepath.Ext(path), ".json") {
		unmarshal = json.Unmarshal
	}

	var env postEnvelope
	if err := unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("pubtheme: parse fixture %s: %w", path, err)
	}
	if len(env.Posts) > 0 {
		return env.Posts, nil
	}
	var post content.Post
	if err := unmarshal(data, &post); err != nil {
		return nil, fmt.Errorf("pubtheme: parse fixture %s: %w", path, err)
	}
	return []content.Post{post}, nil
}

// Posts returns all posts, newest first.
func (f *Fixtures) Posts() []content.Post {
	return f.posts
}

// Post returns the post with the given slug, or ErrPostNotFound.
func (f *Fixtures) Post(slug string) (content.Post, error) {
	i, ok := f.bySlug[slug]
	if !ok {
		return content.Post{}, ErrPostNotFound
	}
	return f.posts[i], nil
}
