// Package content defines the post records supplied by the CMS data layer.
// Records are read-only for the duration of a render.
package content

import "time"

// DefaultAvatar is served whenever an author has no profile image.
const DefaultAvatar = "/images/icons/avatar.svg"

// Tag visibility values as stored by the CMS.
const (
	VisibilityPublic   = "public"
	VisibilityInternal = "internal"
)

// TrustedHTML is pre-rendered markup from the authoring system. Renderers
// write it verbatim, without escaping.
type TrustedHTML string

func (h TrustedHTML) String() string { return string(h) }

// Post is a single article as returned by the content API.
type Post struct {
	Slug                string      `json:"slug" yaml:"slug"`
	Title               string      `json:"title" yaml:"title"`
	Excerpt             string      `json:"excerpt" yaml:"excerpt"`
	HTML                TrustedHTML `json:"html" yaml:"html"`
	FeatureImage        string      `json:"feature_image,omitempty" yaml:"feature_image,omitempty"`
	CodeinjectionStyles string      `json:"codeinjection_styles,omitempty" yaml:"codeinjection_styles,omitempty"`
	Featured            bool        `json:"featured" yaml:"featured"`
	Tags                []Tag       `json:"tags,omitempty" yaml:"tags,omitempty"`
	PrimaryAuthor       Author      `json:"primary_author" yaml:"primary_author"`
	PublishedAt         time.Time   `json:"published_at" yaml:"published_at"`
	PublishedAtPretty   string      `json:"published_at_pretty" yaml:"published_at_pretty"`
	ReadingTime         int         `json:"reading_time,omitempty" yaml:"reading_time,omitempty"`
	MetaTitle           string      `json:"meta_title,omitempty" yaml:"meta_title,omitempty"`
	MetaDescription     string      `json:"meta_description,omitempty" yaml:"meta_description,omitempty"`
}

// Tag classifies a post. Internal tags are hidden from readers.
type Tag struct {
	Name       string `json:"name" yaml:"name"`
	Slug       string `json:"slug" yaml:"slug"`
	Visibility string `json:"visibility,omitempty" yaml:"visibility,omitempty"`
}

// IsPublic reports whether the tag is visible to readers. A tag without an
// explicit visibility is public.
func (t Tag) IsPublic() bool {
	return t.Visibility == "" || t.Visibility == VisibilityPublic
}

// Author is the primary author of a post.
type Author struct {
	Name         string `json:"name" yaml:"name"`
	ProfileImage string `json:"profile_image,omitempty" yaml:"profile_image,omitempty"`
	Slug         string `json:"slug" yaml:"slug"`
}

// Avatar returns the author's profile image, or DefaultAvatar when unset.
func (a Author) Avatar() string {
	if a.ProfileImage != "" {
		return a.ProfileImage
	}
	return DefaultAvatar
}

// URL is the post permalink, /{slug}/.
func (p Post) URL() string {
	return "/" + p.Slug + "/"
}

// HasFeatureImage reports whether the post carries a feature image.
func (p Post) HasFeatureImage() bool {
	return p.FeatureImage != ""
}

// PublicTags returns the tags visible to readers, in source order.
func (p Post) PublicTags() []Tag {
	var out []Tag
	for _, t := range p.Tags {
		if t.IsPublic() {
			out = append(out, t)
		}
	}
	return out
}

// URL is the tag archive path, /tag/{slug}/.
func (t Tag) URL() string {
	return "/tag/" + t.Slug + "/"
}

// URL is the author archive path, /author/{slug}.
func (a Author) URL() string {
	return "/author/" + a.Slug
}
