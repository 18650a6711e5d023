package views

import (
	"bytes"
	"encoding/json"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/pubtheme/content"
)

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// writeAttr writes ` name="value"` with value escaped.
func writeAttr(buf *bytes.Buffer, name, value string) {
	buf.WriteString(" ")
	buf.WriteString(name)
	buf.WriteString(`="`)
	buf.WriteString(templ.EscapeString(value))
	buf.WriteString(`"`)
}

// writeColorStyle writes a style attribute setting the text colour. Nothing
// is written for an empty colour.
func writeColorStyle(buf *bytes.Buffer, color string) {
	if color == "" {
		return
	}
	writeAttr(buf, "style", "color: "+color+";")
}

func writeText(buf *bytes.Buffer, s string) {
	buf.WriteString(templ.EscapeString(s))
}

func writeAvatar(buf *bytes.Buffer, class string, author content.Author) {
	buf.WriteString(`<img`)
	writeAttr(buf, "class", class)
	writeAttr(buf, "src", author.Avatar())
	writeAttr(buf, "alt", author.Name)
	buf.WriteString(`/>`)
}

// ArticleJsonLD produces a Schema.org Article JSON-LD block for a post.
func ArticleJsonLD(post content.Post, loc Location) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "Article",
		"headline":    post.Title,
		"description": metaDescription(post),
		"url":         loc.Href,
		"author": map[string]string{
			"@type": "Person",
			"name":  post.PrimaryAuthor.Name,
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   loc.Href,
		},
	}
	if !post.PublishedAt.IsZero() {
		data["datePublished"] = post.PublishedAt.Format(time.RFC3339)
	}
	if post.FeatureImage != "" {
		data["image"] = post.FeatureImage
	}
	if tags := post.PublicTags(); len(tags) > 0 {
		names := make([]string, len(tags))
		for i, t := range tags {
			names[i] = t.Name
		}
		data["keywords"] = strings.Join(names, ", ")
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block using site values.
func WebsiteJsonLD(site Site) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     site.Name,
		"url":      buildURL(site.URL),
	}
	if site.Description != "" {
		data["description"] = site.Description
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func metaTitle(post content.Post) string {
	if post.MetaTitle != "" {
		return post.MetaTitle
	}
	return post.Title
}

func metaDescription(post content.Post) string {
	if post.MetaDescription != "" {
		return post.MetaDescription
	}
	return post.Excerpt
}
