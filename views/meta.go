package views

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/pubtheme/content"
)

// MetaData renders the <head> tags for a post page: title, description,
// canonical link, OpenGraph and Twitter tags, and a JSON-LD block.
// ogType is "article" for posts and "website" for listings.
func MetaData(post content.Post, loc Location, ogType string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		writePostMeta(&buf, post, loc, ogType)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func writeMetaTag(buf *bytes.Buffer, key, name, value string) {
	if value == "" {
		return
	}
	buf.WriteString(`<meta`)
	writeAttr(buf, key, name)
	writeAttr(buf, "content", value)
	buf.WriteString(`/>`)
}

func writeCanonical(buf *bytes.Buffer, href string) {
	if href == "" {
		return
	}
	buf.WriteString(`<link rel="canonical"`)
	writeAttr(buf, "href", href)
	buf.WriteString(`/>`)
}

func writePostMeta(buf *bytes.Buffer, post content.Post, loc Location, ogType string) {
	title := metaTitle(post)
	description := metaDescription(post)

	buf.WriteString(`<title>`)
	writeText(buf, title)
	buf.WriteString(`</title>`)
	writeMetaTag(buf, "name", "description", description)
	writeCanonical(buf, loc.Href)

	writeMetaTag(buf, "property", "og:type", ogType)
	writeMetaTag(buf, "property", "og:title", title)
	writeMetaTag(buf, "property", "og:description", description)
	writeMetaTag(buf, "property", "og:url", loc.Href)
	writeMetaTag(buf, "property", "og:image", post.FeatureImage)
	if !post.PublishedAt.IsZero() {
		writeMetaTag(buf, "property", "article:published_time", post.PublishedAt.Format(time.RFC3339))
	}
	for _, t := range post.PublicTags() {
		writeMetaTag(buf, "property", "article:tag", t.Name)
	}

	card := "summary"
	if post.HasFeatureImage() {
		card = "summary_large_image"
	}
	writeMetaTag(buf, "name", "twitter:card", card)
	writeMetaTag(buf, "name", "twitter:title", title)
	writeMetaTag(buf, "name", "twitter:description", description)
	writeMetaTag(buf, "name", "twitter:url", loc.Href)
	writeMetaTag(buf, "name", "twitter:image", post.FeatureImage)

	buf.WriteString(`<script type="application/ld+json">`)
	buf.WriteString(ArticleJsonLD(post, loc))
	buf.WriteString(`</script>`)
}
