package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/pubtheme/content"
	"github.com/eringen/pubtheme/readingtime"
)

// CardClass returns the class list for a post card. The first card in a
// list gets the large variant.
func CardClass(isFirst bool) string {
	if isFirst {
		return "post-card post-card-large"
	}
	return "post-card"
}

// PostCard renders a clickable summary tile linking to the post.
func PostCard(post content.Post, tagColor string, isFirst bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		writeCard(&buf, post, tagColor, isFirst)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func writeCard(buf *bytes.Buffer, post content.Post, tagColor string, isFirst bool) {
	buf.WriteString(`<a`)
	writeAttr(buf, "href", post.URL())
	writeAttr(buf, "class", CardClass(isFirst))
	buf.WriteString(`>`)

	buf.WriteString(`<header class="post-card-header post-card-image-link">`)
	if post.HasFeatureImage() {
		buf.WriteString(`<div class="post-card-image"`)
		writeAttr(buf, "style", "background-image: url("+post.FeatureImage+");")
		buf.WriteString(`></div>`)
	}
	buf.WriteString(`</header>`)

	buf.WriteString(`<div class="post-card-content">`)
	if len(post.PublicTags()) > 0 {
		buf.WriteString(`<div class="post-card-tags"`)
		writeColorStyle(buf, tagColor)
		buf.WriteString(`>`)
		writeTags(buf, post, TagsOptions{Visibility: content.VisibilityPublic})
		buf.WriteString(`</div>`)
	}
	if post.Featured {
		buf.WriteString(`<div class="post-card-tags"`)
		writeColorStyle(buf, tagColor)
		buf.WriteString(`><span>Featured</span></div>`)
	}
	buf.WriteString(`<h2 class="post-card-title">`)
	writeText(buf, post.Title)
	buf.WriteString(`</h2>`)
	buf.WriteString(`<section class="post-card-excerpt">`)
	writeText(buf, post.Excerpt)
	buf.WriteString(`</section>`)

	buf.WriteString(`<footer class="post-card-footer"><div class="post-card-footer-left"><div class="post-card-avatar">`)
	if post.PrimaryAuthor.ProfileImage != "" {
		writeAvatar(buf, "author-profile-image", post.PrimaryAuthor)
	} else {
		writeAvatar(buf, "default-avatar", post.PrimaryAuthor)
	}
	buf.WriteString(`</div><span>`)
	writeText(buf, post.PrimaryAuthor.Name)
	buf.WriteString(`</span></div>`)
	buf.WriteString(`<div class="post-card-footer-right"><div>`)
	writeText(buf, readingtime.ForPost(post))
	buf.WriteString(`</div></div></footer>`)
	buf.WriteString(`</div></a>`)
}
