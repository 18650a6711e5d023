package views

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"

	"github.com/eringen/pubtheme/content"
	"github.com/eringen/pubtheme/readingtime"
)

// PostDetail renders the full article view for post. The returned Document
// carries page metadata and the post's injected styles in Head, and the
// article in Body.
func PostDetail(post content.Post, accentColor string, loc Location) Document {
	return Document{
		Head: postHead(post, loc),
		Body: templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			var buf bytes.Buffer
			writeArticle(ctx, &buf, post, accentColor)
			_, err := w.Write(buf.Bytes())
			return err
		}),
	}
}

func postHead(post content.Post, loc Location) templ.Component {
	meta := MetaData(post, loc, "article")
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := meta.Render(ctx, w); err != nil {
			return err
		}
		if post.CodeinjectionStyles == "" {
			return nil
		}
		// Styles come from the CMS code injection field and are trusted as-is.
		_, err := io.WriteString(w, `<style type="text/css">`+post.CodeinjectionStyles+`</style>`)
		return err
	})
}

func writeArticle(ctx context.Context, buf *bytes.Buffer, post content.Post, accentColor string) {
	buf.WriteString(`<article class="content"><section class="post-full-content"><div class="post-header gh-canvas">`)

	if len(post.Tags) > 0 {
		buf.WriteString(`<ul class="tag-list">`)
		for _, t := range post.Tags {
			buf.WriteString(`<li><a`)
			writeAttr(buf, "href", t.URL())
			writeColorStyle(buf, accentColor)
			buf.WriteString(`>`)
			writeText(buf, t.Name)
			buf.WriteString(`</a></li>`)
		}
		buf.WriteString(`</ul>`)
	}

	buf.WriteString(`<h1 class="content-title">`)
	writeText(buf, post.Title)
	buf.WriteString(`</h1><p class="post-excerpt">`)
	writeText(buf, post.Excerpt)
	buf.WriteString(`</p>`)

	writeByline(buf, post)
	writeFeatureFigure(ctx, buf, post)

	buf.WriteString(`</div><section class="content-body load-external-scripts gh-canvas">`)
	buf.WriteString(post.HTML.String())
	buf.WriteString(`</section></section></article>`)
}

func writeByline(buf *bytes.Buffer, post content.Post) {
	author := post.PrimaryAuthor
	buf.WriteString(`<a`)
	writeAttr(buf, "href", author.URL())
	buf.WriteString(` class="article-byline-content"><div class="post-card-avatar">`)
	writeAvatar(buf, "author-profile-image", author)
	buf.WriteString(`</div><div class="article-byline-meta"><div class="author-name">`)
	writeText(buf, author.Name)
	buf.WriteString(`</div><div><time class="byline-meta-date"`)
	if !post.PublishedAt.IsZero() {
		writeAttr(buf, "datetime", post.PublishedAt.Format(time.RFC3339))
	}
	buf.WriteString(`>`)
	writeText(buf, post.PublishedAtPretty)
	buf.WriteString(`</time><span class="byline-reading-time"><span class="bull">•</span> `)
	writeText(buf, readingtime.ForPost(post))
	buf.WriteString(`</span></div></div></a>`)
}

func writeFeatureFigure(ctx context.Context, buf *bytes.Buffer, post content.Post) {
	if !post.HasFeatureImage() {
		return
	}
	buf.WriteString(`<figure class="post-feature-image"><img`)
	if srcset, ok := FeatureImageSrcset(post.FeatureImage); ok {
		writeAttr(buf, "srcset", srcset)
		writeAttr(buf, "sizes", FeatureImageSizes)
	} else {
		zerolog.Ctx(ctx).Warn().
			Str("slug", post.Slug).
			Str("feature_image", post.FeatureImage).
			Msg("feature image is not under " + ContentImagesPath + ", rendering without srcset")
	}
	writeAttr(buf, "src", post.FeatureImage)
	writeAttr(buf, "alt", post.Title)
	buf.WriteString(`/></figure>`)
}
