package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/pubtheme/content"
)

// Layout wraps doc in a full HTML page with the site header and footer.
func Layout(site Site, doc Document) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := site.Lang
		if lang == "" {
			lang = "en"
		}
		var buf bytes.Buffer
		buf.WriteString(`<!DOCTYPE html><html`)
		writeAttr(&buf, "lang", lang)
		buf.WriteString(`><head><meta charset="utf-8"/><meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
		if doc.Head != nil {
			if err := doc.Head.Render(ctx, w); err != nil {
				return err
			}
		}

		buf.Reset()
		buf.WriteString(`</head><body><div class="viewport"><header class="site-head"><a class="site-head-logo" href="/">`)
		writeText(&buf, site.Name)
		buf.WriteString(`</a></header><main class="site-main">`)
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
		if doc.Body != nil {
			if err := doc.Body.Render(ctx, w); err != nil {
				return err
			}
		}

		buf.Reset()
		buf.WriteString(`</main><footer class="site-foot">`)
		writeText(&buf, site.Name)
		buf.WriteString(`</footer></div></body></html>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// PostFeed renders one card per post. Only the first card is emphasized.
func PostFeed(posts []content.Post, tagColor string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<div class="post-feed">`)
		for i, p := range posts {
			writeCard(&buf, p, tagColor, i == 0)
		}
		buf.WriteString(`</div>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// FeedDocument is the index page: site metadata in Head, the feed in Body.
func FeedDocument(site Site, posts []content.Post) Document {
	return Document{
		Head: templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			var buf bytes.Buffer
			buf.WriteString(`<title>`)
			writeText(&buf, site.Name)
			buf.WriteString(`</title>`)
			writeMetaTag(&buf, "name", "description", site.Description)
			writeCanonical(&buf, buildURL(site.URL))
			writeMetaTag(&buf, "property", "og:type", "website")
			writeMetaTag(&buf, "property", "og:title", site.Name)
			buf.WriteString(`<script type="application/ld+json">`)
			buf.WriteString(WebsiteJsonLD(site))
			buf.WriteString(`</script>`)
			_, err := w.Write(buf.Bytes())
			return err
		}),
		Body: PostFeed(posts, site.AccentColor),
	}
}

// NotFoundDocument is the page shown for unknown slugs.
func NotFoundDocument(site Site) Document {
	return Document{
		Head: templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			var buf bytes.Buffer
			buf.WriteString(`<title>Page not found - `)
			writeText(&buf, site.Name)
			buf.WriteString(`</title><meta name="robots" content="noindex"/>`)
			_, err := w.Write(buf.Bytes())
			return err
		}),
		Body: templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, `<section class="error-content"><h1 class="error-code">404</h1><p class="error-description">Page not found</p><a class="error-link" href="/">Go to the front page</a></section>`)
			return err
		}),
	}
}
