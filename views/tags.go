package views

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/pubtheme/content"
)

// VisibilityAll includes internal tags in Tags output.
const VisibilityAll = "all"

// TagsOptions controls how Tags formats a post's tag list.
type TagsOptions struct {
	Visibility string // content.VisibilityPublic (default) or VisibilityAll
	Autolink   bool   // wrap each tag in a link to Permalink
	Separator  string // default ", "
	Permalink  string // default "/tag/:slug/"
}

func (o *TagsOptions) setDefaults() {
	if o.Visibility == "" {
		o.Visibility = content.VisibilityPublic
	}
	if o.Separator == "" {
		o.Separator = ", "
	}
	if o.Permalink == "" {
		o.Permalink = "/tag/:slug/"
	}
}

// Tags renders the post's tags as a separated list of spans, or links when
// Autolink is set.
func Tags(post content.Post, opts TagsOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		writeTags(&buf, post, opts)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func visibleTags(post content.Post, visibility string) []content.Tag {
	if visibility == VisibilityAll {
		return post.Tags
	}
	return post.PublicTags()
}

func writeTags(buf *bytes.Buffer, post content.Post, opts TagsOptions) {
	opts.setDefaults()
	for i, t := range visibleTags(post, opts.Visibility) {
		if i > 0 {
			writeText(buf, opts.Separator)
		}
		if opts.Autolink {
			buf.WriteString(`<a`)
			writeAttr(buf, "href", strings.ReplaceAll(opts.Permalink, ":slug", t.Slug))
			buf.WriteString(`>`)
			writeText(buf, t.Name)
			buf.WriteString(`</a>`)
			continue
		}
		buf.WriteString(`<span>`)
		writeText(buf, t.Name)
		buf.WriteString(`</span>`)
	}
}
