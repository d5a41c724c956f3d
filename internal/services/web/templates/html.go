package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// html writes markup and keeps the first error, so components can emit a
// whole tree and check once at the end.
type html struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTML(ctx context.Context, w io.Writer) *html {
	return &html{ctx: ctx, w: w}
}

func (h *html) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// text writes escaped text content.
func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (h *html) attr(name string, value string) {
	h.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// url writes a link attribute, replacing unsafe schemes.
func (h *html) url(name string, value string) {
	h.attr(name, string(templ.URL(value)))
}

// open writes a start tag with the given class, when non-empty.
func (h *html) open(tag string, class string) {
	h.raw("<" + tag)
	if class != "" {
		h.attr("class", class)
	}
	h.raw(">")
}

func (h *html) close(tag string) {
	h.raw("</" + tag + ">")
}

// element writes a complete element holding escaped text.
func (h *html) element(tag string, class string, text string) {
	h.open(tag, class)
	h.text(text)
	h.close(tag)
}

// render nests another component.
func (h *html) render(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// component adapts a body builder into a templ.Component.
func component(build func(h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(ctx, w)
		build(h)
		return h.err
	})
}
