package templates

import (
	"github.com/a-h/templ"

	"github.com/devtinder/web/internal/services/web/routepath"
)

// ErrorView describes a failed request.
type ErrorView struct {
	Message string
}

// ErrorPage renders the body of an error page.
func ErrorPage(loc Localizer, view ErrorView) templ.Component {
	return component(func(h *html) {
		h.raw(`<section class="state">`)
		h.element("h1", "", T(loc, "title.error"))
		h.element("p", "", view.Message)
		h.raw("<p><a")
		h.url("href", routepath.Root)
		h.raw(">")
		h.text(T(loc, "app.name"))
		h.raw("</a></p></section>")
	})
}
