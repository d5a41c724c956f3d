package templates

import (
	"github.com/a-h/templ"

	"github.com/devtinder/web/internal/services/web/routepath"
)

// LoginView holds the login form state.
type LoginView struct {
	Email string
	Error string
}

// SignupView holds the signup form state.
type SignupView struct {
	Email     string
	FirstName string
	LastName  string
	Error     string
}

// LoginForm renders the login card.
func LoginForm(loc Localizer, view LoginView) templ.Component {
	return component(func(h *html) {
		h.element("h1", "", T(loc, "title.login"))
		h.raw(`<form class="form card card-body" method="post"`)
		h.url("action", routepath.Login)
		h.raw(">")
		input(h, T(loc, "auth.email"), "email", "emailID", view.Email, "username")
		input(h, T(loc, "auth.password"), "password", "password", "", "current-password")
		formError(h, view.Error)
		h.raw(`<button type="submit">`)
		h.text(T(loc, "auth.login"))
		h.raw("</button>")
		switchLink(h, routepath.Signup, T(loc, "auth.to_signup"))
		h.close("form")
	})
}

// SignupForm renders the signup card.
func SignupForm(loc Localizer, view SignupView) templ.Component {
	return component(func(h *html) {
		h.element("h1", "", T(loc, "title.signup"))
		h.raw(`<form class="form card card-body" method="post"`)
		h.url("action", routepath.Signup)
		h.raw(">")
		input(h, T(loc, "auth.first_name"), "text", "firstName", view.FirstName, "given-name")
		input(h, T(loc, "auth.last_name"), "text", "lastName", view.LastName, "family-name")
		input(h, T(loc, "auth.email"), "email", "emailID", view.Email, "username")
		input(h, T(loc, "auth.password"), "password", "password", "", "new-password")
		formError(h, view.Error)
		h.raw(`<button type="submit">`)
		h.text(T(loc, "auth.signup"))
		h.raw("</button>")
		switchLink(h, routepath.Login, T(loc, "auth.to_login"))
		h.close("form")
	})
}

func input(h *html, label string, kind string, name string, value string, autocomplete string) {
	h.raw("<label>")
	h.text(label)
	h.raw("<input")
	h.attr("type", kind)
	h.attr("name", name)
	if value != "" {
		h.attr("value", value)
	}
	if autocomplete != "" {
		h.attr("autocomplete", autocomplete)
	}
	h.raw("></label>")
}

func formError(h *html, message string) {
	if message == "" {
		return
	}
	h.raw(`<p class="error" role="alert">`)
	h.text(message)
	h.raw("</p>")
}

func switchLink(h *html, href string, label string) {
	h.raw(`<p class="switch"><a`)
	h.url("href", href)
	h.raw(">")
	h.text(label)
	h.raw("</a></p>")
}
