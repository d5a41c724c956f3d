package templates

import (
	"github.com/a-h/templ"

	"github.com/devtinder/web/internal/services/web/routepath"
)

// Nav sections used to highlight the active link.
const (
	NavFeed        = "feed"
	NavConnections = "connections"
	NavRequests    = "requests"
	NavProfile     = "profile"
)

// NoticeView is one toast in the notice area.
type NoticeView struct {
	ID      string
	Kind    string
	Message string
}

// ViewerView is the signed-in user shown in the navbar.
type ViewerView struct {
	FirstName string
	PhotoURL  string
}

// PageContext carries the chrome shared by every page.
type PageContext struct {
	Loc      Localizer
	Lang     string
	Title    string
	Active   string
	Viewer   *ViewerView
	Notices  []NoticeView
	LangPath string
	// Events is the websocket path for live refresh; empty disables it.
	Events string
	// Frozen keeps the main region in place during live refresh, for pages
	// holding a form the user may be editing.
	Frozen bool
}

// Page renders a full HTML document around body.
func Page(page PageContext, body templ.Component) templ.Component {
	return component(func(h *html) {
		lang := page.Lang
		if lang == "" {
			lang = "en-US"
		}
		h.raw("<!doctype html><html")
		h.attr("lang", lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.open("title", "")
		appName := T(page.Loc, "app.name")
		if page.Title != "" {
			h.text(page.Title + " | " + appName)
		} else {
			h.text(appName)
		}
		h.close("title")
		h.raw(`<link rel="stylesheet"`)
		h.url("href", routepath.Stylesheet)
		h.raw("></head><body>")

		navbar(h, page)
		h.render(Notices(page.Notices))

		h.raw(`<main id="app-main"`)
		if page.Events != "" {
			h.attr("data-events", page.Events)
		}
		if !page.Frozen {
			h.attr("data-live", "swap")
		}
		h.raw(">")
		h.render(body)
		h.close("main")

		if page.Events != "" {
			h.raw(`<script defer`)
			h.url("src", routepath.LiveScript)
			h.raw("></script>")
		}
		h.raw("</body></html>")
	})
}

func navbar(h *html, page PageContext) {
	h.open("header", "navbar")
	h.raw(`<a class="brand"`)
	if page.Viewer != nil {
		h.url("href", routepath.AppPrefix)
	} else {
		h.url("href", routepath.Login)
	}
	h.raw(">")
	h.text(T(page.Loc, "app.name"))
	h.close("a")

	if page.Viewer != nil {
		h.open("nav", "")
		navLink(h, page, NavFeed, routepath.AppPrefix, "nav.feed")
		navLink(h, page, NavConnections, routepath.AppConnections, "nav.connections")
		navLink(h, page, NavRequests, routepath.AppRequests, "nav.requests")
		navLink(h, page, NavProfile, routepath.AppProfile, "nav.profile")
		h.element("span", "welcome", T(page.Loc, "nav.welcome", page.Viewer.FirstName))
		h.raw(`<img class="avatar"`)
		h.url("src", photoOrPlaceholder(page.Viewer.PhotoURL))
		h.attr("alt", page.Viewer.FirstName)
		h.raw(">")
		h.raw(`<form method="post"`)
		h.url("action", routepath.AppLogout)
		h.raw(`><button class="ghost" type="submit">`)
		h.text(T(page.Loc, "nav.logout"))
		h.raw("</button></form>")
		h.close("nav")
	}

	langPath := page.LangPath
	if langPath == "" {
		langPath = routepath.Root
	}
	h.open("span", "lang")
	h.raw("<a")
	h.url("href", langPath+"?lang=en-US")
	h.raw(">")
	h.text(T(page.Loc, "nav.lang_en"))
	h.raw("</a> <a")
	h.url("href", langPath+"?lang=pt-BR")
	h.raw(">")
	h.text(T(page.Loc, "nav.lang_pt_br"))
	h.raw("</a>")
	h.close("span")
	h.close("header")
}

func navLink(h *html, page PageContext, section string, href string, key string) {
	h.raw("<a")
	h.url("href", href)
	if page.Active == section {
		h.attr("class", "active")
		h.attr("aria-current", "page")
	}
	h.raw(">")
	h.text(T(page.Loc, key))
	h.close("a")
}

// Notices renders the toast area. It is always present so live refresh can
// replace it.
func Notices(notices []NoticeView) templ.Component {
	return component(func(h *html) {
		h.raw(`<div id="notices" class="toasts" aria-live="polite">`)
		for _, n := range notices {
			kind := n.Kind
			if kind == "" {
				kind = "info"
			}
			h.raw("<div")
			h.attr("class", "toast toast-"+kind)
			if n.ID != "" {
				h.attr("data-notice", n.ID)
			}
			h.raw(` role="status">`)
			h.text(n.Message)
			h.close("div")
		}
		h.close("div")
	})
}

// State renders a centered loading or empty message.
func State(message string) templ.Component {
	return component(func(h *html) {
		h.element("p", "state", message)
	})
}

func photoOrPlaceholder(photoURL string) string {
	if photoURL == "" {
		return routepath.AvatarPlaceholder
	}
	return photoURL
}
