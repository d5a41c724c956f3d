// Package modulehandler provides a composable base for web module handlers.
//
// Modules share session resolution, localization, page chrome and error
// rendering. This package extracts that shared scaffold so modules embed it
// rather than duplicating it.
package modulehandler

import (
	"bytes"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/language"

	"github.com/devtinder/web/internal/services/web/api"
	webi18n "github.com/devtinder/web/internal/services/web/i18n"
	apperrors "github.com/devtinder/web/internal/services/web/platform/errors"
	"github.com/devtinder/web/internal/services/web/platform/flash"
	"github.com/devtinder/web/internal/services/web/platform/httpx"
	"github.com/devtinder/web/internal/services/web/platform/requestmeta"
	"github.com/devtinder/web/internal/services/web/routepath"
	webtemplates "github.com/devtinder/web/internal/services/web/templates"
	"github.com/devtinder/web/internal/services/web/websession"
)

// LiveHeader marks page fetches issued by the live-refresh script.
const LiveHeader = "X-DevTinder-Live"

// Base carries the shared request helpers used by module handlers.
// Embed this in module handler structs.
type Base struct {
	policy requestmeta.SchemePolicy
	logger *log.Logger
}

// NewBase builds a handler base.
func NewBase(policy requestmeta.SchemePolicy, logger *log.Logger) Base {
	if logger == nil {
		logger = log.Default()
	}
	return Base{policy: policy, logger: logger}
}

// NewTestBase builds a handler base with default policy and logger.
func NewTestBase() Base {
	return NewBase(requestmeta.SchemePolicy{}, nil)
}

// Logger returns the handler logger.
func (b Base) Logger() *log.Logger {
	if b.logger == nil {
		return log.Default()
	}
	return b.logger
}

// Policy returns the scheme policy used for cookies.
func (b Base) Policy() requestmeta.SchemePolicy {
	return b.policy
}

// Session returns the browser session resolved for r.
func (b Base) Session(r *http.Request) (*websession.Session, bool) {
	if r == nil {
		return nil, false
	}
	return websession.FromContext(r.Context())
}

// PageLocalizer resolves a localizer and language tag from the request.
func (b Base) PageLocalizer(w http.ResponseWriter, r *http.Request) (webtemplates.Localizer, language.Tag) {
	return webi18n.Resolve(w, r)
}

// LiveRefresh reports whether r is a background re-render. Such requests
// must not start fetches, or a failing upstream would loop.
func (b Base) LiveRefresh(r *http.Request) bool {
	return r != nil && strings.TrimSpace(r.Header.Get(LiveHeader)) != ""
}

// PageContext builds the page chrome for r: viewer, notices and live events.
func (b Base) PageContext(w http.ResponseWriter, r *http.Request, loc webtemplates.Localizer, tag language.Tag, title string, active string) webtemplates.PageContext {
	page := webtemplates.PageContext{
		Loc:    loc,
		Lang:   tag.String(),
		Title:  title,
		Active: active,
	}
	if r != nil && r.URL != nil {
		page.LangPath = r.URL.Path
	}
	if sess, ok := b.Session(r); ok {
		if user, ok := sess.Store.Session().User(); ok {
			page.Viewer = &webtemplates.ViewerView{FirstName: user.FirstName, PhotoURL: user.PhotoURL}
			page.Events = routepath.AppEvents
		}
		for _, n := range sess.Notices.Active() {
			page.Notices = append(page.Notices, webtemplates.NoticeView{ID: n.ID, Kind: string(n.Kind), Message: n.Message})
		}
	}
	if notice, ok := flash.ReadAndClear(w, r, b.policy); ok {
		page.Notices = append(page.Notices, webtemplates.NoticeView{Kind: string(notice.Kind), Message: webtemplates.T(loc, notice.Key)})
	}
	return page
}

// WritePage renders body inside the page chrome.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, page webtemplates.PageContext, statusCode int, body templ.Component) {
	var buf bytes.Buffer
	if err := webtemplates.Page(page, body).Render(httpx.RequestContext(r), &buf); err != nil {
		b.Logger().Printf("web render failed path=%s err=%v", requestPath(r), err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	if err := httpx.WriteHTML(w, statusCode, buf.String()); err != nil {
		b.Logger().Printf("web write failed path=%s err=%v", requestPath(r), err)
	}
}

// WriteError renders a localized error page with the status mapped from err.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.HTTPStatus(err)
	loc, tag := b.PageLocalizer(w, r)
	if status >= http.StatusInternalServerError {
		b.Logger().Printf("web request failed method=%s path=%s status=%d err=%v", requestMethod(r), requestPath(r), status, err)
	}
	message := ErrorMessage(loc, err)
	page := b.PageContext(w, r, loc, tag, webtemplates.T(loc, "title.error"), "")
	b.WritePage(w, r, page, status, webtemplates.ErrorPage(loc, webtemplates.ErrorView{Message: message}))
}

// WriteNotFound renders a 404 error page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	b.WriteError(w, r, apperrors.EK(apperrors.KindNotFound, "error.not_found", "page not found"))
}

// ErrorMessage returns the user-facing text for err.
func ErrorMessage(loc webtemplates.Localizer, err error) string {
	if key := apperrors.LocalizationKey(err); key != "" {
		return webtemplates.T(loc, key)
	}
	switch apperrors.HTTPStatus(err) {
	case http.StatusServiceUnavailable:
		return webtemplates.T(loc, "error.unavailable")
	case http.StatusNotFound:
		return webtemplates.T(loc, "error.not_found")
	}
	return api.UserMessage(err, webtemplates.T(loc, "error.generic"))
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return "-"
	}
	return r.URL.Path
}

func requestMethod(r *http.Request) string {
	if r == nil {
		return "-"
	}
	return r.Method
}
