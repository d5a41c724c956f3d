package feed

import (
	"net/http"

	apperrors "github.com/devtinder/web/internal/services/web/platform/errors"
	"github.com/devtinder/web/internal/services/web/platform/httpx"
	"github.com/devtinder/web/internal/services/web/platform/modulehandler"
	"github.com/devtinder/web/internal/services/web/routepath"
	webtemplates "github.com/devtinder/web/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleFeed(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.Session(r)
	cache, err := h.service.queue(sess, h.LiveRefresh(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, tag := h.PageLocalizer(w, r)
	page := h.PageContext(w, r, loc, tag, webtemplates.T(loc, "title.feed"), webtemplates.NavFeed)
	h.WritePage(w, r, page, http.StatusOK, webtemplates.Feed(loc, feedView(cache)))
}

// handleDecision records a decision. Upstream failures are only logged: the
// redirect shows the same candidate again.
func (h handlers) handleDecision(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.Session(r)
	err := h.service.recordDecision(httpx.RequestContext(r), sess, r.PathValue("decision"), r.PathValue("userID"))
	switch apperrors.KindOf(err) {
	case apperrors.KindInvalidInput, apperrors.KindUnauthorized:
		h.WriteError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.AppPrefix)
}
