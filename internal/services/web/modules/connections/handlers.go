package connections

import (
	"net/http"

	"github.com/devtinder/web/internal/services/web/platform/modulehandler"
	webtemplates "github.com/devtinder/web/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.Session(r)
	cache, err := h.service.list(sess, h.LiveRefresh(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, tag := h.PageLocalizer(w, r)
	page := h.PageContext(w, r, loc, tag, webtemplates.T(loc, "title.connections"), webtemplates.NavConnections)
	h.WritePage(w, r, page, http.StatusOK, webtemplates.Connections(loc, connectionsView(cache)))
}
