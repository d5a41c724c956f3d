package requests

import (
	"net/http"

	"github.com/devtinder/web/internal/services/web/api"
	apperrors "github.com/devtinder/web/internal/services/web/platform/errors"
	"github.com/devtinder/web/internal/services/web/platform/httpx"
	"github.com/devtinder/web/internal/services/web/platform/modulehandler"
	"github.com/devtinder/web/internal/services/web/platform/notice"
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

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.Session(r)
	cache, err := h.service.pending(sess, h.LiveRefresh(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, tag := h.PageLocalizer(w, r)
	page := h.PageContext(w, r, loc, tag, webtemplates.T(loc, "title.requests"), webtemplates.NavRequests)
	h.WritePage(w, r, page, http.StatusOK, webtemplates.Requests(loc, requestsView(cache, sess.Actions.Pending)))
}

// handleReview reviews one request and reports the outcome as a notice on
// the requests screen.
func (h handlers) handleReview(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.Session(r)
	status, err := h.service.review(httpx.RequestContext(r), sess, r.PathValue("requestID"), r.PathValue("decision"))
	switch apperrors.KindOf(err) {
	case apperrors.KindInvalidInput, apperrors.KindUnauthorized:
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	kind, key := reviewNotice(status, err)
	sess.Notices.Show(kind, webtemplates.T(loc, key))
	httpx.WriteRedirect(w, r, routepath.AppRequests)
}

// reviewNotice picks the notice for a review outcome. Rejections read as
// errors, matching how the result is colored elsewhere in the app.
func reviewNotice(status api.ReviewStatus, err error) (notice.Kind, string) {
	switch {
	case apperrors.KindOf(err) == apperrors.KindConflict:
		return notice.KindInfo, "requests.error.in_flight"
	case err != nil && status == api.ReviewAccepted:
		return notice.KindError, "requests.notice.accept_failed"
	case err != nil:
		return notice.KindError, "requests.notice.reject_failed"
	case status == api.ReviewAccepted:
		return notice.KindSuccess, "requests.notice.accepted"
	default:
		return notice.KindError, "requests.notice.rejected"
	}
}
