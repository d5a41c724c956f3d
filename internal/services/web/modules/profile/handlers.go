package profile

import (
	"net/http"

	"github.com/devtinder/web/internal/services/web/api"
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

func (h handlers) handleEdit(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.Session(r)
	user, err := h.service.current(sess)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.renderForm(w, r, http.StatusOK, formFromUser(user), "")
}

// handleSave keeps the submitted values on the page when saving fails.
func (h handlers) handleSave(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.Session(r)
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.E(apperrors.KindInvalidInput, "invalid form"))
		return
	}
	submitted := form{
		FirstName: r.PostFormValue("firstName"),
		LastName:  r.PostFormValue("lastName"),
		Age:       r.PostFormValue("age"),
		Gender:    r.PostFormValue("gender"),
		PhotoURL:  r.PostFormValue("photoUrl"),
		About:     r.PostFormValue("about"),
		Skills:    r.PostFormValue("skills"),
	}
	_, err := h.service.save(httpx.RequestContext(r), sess, submitted)
	loc, _ := h.PageLocalizer(w, r)
	switch {
	case err == nil:
		sess.Notices.Success(webtemplates.T(loc, "profile.notice.saved"))
		httpx.WriteRedirect(w, r, routepath.AppProfile)
	case apperrors.KindOf(err) == apperrors.KindUnauthorized:
		h.WriteError(w, r, err)
	case apperrors.KindOf(err) == apperrors.KindInvalidInput:
		h.renderForm(w, r, http.StatusBadRequest, submitted, modulehandler.ErrorMessage(loc, err))
	default:
		sess.Notices.Error(api.UserMessage(err, webtemplates.T(loc, "profile.error.failed")))
		h.renderForm(w, r, http.StatusOK, submitted, "")
	}
}

func (h handlers) renderForm(w http.ResponseWriter, r *http.Request, status int, f form, message string) {
	loc, tag := h.PageLocalizer(w, r)
	page := h.PageContext(w, r, loc, tag, webtemplates.T(loc, "title.profile"), webtemplates.NavProfile)
	page.Frozen = true
	h.WritePage(w, r, page, status, webtemplates.ProfileForm(loc, profileView(f, message)))
}
