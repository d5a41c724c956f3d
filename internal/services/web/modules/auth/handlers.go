package auth

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/devtinder/web/internal/services/web/api"
	apperrors "github.com/devtinder/web/internal/services/web/platform/errors"
	"github.com/devtinder/web/internal/services/web/platform/flash"
	"github.com/devtinder/web/internal/services/web/platform/httpx"
	"github.com/devtinder/web/internal/services/web/platform/modulehandler"
	"github.com/devtinder/web/internal/services/web/routepath"
	webtemplates "github.com/devtinder/web/internal/services/web/templates"
	"github.com/devtinder/web/internal/services/web/websession"
)

type handlers struct {
	modulehandler.Base
	service service
	cookies Cookies
}

func newHandlers(cfg Config) handlers {
	return handlers{Base: cfg.Base, service: newService(cfg), cookies: cfg.Cookies}
}

func (h handlers) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if h.redirectSignedIn(w, r) {
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	h.renderAuth(w, r, http.StatusOK, "title.login", webtemplates.LoginForm(loc, webtemplates.LoginView{}))
}

func (h handlers) handleSignupPage(w http.ResponseWriter, r *http.Request) {
	if h.redirectSignedIn(w, r) {
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	h.renderAuth(w, r, http.StatusOK, "title.signup", webtemplates.SignupForm(loc, webtemplates.SignupView{}))
}

func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	creds := api.Credentials{
		EmailID:  strings.TrimSpace(r.PostFormValue("emailID")),
		Password: r.PostFormValue("password"),
	}
	sess, _ := h.Session(r)
	signedIn, err := h.service.login(httpx.RequestContext(r), sess, creds)
	if err != nil {
		loc, _ := h.PageLocalizer(w, r)
		view := webtemplates.LoginView{Email: creds.EmailID, Error: failureMessage(loc, err)}
		h.renderAuth(w, r, apperrors.HTTPStatus(err), "title.login", webtemplates.LoginForm(loc, view))
		return
	}
	h.finishSignIn(w, r, signedIn, routepath.AppPrefix)
}

// handleSignup lands new users on their profile so they can fill it in.
func (h handlers) handleSignup(w http.ResponseWriter, r *http.Request) {
	signup := api.Signup{
		EmailID:   strings.TrimSpace(r.PostFormValue("emailID")),
		Password:  r.PostFormValue("password"),
		FirstName: strings.TrimSpace(r.PostFormValue("firstName")),
		LastName:  strings.TrimSpace(r.PostFormValue("lastName")),
	}
	sess, _ := h.Session(r)
	signedIn, err := h.service.signup(httpx.RequestContext(r), sess, signup)
	if err != nil {
		loc, _ := h.PageLocalizer(w, r)
		view := webtemplates.SignupView{Email: signup.EmailID, FirstName: signup.FirstName, LastName: signup.LastName, Error: failureMessage(loc, err)}
		h.renderAuth(w, r, apperrors.HTTPStatus(err), "title.signup", webtemplates.SignupForm(loc, view))
		return
	}
	h.finishSignIn(w, r, signedIn, routepath.AppProfile)
}

// handleLogout keeps the session signed in when the API refuses, and says so.
func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.Session(r)
	err := h.service.logout(httpx.RequestContext(r), sess)
	switch {
	case err == nil:
		if h.cookies != nil {
			h.cookies.Clear(w, r)
		}
		flash.Write(w, r, h.Policy(), flash.Info("auth.notice.signed_out"))
		httpx.WriteRedirect(w, r, routepath.Login)
	case apperrors.KindOf(err) == apperrors.KindUnauthorized:
		httpx.WriteRedirect(w, r, routepath.Login)
	default:
		loc, _ := h.PageLocalizer(w, r)
		sess.Notices.Error(webtemplates.T(loc, "auth.error.logout_failed"))
		httpx.WriteRedirect(w, r, routepath.AppPrefix)
	}
}

func (h handlers) finishSignIn(w http.ResponseWriter, r *http.Request, sess *websession.Session, target string) {
	if h.cookies == nil {
		h.WriteError(w, r, errUnavailable)
		return
	}
	if err := h.cookies.Write(w, r, sess.ID); err != nil {
		h.WriteError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, target)
}

func (h handlers) redirectSignedIn(w http.ResponseWriter, r *http.Request) bool {
	sess, _ := h.Session(r)
	if !sess.SignedIn() {
		return false
	}
	httpx.WriteRedirect(w, r, routepath.AppPrefix)
	return true
}

func (h handlers) renderAuth(w http.ResponseWriter, r *http.Request, status int, titleKey string, body templ.Component) {
	loc, tag := h.PageLocalizer(w, r)
	page := h.PageContext(w, r, loc, tag, webtemplates.T(loc, titleKey), "")
	h.WritePage(w, r, page, status, body)
}

// failureMessage prefers local validation text, then the API's own message.
func failureMessage(loc webtemplates.Localizer, err error) string {
	if key := apperrors.LocalizationKey(err); key != "" {
		return webtemplates.T(loc, key)
	}
	return api.UserMessage(err, webtemplates.T(loc, "auth.error.failed"))
}
