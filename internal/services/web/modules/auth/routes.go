package auth

import (
	"net/http"

	"github.com/devtinder/web/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Login, h.handleLoginPage)
	mux.HandleFunc(http.MethodPost+" "+routepath.Login, h.handleLogin)
	mux.HandleFunc(http.MethodGet+" "+routepath.Signup, h.handleSignupPage)
	mux.HandleFunc(http.MethodPost+" "+routepath.Signup, h.handleSignup)
}

func registerLogoutRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodPost+" "+routepath.AppLogout, h.handleLogout)
}
