// Package auth serves sign-in, sign-up and sign-out.
package auth

import (
	"context"
	"net/http"

	"github.com/devtinder/web/internal/services/web/module"
	"github.com/devtinder/web/internal/services/web/platform/modulehandler"
	"github.com/devtinder/web/internal/services/web/routepath"
	"github.com/devtinder/web/internal/services/web/websession"
)

// Sessions creates and discards browser sessions.
type Sessions interface {
	Create(ctx context.Context) (*websession.Session, error)
	Discard(ctx context.Context, id string)
}

// Cookies writes and clears the browser session cookie.
type Cookies interface {
	Write(w http.ResponseWriter, r *http.Request, sessionID string) error
	Clear(w http.ResponseWriter, r *http.Request)
}

// Config holds the auth module dependencies.
type Config struct {
	Gateway  AuthGateway
	Sessions Sessions
	Cookies  Cookies
	// OnSignOut runs after a session signs out, before it is discarded.
	OnSignOut func(sessionID string)
	Base      modulehandler.Base
}

// Module serves the public sign-in and sign-up pages.
type Module struct {
	cfg Config
}

// New returns the public auth module.
func New(cfg Config) Module {
	return Module{cfg: cfg}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "auth" }

// Healthy reports whether sign-in can reach the API.
func (m Module) Healthy() bool { return configured(m.cfg) }

// Mount wires the login and signup routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.cfg))
	return module.Mount{Prefix: routepath.Login, Aliases: []string{routepath.Signup}, Handler: mux}, nil
}

// LogoutModule serves sign-out for signed-in sessions.
type LogoutModule struct {
	cfg Config
}

// NewLogout returns the protected sign-out module.
func NewLogout(cfg Config) LogoutModule {
	return LogoutModule{cfg: cfg}
}

// ID returns a stable module identifier.
func (LogoutModule) ID() string { return "logout" }

// Healthy reports whether sign-out can reach the API.
func (m LogoutModule) Healthy() bool { return configured(m.cfg) }

// Mount wires the logout route.
func (m LogoutModule) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerLogoutRoutes(mux, newHandlers(m.cfg))
	return module.Mount{Prefix: routepath.AppLogout, Handler: mux}, nil
}

func configured(cfg Config) bool {
	if cfg.Gateway == nil || cfg.Sessions == nil || cfg.Cookies == nil {
		return false
	}
	_, unavailable := cfg.Gateway.(unavailableGateway)
	return !unavailable
}
