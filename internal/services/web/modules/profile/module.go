package profile

import (
	"net/http"

	"github.com/devtinder/web/internal/services/web/module"
	"github.com/devtinder/web/internal/services/web/platform/modulehandler"
	"github.com/devtinder/web/internal/services/web/routepath"
)

// Module provides the signed-in user's profile editor.
type Module struct {
	gateway ProfileGateway
	base    modulehandler.Base
}

// New returns a profile module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a profile module with explicit gateway and handler dependencies.
func NewWithGateway(gateway ProfileGateway, base modulehandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "profile" }

// Healthy reports whether the profile module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires profile route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway, m.base.Logger()), m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.AppProfile, Handler: mux}, nil
}
