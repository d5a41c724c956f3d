package requests

import (
	"net/http"

	"github.com/devtinder/web/internal/services/web/module"
	"github.com/devtinder/web/internal/services/web/platform/modulehandler"
	"github.com/devtinder/web/internal/services/web/routepath"
)

// Module provides pending connection requests and their review routes.
type Module struct {
	gateway RequestGateway
	base    modulehandler.Base
}

// New returns a requests module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a requests module with explicit gateway and handler dependencies.
func NewWithGateway(gateway RequestGateway, base modulehandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "requests" }

// Healthy reports whether the requests module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires request route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(m.gateway, m.base.Logger())
	h := newHandlers(svc, m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.RequestsPrefix, Aliases: []string{routepath.AppRequests}, Handler: mux}, nil
}
