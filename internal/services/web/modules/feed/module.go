package feed

import (
	"net/http"

	"github.com/devtinder/web/internal/services/web/module"
	"github.com/devtinder/web/internal/services/web/platform/modulehandler"
	"github.com/devtinder/web/internal/services/web/routepath"
)

// Module provides the candidate feed and its decision routes.
type Module struct {
	gateway FeedGateway
	base    modulehandler.Base
}

// New returns a feed module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a feed module with explicit gateway and handler dependencies.
func NewWithGateway(gateway FeedGateway, base modulehandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "feed" }

// Healthy reports whether the feed module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires feed route handlers. The feed doubles as the app landing page.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(m.gateway, m.base.Logger())
	h := newHandlers(svc, m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.FeedPrefix, Aliases: []string{routepath.AppRootPattern}, Handler: mux}, nil
}
