package connections

import (
	"net/http"

	"github.com/devtinder/web/internal/services/web/module"
	"github.com/devtinder/web/internal/services/web/platform/modulehandler"
	"github.com/devtinder/web/internal/services/web/routepath"
)

// Module provides the accepted connections screen. It only reads the
// session store, so it needs no gateway.
type Module struct {
	base modulehandler.Base
}

// New returns a connections module.
func New(base modulehandler.Base) Module {
	return Module{base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "connections" }

// Healthy reports true: the screen reads the session store and has no
// gateway to lose.
func (Module) Healthy() bool { return true }

// Mount wires connections route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(), m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.AppConnections, Handler: mux}, nil
}
