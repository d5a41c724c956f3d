// Package events streams store and notice changes to open tabs.
package events

import (
	"net/http"

	"github.com/devtinder/web/internal/services/web/module"
	apperrors "github.com/devtinder/web/internal/services/web/platform/errors"
	"github.com/devtinder/web/internal/services/web/platform/httpx"
	"github.com/devtinder/web/internal/services/web/platform/modulehandler"
	"github.com/devtinder/web/internal/services/web/routepath"
	"github.com/devtinder/web/internal/services/web/websession"
)

// Streamer upgrades a request into a live event stream for sess.
type Streamer interface {
	Serve(w http.ResponseWriter, r *http.Request, sess *websession.Session)
}

// Module serves the live event socket.
type Module struct {
	streamer Streamer
	base     modulehandler.Base
}

// New returns an events module backed by streamer.
func New(streamer Streamer, base modulehandler.Base) Module {
	return Module{streamer: streamer, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "events" }

// Healthy reports whether a streamer is configured.
func (m Module) Healthy() bool { return m.streamer != nil }

// Mount wires the event socket route.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.AppEvents, m.handleEvents)
	return module.Mount{Prefix: routepath.AppEvents, Handler: mux}, nil
}

func (m Module) handleEvents(w http.ResponseWriter, r *http.Request) {
	sess, _ := m.base.Session(r)
	if !sess.SignedIn() {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnauthorized, "sign in to receive live updates"))
		return
	}
	if m.streamer == nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "live updates are unavailable"))
		return
	}
	m.streamer.Serve(w, r, sess)
}
