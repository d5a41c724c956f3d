// Package web hosts the DevTinder browser-facing server.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/devtinder/web/internal/platform/timeouts"
	"github.com/devtinder/web/internal/services/web/app"
	"github.com/devtinder/web/internal/services/web/live"
	"github.com/devtinder/web/internal/services/web/modules"
	"github.com/devtinder/web/internal/services/web/platform/httpx"
	"github.com/devtinder/web/internal/services/web/platform/modulehandler"
	"github.com/devtinder/web/internal/services/web/platform/observability"
	"github.com/devtinder/web/internal/services/web/platform/requestmeta"
	"github.com/devtinder/web/internal/services/web/platform/sessioncookie"
	"github.com/devtinder/web/internal/services/web/static"
	"github.com/devtinder/web/internal/services/web/storage"
	"github.com/devtinder/web/internal/services/web/storage/sqlite"
	"github.com/devtinder/web/internal/services/web/websession"
)

// Config defines the inputs for the web server.
type Config struct {
	// HTTPAddr is the address the browser-facing server listens on.
	HTTPAddr string
	// APIBaseURL is the DevTinder API root every session talks to.
	APIBaseURL string
	// SessionSecret signs the browser session cookie.
	SessionSecret []byte
	// DBPath persists browser sessions in SQLite when set.
	DBPath string
	// Policy controls how request scheme is resolved for cookies and
	// same-origin checks.
	Policy requestmeta.SchemePolicy
	Logger *log.Logger
	// Transport overrides the upstream HTTP transport, mostly for tests.
	Transport http.RoundTripper
}

// Handler is the composed root handler and the resources it owns.
type Handler struct {
	http.Handler

	registry *websession.Registry
	hub      *live.Hub
	store    storage.SessionStore
	logger   *log.Logger
	cancel   context.CancelFunc
}

// NewHandler wires sessions, modules and middleware into a root handler.
func NewHandler(config Config) (*Handler, error) {
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}
	if len(config.SessionSecret) == 0 {
		return nil, errors.New("session secret is required")
	}

	var persistence storage.SessionStore
	if path := strings.TrimSpace(config.DBPath); path != "" {
		st, err := sqlite.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open session store: %w", err)
		}
		persistence = st
	}

	ctx, cancel := context.WithCancel(context.Background())
	registry, err := websession.NewRegistry(websession.Config{
		APIBaseURL:  config.APIBaseURL,
		Transport:   config.Transport,
		Persistence: persistence,
		Logger:      logger,
		Context:     ctx,
	})
	if err != nil {
		cancel()
		closeStore(persistence, logger)
		return nil, err
	}

	codec, err := sessioncookie.NewCodec(config.SessionSecret, sessioncookie.WithPolicy(config.Policy))
	if err != nil {
		cancel()
		registry.Close()
		closeStore(persistence, logger)
		return nil, err
	}

	hub := live.NewHub(live.WithLogger(logger), live.WithPolicy(config.Policy))
	base := modulehandler.NewBase(config.Policy, logger)
	deps := modules.Dependencies{
		Sessions: registry,
		Cookies:  codec,
		Hub:      hub,
		Base:     base,
	}
	root, err := app.Compose(app.ComposeInput{
		PublicModules:       modules.DefaultPublicModules(deps),
		ProtectedModules:    modules.DefaultProtectedModules(deps),
		Sessions:            registry,
		Cookies:             codec,
		RequestSchemePolicy: config.Policy,
		Base:                base,
		Static:              static.FS,
	})
	if err != nil {
		cancel()
		hub.Close()
		registry.Close()
		closeStore(persistence, logger)
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	h := &Handler{
		Handler: httpx.Chain(root,
			httpx.RequestID(),
			httpx.RecoverPanic(),
			observability.RequestLogger(logger),
		),
		registry: registry,
		hub:      hub,
		store:    persistence,
		logger:   logger,
		cancel:   cancel,
	}
	go h.pruneLoop(ctx, timeouts.SessionPrune)
	return h, nil
}

// pruneLoop discards idle sessions until ctx ends.
func (h *Handler) pruneLoop(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := h.registry.Prune(ctx, timeouts.SessionIdle); n > 0 {
				h.logger.Printf("web sessions pruned count=%d", n)
			}
		}
	}
}

// Close stops background work and releases session resources.
func (h *Handler) Close() {
	if h == nil {
		return
	}
	h.cancel()
	h.hub.Close()
	h.registry.Close()
	closeStore(h.store, h.logger)
}

func closeStore(st storage.SessionStore, logger *log.Logger) {
	if st == nil {
		return
	}
	if err := st.Close(); err != nil {
		logger.Printf("close session store: %v", err)
	}
}

// Server hosts the web handler.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	handler    *Handler
	logger     *log.Logger
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if strings.TrimSpace(config.APIBaseURL) == "" {
		return nil, errors.New("api base url is required")
	}
	handler, err := NewHandler(config)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		handler: handler,
		logger:  handler.logger,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		// Websockets are hijacked and ignored by Shutdown.
		s.handler.hub.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the session registry, live hub and session store.
func (s *Server) Close() {
	if s == nil {
		return
	}
	s.handler.Close()
}
