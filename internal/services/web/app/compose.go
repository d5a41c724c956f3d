// Package app composes web modules into the root HTTP handler.
package app

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	module "github.com/devtinder/web/internal/services/web/module"
	"github.com/devtinder/web/internal/services/web/platform/flash"
	"github.com/devtinder/web/internal/services/web/platform/httpx"
	"github.com/devtinder/web/internal/services/web/platform/modulehandler"
	"github.com/devtinder/web/internal/services/web/platform/requestmeta"
	"github.com/devtinder/web/internal/services/web/routepath"
	"github.com/devtinder/web/internal/services/web/websession"
)

const defaultLoginPath = routepath.Login

// SessionLookup resolves a browser session by id.
type SessionLookup interface {
	Lookup(ctx context.Context, id string) (*websession.Session, bool)
}

// CookieReader reads the session id carried by a request.
type CookieReader interface {
	Read(r *http.Request) (string, bool)
}

// ComposeInput carries module groups and shared composition contracts.
type ComposeInput struct {
	PublicModules       []module.Module
	ProtectedModules    []module.Module
	Sessions            SessionLookup
	Cookies             CookieReader
	RequestSchemePolicy requestmeta.SchemePolicy
	// Base renders the fallback error pages.
	Base   modulehandler.Base
	Static fs.FS
}

// Compose builds a root HTTP handler from module groups. Every request
// carries its browser session, when one exists, in its context.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)
	var reporters []healthEntry

	for _, feature := range input.PublicModules {
		if feature == nil {
			return nil, fmt.Errorf("public module is nil")
		}
		if err := mountPublicModule(root, feature, seen); err != nil {
			return nil, err
		}
		reporters = appendHealth(reporters, feature)
	}

	protect := wrapProtectedModule(input.RequestSchemePolicy)
	for _, feature := range input.ProtectedModules {
		if feature == nil {
			return nil, fmt.Errorf("protected module is nil")
		}
		if err := mountProtectedModule(root, feature, seen, protect); err != nil {
			return nil, err
		}
		reporters = appendHealth(reporters, feature)
	}

	base := input.Base
	root.Handle(routepath.AppPrefix, protect(http.HandlerFunc(base.WriteNotFound)))
	root.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteRedirect(w, r, routepath.AppPrefix)
	})
	root.HandleFunc(routepath.Root, base.WriteNotFound)
	root.Handle(http.MethodGet+" "+routepath.Health, healthHandler(reporters))
	if input.Static != nil {
		root.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(input.Static))))
	}

	return attachSession(input.Cookies, input.Sessions)(root), nil
}

func mountModule(
	root *http.ServeMux,
	feature module.Module,
	mount module.Mount,
	seen map[string]string,
	wrap func(http.Handler) http.Handler,
) error {
	if root == nil || feature == nil {
		return nil
	}
	handler := mount.Handler
	if wrap != nil {
		handler = wrap(handler)
	}
	for _, pattern := range mount.Patterns() {
		if previous, ok := seen[pattern]; ok {
			return fmt.Errorf("module %q duplicates pattern %q owned by module %q", feature.ID(), pattern, previous)
		}
		seen[pattern] = feature.ID()
		root.Handle(pattern, handler)
	}
	return nil
}

func mountPublicModule(root *http.ServeMux, feature module.Module, seen map[string]string) error {
	mount, err := resolveMount(feature)
	if err != nil {
		return err
	}
	for _, pattern := range mount.Patterns() {
		if isProtectedPattern(pattern) {
			return fmt.Errorf("module %q has protected pattern %q in public group", feature.ID(), pattern)
		}
	}
	return mountModule(root, feature, mount, seen, nil)
}

func mountProtectedModule(root *http.ServeMux, feature module.Module, seen map[string]string, wrap func(http.Handler) http.Handler) error {
	mount, err := resolveMount(feature)
	if err != nil {
		return err
	}
	for _, pattern := range mount.Patterns() {
		if !isProtectedPattern(pattern) {
			return fmt.Errorf("module %q must mount under /app/, got %q", feature.ID(), pattern)
		}
	}
	return mountModule(root, feature, mount, seen, wrap)
}

func isProtectedPattern(pattern string) bool {
	return strings.HasPrefix(pattern, routepath.AppPrefix)
}

func resolveMount(feature module.Module) (module.Mount, error) {
	if feature == nil {
		return module.Mount{}, fmt.Errorf("module is nil")
	}
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if mount.Prefix == "" {
		return module.Mount{}, fmt.Errorf("mount module %q: prefix is required", feature.ID())
	}
	for _, pattern := range mount.Patterns() {
		if err := validatePattern(pattern); err != nil {
			return module.Mount{}, fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), pattern, err)
		}
	}
	if mount.Handler == nil {
		return module.Mount{}, fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, nil
}

func validatePattern(pattern string) error {
	if strings.TrimSpace(pattern) != pattern {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(pattern, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	return nil
}

// attachSession resolves the session cookie once per request.
func attachSession(cookies CookieReader, sessions SessionLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if cookies == nil || sessions == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := cookies.Read(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			sess, ok := sessions.Lookup(r.Context(), id)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(websession.WithSession(r.Context(), sess)))
		})
	}
}

// requireSignedIn sends visitors without a signed-in session to the login
// page. A session that lost its user upstream is told why.
func requireSignedIn(policy requestmeta.SchemePolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			return http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := websession.FromContext(r.Context())
			if sess.SignedIn() {
				next.ServeHTTP(w, r)
				return
			}
			if ok {
				flash.Write(w, r, policy, flash.Info("auth.notice.session_expired"))
			}
			httpx.WriteRedirect(w, r, defaultLoginPath)
		})
	}
}

func wrapProtectedModule(policy requestmeta.SchemePolicy) func(http.Handler) http.Handler {
	authWrap := requireSignedIn(policy)
	csrfWrap := httpx.SameOrigin(policy)
	return func(next http.Handler) http.Handler {
		return authWrap(csrfWrap(next))
	}
}
