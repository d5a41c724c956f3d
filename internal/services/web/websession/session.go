// Package websession keeps one state container per browser session: the
// upstream API client with its cookie jar, the client store and its sync
// controller, transient notices and in-flight action tracking.
package websession

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/devtinder/web/internal/services/web/api"
	"github.com/devtinder/web/internal/services/web/platform/notice"
	"github.com/devtinder/web/internal/services/web/store"
)

// Session is the server-side state of one browser session.
type Session struct {
	ID      string
	API     *api.Client
	Store   *store.Store
	Syncer  *store.Syncer
	Notices *notice.Center
	Actions *Inflight

	lastSeen    atomic.Int64
	unsubscribe func()
}

type sessionContextKey struct{}

// WithSession attaches sess to ctx.
func WithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, sess)
}

// FromContext returns the session attached by WithSession.
func FromContext(ctx context.Context) (*Session, bool) {
	if ctx == nil {
		return nil, false
	}
	sess, ok := ctx.Value(sessionContextKey{}).(*Session)
	return sess, ok && sess != nil
}

// SignedIn reports whether the session has a user.
func (s *Session) SignedIn() bool {
	return s != nil && s.Store != nil && s.Store.Session().Present()
}

// LastSeen returns when the session was last resolved.
func (s *Session) LastSeen() time.Time {
	return time.UnixMilli(s.lastSeen.Load())
}

func (s *Session) touch(now time.Time) {
	s.lastSeen.Store(now.UnixMilli())
}

func (s *Session) close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	if s.Notices != nil {
		s.Notices.Close()
	}
}
