package storage

import (
	"context"
	"net/http"
	"time"

	"github.com/devtinder/web/internal/services/web/api"
)

// SessionRecord is the persisted part of one browser session.
type SessionRecord struct {
	SessionID string
	Cookies   []*http.Cookie
	User      *api.User
	UpdatedAt time.Time
}

// SessionStore persists browser-session records.
type SessionStore interface {
	Close() error
	GetSession(ctx context.Context, sessionID string) (SessionRecord, bool, error)
	PutSession(ctx context.Context, record SessionRecord) error
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteSessionsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
