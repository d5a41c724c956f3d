package websession

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/devtinder/web/internal/services/web/api"
	"github.com/devtinder/web/internal/services/web/platform/notice"
	"github.com/devtinder/web/internal/services/web/storage"
	"github.com/devtinder/web/internal/services/web/store"
)

// Config configures a Registry.
type Config struct {
	// APIBaseURL is the DevTinder API root.
	APIBaseURL string
	// Transport overrides the upstream HTTP transport.
	Transport http.RoundTripper
	// Persistence keeps session records across restarts when set.
	Persistence storage.SessionStore
	Logger      *log.Logger
	// Context bounds background fetches started by sync controllers.
	Context context.Context
	// NoticeAfterFunc overrides the notice dismissal timer.
	NoticeAfterFunc notice.AfterFunc
	Now             func() time.Time
}

// Registry owns every live browser session.
type Registry struct {
	cfg Config

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry validates cfg and returns an empty registry.
func NewRegistry(cfg Config) (*Registry, error) {
	cfg.APIBaseURL = strings.TrimSpace(cfg.APIBaseURL)
	if _, err := api.New(cfg.APIBaseURL); err != nil {
		return nil, fmt.Errorf("api base url: %w", err)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Registry{cfg: cfg, sessions: map[string]*Session{}}, nil
}

// Create starts a signed-out session with a fresh id.
func (r *Registry) Create(ctx context.Context) (*Session, error) {
	sess, err := r.newSession(uuid.NewString())
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.sessions[sess.ID] = sess
	r.mu.Unlock()
	r.persist(ctx, sess)
	return sess, nil
}

// Lookup returns the session with id, restoring it from persistence when it
// is not in memory.
func (r *Registry) Lookup(ctx context.Context, id string) (*Session, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, false
	}
	r.mu.Lock()
	sess, ok := r.sessions[id]
	r.mu.Unlock()
	if ok {
		sess.touch(r.cfg.Now())
		return sess, true
	}
	return r.restore(ctx, id)
}

// Discard drops the session and its persisted record.
func (r *Registry) Discard(ctx context.Context, id string) {
	r.mu.Lock()
	sess, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if ok {
		sess.close()
	}
	if r.cfg.Persistence == nil {
		return
	}
	if err := r.cfg.Persistence.DeleteSession(ctx, id); err != nil {
		r.cfg.Logger.Printf("web session delete failed session_id=%s err=%v", id, err)
	}
}

// Persist writes the current upstream cookies and user of sess.
func (r *Registry) Persist(ctx context.Context, sess *Session) {
	r.persist(ctx, sess)
}

// Prune discards sessions idle for longer than maxIdle.
func (r *Registry) Prune(ctx context.Context, maxIdle time.Duration) int {
	cutoff := r.cfg.Now().Add(-maxIdle)
	r.mu.Lock()
	var stale []string
	for id, sess := range r.sessions {
		if sess.LastSeen().Before(cutoff) {
			stale = append(stale, id)
		}
	}
	r.mu.Unlock()
	for _, id := range stale {
		r.Discard(ctx, id)
	}
	if r.cfg.Persistence != nil {
		if _, err := r.cfg.Persistence.DeleteSessionsBefore(ctx, cutoff); err != nil {
			r.cfg.Logger.Printf("web session prune failed err=%v", err)
		}
	}
	return len(stale)
}

// Len returns the number of sessions in memory.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Close drops every in-memory session. Persisted records are kept.
func (r *Registry) Close() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = map[string]*Session{}
	r.mu.Unlock()
	for _, sess := range sessions {
		sess.close()
	}
}

func (r *Registry) restore(ctx context.Context, id string) (*Session, bool) {
	if r.cfg.Persistence == nil {
		return nil, false
	}
	record, ok, err := r.cfg.Persistence.GetSession(ctx, id)
	if err != nil {
		r.cfg.Logger.Printf("web session restore failed session_id=%s err=%v", id, err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	sess, err := r.newSession(record.SessionID)
	if err != nil {
		r.cfg.Logger.Printf("web session restore failed session_id=%s err=%v", id, err)
		return nil, false
	}
	sess.API.SetCookies(record.Cookies)

	r.mu.Lock()
	if existing, ok := r.sessions[id]; ok {
		r.mu.Unlock()
		sess.close()
		return existing, true
	}
	r.sessions[id] = sess
	r.mu.Unlock()

	if record.User != nil {
		sess.Store.SetUser(*record.User)
	}
	r.cfg.Logger.Printf("web session restored session_id=%s signed_in=%t", id, record.User != nil)
	return sess, true
}

func (r *Registry) newSession(id string) (*Session, error) {
	var opts []api.Option
	if r.cfg.Transport != nil {
		opts = append(opts, api.WithTransport(r.cfg.Transport))
	}
	client, err := api.New(r.cfg.APIBaseURL, opts...)
	if err != nil {
		return nil, err
	}

	st := store.New()
	syncer := store.NewSyncer(st, []store.Binding{
		store.Bind(st.Feed, client.Feed),
		store.Bind(st.Connections, client.Connections),
		store.Bind(st.Requests, client.PendingRequests),
	},
		store.WithLogger(r.cfg.Logger),
		store.WithContext(r.cfg.Context),
		store.OnUnauthorized(func(identity string) {
			if st.ClearUserIf(identity) {
				r.cfg.Logger.Printf("web session expired upstream session_id=%s identity=%s", id, identity)
			}
		}),
	)

	var noticeOpts []notice.Option
	if r.cfg.NoticeAfterFunc != nil {
		noticeOpts = append(noticeOpts, notice.WithAfterFunc(r.cfg.NoticeAfterFunc))
	}

	sess := &Session{
		ID:      id,
		API:     client,
		Store:   st,
		Syncer:  syncer,
		Notices: notice.NewCenter(noticeOpts...),
		Actions: &Inflight{},
	}
	sess.touch(r.cfg.Now())
	sess.unsubscribe = st.Subscribe(func(change store.Change) {
		if change.Resource == store.ResourceSession {
			r.persist(r.cfg.Context, sess)
		}
	})
	return sess, nil
}

func (r *Registry) persist(ctx context.Context, sess *Session) {
	if r.cfg.Persistence == nil || sess == nil {
		return
	}
	record := storage.SessionRecord{
		SessionID: sess.ID,
		Cookies:   sess.API.Cookies(),
		UpdatedAt: r.cfg.Now().UTC(),
	}
	if user, ok := sess.Store.Session().User(); ok {
		record.User = &user
	}
	if err := r.cfg.Persistence.PutSession(ctx, record); err != nil {
		r.cfg.Logger.Printf("web session persist failed session_id=%s err=%v", sess.ID, err)
	}
}
