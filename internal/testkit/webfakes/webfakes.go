// Package webfakes provides in-memory stand-ins for web module tests: a fake
// DevTinder upstream, a manual notice clock and session builders.
package webfakes

import (
	"context"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/devtinder/web/internal/services/web/api"
	"github.com/devtinder/web/internal/services/web/platform/notice"
	"github.com/devtinder/web/internal/services/web/store"
	"github.com/devtinder/web/internal/services/web/websession"
)

// BaseURL is the upstream root used with Upstream.
const BaseURL = "http://devtinder.test"

// Upstream is an http.RoundTripper answering canned responses keyed by
// "METHOD /path". Unmatched requests get 503.
type Upstream struct {
	mu        sync.Mutex
	responses map[string]response
	calls     []string
}

type response struct {
	status int
	body   string
	header http.Header
}

// NewUpstream returns an upstream with no canned responses.
func NewUpstream() *Upstream {
	return &Upstream{responses: map[string]response{}}
}

// Set registers the response for method and path.
func (u *Upstream) Set(method string, path string, status int, body string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.responses[method+" "+path] = response{status: status, body: body}
}

// SetCookie registers a response that also sets an upstream cookie.
func (u *Upstream) SetCookie(method string, path string, status int, body string, cookie string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.responses[method+" "+path] = response{status: status, body: body, header: http.Header{"Set-Cookie": {cookie}}}
}

// EmptyLists answers the three list endpoints with empty collections.
func (u *Upstream) EmptyLists() {
	u.Set(http.MethodGet, "/user/feed", http.StatusOK, `{"FEED":[]}`)
	u.Set(http.MethodGet, "/user/connections", http.StatusOK, `{"data":[]}`)
	u.Set(http.MethodGet, "/user/requests/pending", http.StatusOK, `{"data":[]}`)
}

// RoundTrip implements http.RoundTripper.
func (u *Upstream) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Body != nil {
		_ = req.Body.Close()
	}
	key := req.Method + " " + req.URL.Path
	u.mu.Lock()
	u.calls = append(u.calls, key)
	resp, ok := u.responses[key]
	u.mu.Unlock()
	if !ok {
		resp = response{status: http.StatusServiceUnavailable, body: `{"message":"unavailable"}`}
	}
	header := http.Header{"Content-Type": {"application/json"}}
	for name, values := range resp.header {
		header[name] = append([]string(nil), values...)
	}
	return &http.Response{
		StatusCode: resp.status,
		Status:     http.StatusText(resp.status),
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(resp.body)),
		Request:    req,
	}, nil
}

// Calls returns the requests seen so far.
func (u *Upstream) Calls() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.calls...)
}

// Called counts requests for method and path.
func (u *Upstream) Called(method string, path string) int {
	key := method + " " + path
	n := 0
	for _, call := range u.Calls() {
		if call == key {
			n++
		}
	}
	return n
}

// Clock is a manual notice timer source.
type Clock struct {
	mu     sync.Mutex
	timers []*timer
}

type timer struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

func (t *timer) Stop() bool {
	wasActive := !t.stopped
	t.stopped = true
	return wasActive
}

// AfterFunc implements notice.AfterFunc.
func (c *Clock) AfterFunc(d time.Duration, fn func()) notice.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &timer{delay: d, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Delays returns the delay of every timer scheduled so far.
func (c *Clock) Delays() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]time.Duration, 0, len(c.timers))
	for _, t := range c.timers {
		out = append(out, t.delay)
	}
	return out
}

// Fire runs every pending timer and returns how many ran.
func (c *Clock) Fire() int {
	c.mu.Lock()
	pending := make([]*timer, 0, len(c.timers))
	for _, t := range c.timers {
		if !t.stopped {
			t.stopped = true
			pending = append(pending, t)
		}
	}
	c.mu.Unlock()
	for _, t := range pending {
		t.fn()
	}
	return len(pending)
}

// Discard is a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// NewRegistry builds a session registry talking to upstream.
func NewRegistry(t testing.TB, upstream *Upstream, clock *Clock) *websession.Registry {
	t.Helper()
	cfg := websession.Config{
		APIBaseURL: BaseURL,
		Transport:  upstream,
		Logger:     Discard(),
		Context:    context.Background(),
	}
	if clock != nil {
		cfg.NoticeAfterFunc = clock.AfterFunc
	}
	registry, err := websession.NewRegistry(cfg)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	t.Cleanup(registry.Close)
	return registry
}

// NewSession creates a session in registry, signed in as user when non-nil,
// and waits for the resulting sync round.
func NewSession(t testing.TB, registry *websession.Registry, user *api.User) *websession.Session {
	t.Helper()
	sess, err := registry.Create(context.Background())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if user != nil {
		sess.Store.SetUser(*user)
		sess.Syncer.Wait()
	}
	return sess
}

// Seed populates resource with items, superseding any fetch in flight.
func Seed[T any](resource *store.Resource[T], items ...T) {
	resource.Apply(resource.Begin(), items)
}

// WithSession attaches sess to r.
func WithSession(r *http.Request, sess *websession.Session) *http.Request {
	return r.WithContext(websession.WithSession(r.Context(), sess))
}
