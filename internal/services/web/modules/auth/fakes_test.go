package auth

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/devtinder/web/internal/services/web/platform/modulehandler"
	"github.com/devtinder/web/internal/services/web/platform/requestmeta"
	"github.com/devtinder/web/internal/services/web/platform/sessioncookie"
	"github.com/devtinder/web/internal/services/web/websession"
	"github.com/devtinder/web/internal/testkit/webfakes"
)

const loginBody = `{"message":"Logged in","user":{"_id":"u1","firstName":"Ada","emailID":"ada@example.com"}}`

type fixture struct {
	upstream *webfakes.Upstream
	registry *websession.Registry
	codec    *sessioncookie.Codec
	cfg      Config

	mu        sync.Mutex
	signedOut []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	upstream := webfakes.NewUpstream()
	upstream.EmptyLists()
	codec, err := sessioncookie.NewCodec([]byte("test-secret"))
	if err != nil {
		t.Fatalf("NewCodec() error = %v", err)
	}
	f := &fixture{
		upstream: upstream,
		registry: webfakes.NewRegistry(t, upstream, &webfakes.Clock{}),
		codec:    codec,
	}
	f.cfg = Config{
		Gateway:  NewAPIGateway(),
		Sessions: f.registry,
		Cookies:  codec,
		OnSignOut: func(id string) {
			f.mu.Lock()
			f.signedOut = append(f.signedOut, id)
			f.mu.Unlock()
		},
		Base: modulehandler.NewBase(requestmeta.SchemePolicy{}, webfakes.Discard()),
	}
	return f
}

func (f *fixture) serve(t *testing.T, r *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	mux := http.NewServeMux()
	h := newHandlers(f.cfg)
	registerRoutes(mux, h)
	registerLogoutRoutes(mux, h)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, r)
	return rr
}

// sessionFromCookie resolves the session named by the response cookie and
// waits for its first sync round.
func (f *fixture) sessionFromCookie(t *testing.T, rr *httptest.ResponseRecorder) *websession.Session {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rr.Result().Cookies() {
		req.AddCookie(cookie)
	}
	id, ok := f.codec.Read(req)
	if !ok {
		t.Fatal("response carries no valid session cookie")
	}
	sess, ok := f.registry.Lookup(req.Context(), id)
	if !ok {
		t.Fatalf("session %q not in registry", id)
	}
	sess.Syncer.Wait()
	return sess
}

func (f *fixture) signOuts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.signedOut...)
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func findCookie(rr *httptest.ResponseRecorder, name string) (*http.Cookie, bool) {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == name {
			return cookie, true
		}
	}
	return nil, false
}

func newRecorder(h http.Handler, method string, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, path, nil))
	return rr
}
