package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

const testSessionCookie = "token"

// upstreamCall records one request observed by the fake API.
type upstreamCall struct {
	Method string
	Path   string
	Body   map[string]any
	Cookie string
}

// fakeUpstream is a minimal DevTinder API used to exercise the client.
type fakeUpstream struct {
	mu       sync.Mutex
	calls    []upstreamCall
	routes   map[string]http.HandlerFunc
	server   *httptest.Server
	loginSet bool
}

func newFakeUpstream(t *testing.T) *fakeUpstream {
	t.Helper()
	f := &fakeUpstream{routes: map[string]http.HandlerFunc{}}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeUpstream) handle(pattern string, handler http.HandlerFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[pattern] = handler
}

func (f *fakeUpstream) serve(w http.ResponseWriter, r *http.Request) {
	call := upstreamCall{Method: r.Method, Path: r.URL.Path}
	if cookie, err := r.Cookie(testSessionCookie); err == nil {
		call.Cookie = cookie.Value
	}
	if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
		_ = json.Unmarshal(raw, &call.Body)
	}
	f.mu.Lock()
	f.calls = append(f.calls, call)
	handler := f.routes[r.Method+" "+r.URL.Path]
	f.mu.Unlock()
	if handler == nil {
		http.NotFound(w, r)
		return
	}
	handler(w, r)
}

func (f *fakeUpstream) recorded() []upstreamCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]upstreamCall(nil), f.calls...)
}

func (f *fakeUpstream) client(t *testing.T) *Client {
	t.Helper()
	c, err := New(f.server.URL)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func writeBody(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func setSession(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{Name: testSessionCookie, Value: value, Path: "/", HttpOnly: true})
}
