package websession

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/devtinder/web/internal/services/web/storage"
)

// fakeAPI serves the upstream endpoints the sync controller calls.
type fakeAPI struct {
	mu          sync.Mutex
	server      *httptest.Server
	feedStatus  int
	feedCookies []string
	loginCookie string
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	f := &fakeAPI{feedStatus: http.StatusOK, loginCookie: "jwt-1"}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		f.mu.Lock()
		value := f.loginCookie
		f.mu.Unlock()
		http.SetCookie(w, &http.Cookie{Name: "token", Value: value, Path: "/"})
		writeJSON(w, http.StatusOK, `{"user":{"_id":"u1","firstName":"Ada","emailID":"ada@example.com"}}`)
	})
	mux.HandleFunc("GET /user/feed", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		if c, err := r.Cookie("token"); err == nil {
			f.feedCookies = append(f.feedCookies, c.Value)
		} else {
			f.feedCookies = append(f.feedCookies, "")
		}
		status := f.feedStatus
		f.mu.Unlock()
		if status != http.StatusOK {
			writeJSON(w, status, `{"message":"Please Login!"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"FEED":[{"_id":"c1","firstName":"Grace"}]}`)
	})
	mux.HandleFunc("GET /user/connections", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"data":[]}`)
	})
	mux.HandleFunc("GET /user/requests/pending", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"data":[{"_id":"r1","fromUserId":{"_id":"u9","firstName":"Linus"}}]}`)
	})
	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeAPI) setFeedStatus(status int) {
	f.mu.Lock()
	f.feedStatus = status
	f.mu.Unlock()
}

func (f *fakeAPI) feedCookieValues() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.feedCookies...)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// memoryStore is an in-memory storage.SessionStore.
type memoryStore struct {
	mu      sync.Mutex
	records map[string]storage.SessionRecord
	puts    int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{records: map[string]storage.SessionRecord{}}
}

func (m *memoryStore) Close() error { return nil }

func (m *memoryStore) GetSession(_ context.Context, id string) (storage.SessionRecord, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[id]
	return record, ok, nil
}

func (m *memoryStore) PutSession(_ context.Context, record storage.SessionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.SessionID] = record
	m.puts++
	return nil
}

func (m *memoryStore) DeleteSession(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, id)
	return nil
}

func (m *memoryStore) DeleteSessionsBefore(_ context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, record := range m.records {
		if record.UpdatedAt.Before(cutoff) {
			delete(m.records, id)
			n++
		}
	}
	return n, nil
}

func (m *memoryStore) record(id string) (storage.SessionRecord, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[id]
	return record, ok
}

func testRegistry(t *testing.T, upstream *fakeAPI, persistence storage.SessionStore) (*Registry, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	cfg := Config{
		APIBaseURL: upstream.server.URL,
		Logger:     log.New(&logs, "", 0),
	}
	if persistence != nil {
		cfg.Persistence = persistence
	}
	registry, err := NewRegistry(cfg)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	t.Cleanup(registry.Close)
	return registry, &logs
}
