package websession

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/devtinder/web/internal/services/web/api"
	"github.com/devtinder/web/internal/services/web/store"
)

func signIn(t *testing.T, sess *Session) {
	t.Helper()
	user, err := sess.API.Login(context.Background(), api.Credentials{EmailID: "ada@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	sess.Store.SetUser(user)
	sess.Syncer.Wait()
}

func TestNewRegistryRejectsBadBaseURL(t *testing.T) {
	t.Parallel()

	if _, err := NewRegistry(Config{APIBaseURL: "ftp://example.com"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestSignedInSessionSyncsEveryCache(t *testing.T) {
	t.Parallel()

	upstream := newFakeAPI(t)
	registry, _ := testRegistry(t, upstream, nil)
	sess, err := registry.Create(context.Background())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if sess.SignedIn() {
		t.Fatal("new session must be signed out")
	}

	signIn(t, sess)

	snap := sess.Store.Snapshot()
	if snap.Feed.Status() != store.StatusPopulated || snap.Connections.Status() != store.StatusEmpty || snap.Requests.Status() != store.StatusPopulated {
		t.Fatalf("statuses feed=%s connections=%s requests=%s", snap.Feed.Status(), snap.Connections.Status(), snap.Requests.Status())
	}
	if got := upstream.feedCookieValues(); len(got) != 1 || got[0] != "jwt-1" {
		t.Fatalf("feed cookies = %v", got)
	}

	found, ok := registry.Lookup(context.Background(), sess.ID)
	if !ok || found != sess {
		t.Fatal("expected lookup to return the same session")
	}
}

func TestUnauthorizedFetchSignsOut(t *testing.T) {
	t.Parallel()

	upstream := newFakeAPI(t)
	upstream.setFeedStatus(http.StatusUnauthorized)
	registry, logs := testRegistry(t, upstream, nil)
	sess, err := registry.Create(context.Background())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	signIn(t, sess)

	if sess.SignedIn() {
		t.Fatal("expected 401 to clear the session")
	}
	if sess.Store.Feed.Snapshot().Status() != store.StatusUnloaded {
		t.Fatal("expected feed to be unloaded")
	}
	if !strings.Contains(logs.String(), "web session expired upstream") {
		t.Fatalf("logs = %q", logs.String())
	}
}

func TestPersistedSessionIsRestored(t *testing.T) {
	t.Parallel()

	upstream := newFakeAPI(t)
	persistence := newMemoryStore()
	first, _ := testRegistry(t, upstream, persistence)
	sess, err := first.Create(context.Background())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	signIn(t, sess)

	record, ok := persistence.record(sess.ID)
	if !ok || record.User == nil || record.User.ID != "u1" || len(record.Cookies) != 1 {
		t.Fatalf("persisted record = %+v", record)
	}

	second, _ := testRegistry(t, upstream, persistence)
	restored, ok := second.Lookup(context.Background(), sess.ID)
	if !ok {
		t.Fatal("expected session to be restored")
	}
	restored.Syncer.Wait()
	if id := restored.Store.Session().Identity(); id != "u1" {
		t.Fatalf("restored identity = %q", id)
	}
	if restored.Store.Feed.Snapshot().Status() != store.StatusPopulated {
		t.Fatal("expected restored session to refetch the feed")
	}
	cookies := upstream.feedCookieValues()
	if len(cookies) != 2 || cookies[1] != "jwt-1" {
		t.Fatalf("feed cookies = %v", cookies)
	}
}

func TestDiscardRemovesSessionAndRecord(t *testing.T) {
	t.Parallel()

	upstream := newFakeAPI(t)
	persistence := newMemoryStore()
	registry, _ := testRegistry(t, upstream, persistence)
	sess, err := registry.Create(context.Background())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	registry.Discard(context.Background(), sess.ID)
	if _, ok := registry.Lookup(context.Background(), sess.ID); ok {
		t.Fatal("expected discarded session to be gone")
	}
	if _, ok := persistence.record(sess.ID); ok {
		t.Fatal("expected persisted record to be deleted")
	}
	if _, ok := registry.Lookup(context.Background(), " "); ok {
		t.Fatal("expected blank id lookup to fail")
	}
}

func TestPruneDropsIdleSessions(t *testing.T) {
	t.Parallel()

	upstream := newFakeAPI(t)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	registry, err := NewRegistry(Config{APIBaseURL: upstream.server.URL, Now: func() time.Time { return now }})
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	defer registry.Close()

	idle, _ := registry.Create(context.Background())
	now = now.Add(2 * time.Hour)
	active, _ := registry.Create(context.Background())

	if pruned := registry.Prune(context.Background(), time.Hour); pruned != 1 {
		t.Fatalf("pruned = %d, want 1", pruned)
	}
	if _, ok := registry.Lookup(context.Background(), idle.ID); ok {
		t.Fatal("expected idle session to be pruned")
	}
	if _, ok := registry.Lookup(context.Background(), active.ID); !ok {
		t.Fatal("expected active session to remain")
	}
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	if _, ok := FromContext(context.Background()); ok {
		t.Fatal("expected no session")
	}
	sess := &Session{ID: "ws-1"}
	got, ok := FromContext(WithSession(context.Background(), sess))
	if !ok || got != sess {
		t.Fatal("expected session from context")
	}
}

func TestInflightGuardsPerKey(t *testing.T) {
	t.Parallel()

	var f Inflight
	done, ok := f.TryBegin("review:r1")
	if !ok {
		t.Fatal("expected first begin to succeed")
	}
	if _, ok := f.TryBegin("review:r1"); ok {
		t.Fatal("expected second begin for same key to fail")
	}
	otherDone, ok := f.TryBegin("review:r2")
	if !ok {
		t.Fatal("expected different key to be independent")
	}
	otherDone()
	if !f.Pending("review:r1") {
		t.Fatal("expected r1 pending")
	}
	done()
	done()
	if f.Pending("review:r1") {
		t.Fatal("expected r1 released")
	}
	if _, ok := f.TryBegin("review:r1"); !ok {
		t.Fatal("expected r1 to be reusable")
	}
}
