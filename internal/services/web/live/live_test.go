package live

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/devtinder/web/internal/services/web/websession"
)

func newSession(t *testing.T) *websession.Session {
	t.Helper()
	registry, err := websession.NewRegistry(websession.Config{
		APIBaseURL: "http://127.0.0.1:1",
		Logger:     log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	t.Cleanup(registry.Close)
	sess, err := registry.Create(context.Background())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return sess
}

func dial(t *testing.T, server *httptest.Server, origin string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	header := http.Header{}
	if origin != "" {
		header.Set("Origin", origin)
	}
	return websocket.DefaultDialer.Dial(url, header)
}

func waitForClients(t *testing.T, hub *Hub, sessionID string, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.Len(sessionID) != want {
		if time.Now().After(deadline) {
			t.Fatalf("clients for %s = %d, want %d", sessionID, hub.Len(sessionID), want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestServePushesNoticeAndStoreEvents(t *testing.T) {
	t.Parallel()

	sess := newSession(t)
	hub := NewHub(WithLogger(log.New(io.Discard, "", 0)))
	t.Cleanup(hub.Close)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.Serve(w, r, sess)
	}))
	t.Cleanup(server.Close)

	conn, _, err := dial(t, server, server.URL)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.Close()
	waitForClients(t, hub, sess.ID, 1)

	shown := sess.Notices.Success("Accepted connection!")
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var evt Event
	if err := conn.ReadJSON(&evt); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if evt.Type != EventNotice || evt.NoticeID != shown.ID || evt.Dismissed {
		t.Fatalf("event = %+v, want notice %s shown", evt, shown.ID)
	}

	sess.Store.Feed.Invalidate()
	if err := conn.ReadJSON(&evt); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if evt.Type != EventStore || evt.Resource != "feed" || evt.Status != "unloaded" {
		t.Fatalf("event = %+v, want feed store event", evt)
	}
}

func TestServeRejectsCrossOrigin(t *testing.T) {
	t.Parallel()

	sess := newSession(t)
	hub := NewHub(WithLogger(log.New(io.Discard, "", 0)))
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.Serve(w, r, sess)
	}))
	t.Cleanup(server.Close)

	_, resp, err := dial(t, server, "https://evil.example")
	if err == nil {
		t.Fatal("Dial() succeeded for cross-origin request")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Fatalf("response = %+v, want 403", resp)
	}
}

func TestDisconnectClosesTabs(t *testing.T) {
	t.Parallel()

	sess := newSession(t)
	hub := NewHub(WithLogger(log.New(io.Discard, "", 0)))
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.Serve(w, r, sess)
	}))
	t.Cleanup(server.Close)

	conn, _, err := dial(t, server, server.URL)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.Close()
	waitForClients(t, hub, sess.ID, 1)

	hub.Disconnect(sess.ID)
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatal("ReadMessage() succeeded after Disconnect")
	}
	if got := hub.Len(sess.ID); got != 0 {
		t.Fatalf("Len() = %d, want 0", got)
	}
}
