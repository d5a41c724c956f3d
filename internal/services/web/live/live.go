// Package live pushes store and notice changes to open browser tabs over a
// websocket, so pages can re-render when a background fetch lands or a
// notice dismisses itself.
package live

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/devtinder/web/internal/platform/timeouts"
	"github.com/devtinder/web/internal/services/web/platform/notice"
	"github.com/devtinder/web/internal/services/web/platform/requestmeta"
	"github.com/devtinder/web/internal/services/web/store"
	"github.com/devtinder/web/internal/services/web/websession"
)

// Event types sent to the browser.
const (
	EventStore  = "store"
	EventNotice = "notice"
)

// sendBuffer bounds queued events per tab; overflow is dropped since any
// later event triggers the same re-render.
const sendBuffer = 16

// Event is one push frame.
type Event struct {
	Type      string `json:"type"`
	Resource  string `json:"resource,omitempty"`
	Status    string `json:"status,omitempty"`
	NoticeID  string `json:"notice_id,omitempty"`
	Dismissed bool   `json:"dismissed,omitempty"`
}

// Option customizes a Hub.
type Option func(*Hub)

// WithLogger sets the hub logger.
func WithLogger(logger *log.Logger) Option {
	return func(h *Hub) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithPolicy sets the scheme policy used for the origin check.
func WithPolicy(policy requestmeta.SchemePolicy) Option {
	return func(h *Hub) { h.policy = policy }
}

// Hub tracks every connected tab.
type Hub struct {
	logger   *log.Logger
	policy   requestmeta.SchemePolicy
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[string]map[*client]struct{}
	closed  bool
}

// NewHub returns an empty hub.
func NewHub(opts ...Option) *Hub {
	h := &Hub{
		logger:  log.Default(),
		clients: map[string]map[*client]struct{}{},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return requestmeta.HasSameOriginProof(r, h.policy)
		},
	}
	return h
}

type client struct {
	sessionID string
	conn      *websocket.Conn
	send      chan Event
	done      chan struct{}
	closeOnce sync.Once
}

func (c *client) push(evt Event) {
	select {
	case <-c.done:
	case c.send <- evt:
	default:
	}
}

func (c *client) stop() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

// Serve upgrades the request and streams sess changes until the tab goes
// away. It blocks for the lifetime of the connection.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, sess *websession.Session) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("live upgrade failed session_id=%s err=%v", sess.ID, err)
		return
	}
	c := &client{
		sessionID: sess.ID,
		conn:      conn,
		send:      make(chan Event, sendBuffer),
		done:      make(chan struct{}),
	}
	unsubscribeStore := sess.Store.Subscribe(func(change store.Change) {
		c.push(Event{Type: EventStore, Resource: change.Resource, Status: change.Status.String()})
	})
	unsubscribeNotices := sess.Notices.Subscribe(func(event notice.Event) {
		c.push(Event{Type: EventNotice, NoticeID: event.Notice.ID, Dismissed: event.Dismissed})
	})
	defer func() {
		unsubscribeStore()
		unsubscribeNotices()
		h.unregister(c)
		c.stop()
	}()
	if !h.register(c) {
		return
	}

	go h.writeLoop(c)
	h.readLoop(c)
}

// readLoop discards client frames and watches for pongs.
func (h *Hub) readLoop(c *client) {
	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(timeouts.LiveIdle))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(timeouts.LiveIdle))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(c *client) {
	ticker := time.NewTicker(timeouts.LivePing)
	defer func() {
		ticker.Stop()
		c.stop()
	}()
	for {
		select {
		case <-c.done:
			return
		case evt := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(timeouts.LiveWrite))
			if err := c.conn.WriteJSON(evt); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(timeouts.LiveWrite))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	peers := h.clients[c.sessionID]
	if peers == nil {
		peers = map[*client]struct{}{}
		h.clients[c.sessionID] = peers
	}
	peers[c] = struct{}{}
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if peers, ok := h.clients[c.sessionID]; ok {
		delete(peers, c)
		if len(peers) == 0 {
			delete(h.clients, c.sessionID)
		}
	}
}

// Len returns the number of connected tabs for sessionID.
func (h *Hub) Len(sessionID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[sessionID])
}

// Disconnect closes every tab of sessionID, used when the session ends.
func (h *Hub) Disconnect(sessionID string) {
	h.mu.Lock()
	peers := h.clients[sessionID]
	delete(h.clients, sessionID)
	h.mu.Unlock()
	for c := range peers {
		c.stop()
	}
}

// Close disconnects every tab and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	all := h.clients
	h.clients = map[string]map[*client]struct{}{}
	h.mu.Unlock()
	for _, peers := range all {
		for c := range peers {
			c.stop()
		}
	}
}
