package store

import (
	"sync"

	"github.com/devtinder/web/internal/services/web/api"
)

// Resource names used in logs, live events and Syncer.Refresh.
const (
	ResourceFeed        = "feed"
	ResourceConnections = "connections"
	ResourceRequests    = "requests"
	ResourceSession     = "session"
)

// Store is the state of one browser session.
type Store struct {
	Feed        *Resource[api.User]
	Connections *Resource[api.User]
	Requests    *Resource[api.PendingRequest]

	// identityMu serializes identity transitions so observers see them in order.
	identityMu sync.Mutex

	mu        sync.RWMutex
	session   SessionState
	observer  func(identity string)
	listeners map[int]func(Change)
	nextID    int
}

// New returns a store with no session and every cache Unloaded.
func New() *Store {
	s := &Store{
		Feed:        NewResource[api.User](ResourceFeed, api.User.Key),
		Connections: NewResource[api.User](ResourceConnections, api.User.Key),
		Requests:    NewResource[api.PendingRequest](ResourceRequests, api.PendingRequest.Key),
		listeners:   map[int]func(Change){},
	}
	s.Feed.setNotify(s.broadcast)
	s.Connections.setNotify(s.broadcast)
	s.Requests.setNotify(s.broadcast)
	return s
}

// Session returns the current session state.
func (s *Store) Session() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// SetUser stores user as the signed-in user. When the identity differs from
// the previous one every cache is invalidated before the observer runs.
func (s *Store) SetUser(user api.User) {
	s.identityMu.Lock()
	defer s.identityMu.Unlock()

	s.mu.Lock()
	previous := s.session.Identity()
	s.session = s.session.WithUser(user)
	observer := s.observer
	s.mu.Unlock()

	s.broadcast(Change{Resource: ResourceSession, Status: StatusPopulated, Len: 1})
	if previous == user.ID {
		return
	}
	s.invalidateAll()
	if observer != nil {
		observer(user.ID)
	}
}

// ClearUser removes the session and forces every cache to Unloaded.
func (s *Store) ClearUser() {
	s.identityMu.Lock()
	defer s.identityMu.Unlock()

	s.mu.Lock()
	previous := s.session.Identity()
	s.session = s.session.Cleared()
	observer := s.observer
	s.mu.Unlock()

	s.broadcast(Change{Resource: ResourceSession, Status: StatusUnloaded})
	s.invalidateAll()
	if previous != "" && observer != nil {
		observer("")
	}
}

// ClearUserIf clears the session only while identity is still signed in.
func (s *Store) ClearUserIf(identity string) bool {
	if identity == "" || s.Session().Identity() != identity {
		return false
	}
	s.ClearUser()
	return true
}

// Subscribe registers fn for every state change and returns the function
// that removes it.
func (s *Store) Subscribe(fn func(Change)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) observe(fn func(identity string)) {
	s.mu.Lock()
	s.observer = fn
	s.mu.Unlock()
}

func (s *Store) invalidateAll() {
	s.Feed.Invalidate()
	s.Connections.Invalidate()
	s.Requests.Invalidate()
}

func (s *Store) broadcast(change Change) {
	s.mu.RLock()
	fns := make([]func(Change), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()
	for _, fn := range fns {
		fn(change)
	}
}
