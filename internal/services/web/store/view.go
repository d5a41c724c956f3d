package store

import "github.com/devtinder/web/internal/services/web/api"

// Snapshot is a consistent read of the whole store for rendering.
type Snapshot struct {
	Session     SessionState
	Feed        Cache[api.User]
	Connections Cache[api.User]
	Requests    Cache[api.PendingRequest]
}

// Snapshot reads the session and every cache. Caches read while no user is
// signed in are always Unloaded.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{Session: s.Session()}
	if !snap.Session.Present() {
		return snap
	}
	snap.Feed = s.Feed.Snapshot()
	snap.Connections = s.Connections.Snapshot()
	snap.Requests = s.Requests.Snapshot()
	return snap
}
