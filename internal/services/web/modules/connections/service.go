package connections

import (
	"github.com/devtinder/web/internal/services/web/api"
	apperrors "github.com/devtinder/web/internal/services/web/platform/errors"
	"github.com/devtinder/web/internal/services/web/store"
	"github.com/devtinder/web/internal/services/web/websession"
)

type service struct{}

func newService() service {
	return service{}
}

// list returns the connections cache. An Unloaded cache with no fetch in
// flight is refetched, so visiting the screen retries a failed load.
func (service) list(sess *websession.Session, live bool) (store.Cache[api.User], error) {
	if !sess.SignedIn() {
		return store.Cache[api.User]{}, apperrors.EK(apperrors.KindUnauthorized, "auth.notice.session_expired", "sign in required")
	}
	cache := sess.Store.Connections.Snapshot()
	if !live && !cache.Loaded() && !sess.Store.Connections.Pending() {
		sess.Syncer.Refresh(store.ResourceConnections)
	}
	return cache, nil
}
