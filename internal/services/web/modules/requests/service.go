package requests

import (
	"context"
	"log"
	"strings"

	"github.com/devtinder/web/internal/services/web/api"
	apperrors "github.com/devtinder/web/internal/services/web/platform/errors"
	"github.com/devtinder/web/internal/services/web/store"
	"github.com/devtinder/web/internal/services/web/websession"
)

// RequestGateway reviews pending connection requests.
type RequestGateway interface {
	ReviewRequest(ctx context.Context, sess *websession.Session, status api.ReviewStatus, requestID string) error
}

type service struct {
	gateway RequestGateway
	logger  *log.Logger
}

func newService(gateway RequestGateway, logger *log.Logger) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return service{gateway: gateway, logger: logger}
}

// actionKey is the in-flight key for reviewing requestID.
func actionKey(requestID string) string {
	return "review:" + requestID
}

func parseReviewStatus(value string) (api.ReviewStatus, bool) {
	switch api.ReviewStatus(strings.ToLower(strings.TrimSpace(value))) {
	case api.ReviewAccepted:
		return api.ReviewAccepted, true
	case api.ReviewRejected:
		return api.ReviewRejected, true
	default:
		return "", false
	}
}

func requireSignedIn(sess *websession.Session) error {
	if !sess.SignedIn() {
		return apperrors.EK(apperrors.KindUnauthorized, "auth.notice.session_expired", "sign in required")
	}
	return nil
}

// pending returns the requests cache, refetching it when Unloaded and idle.
func (s service) pending(sess *websession.Session, live bool) (store.Cache[api.PendingRequest], error) {
	if err := requireSignedIn(sess); err != nil {
		return store.Cache[api.PendingRequest]{}, err
	}
	cache := sess.Store.Requests.Snapshot()
	if !live && !cache.Loaded() && !sess.Store.Requests.Pending() {
		sess.Syncer.Refresh(store.ResourceRequests)
	}
	return cache, nil
}

// review accepts or rejects requestID. Only one review per request may be in
// flight; a second one fails with a conflict and never reaches the network.
// A reviewed request leaves the cache, and an accepted one refetches
// connections.
func (s service) review(ctx context.Context, sess *websession.Session, requestID string, rawStatus string) (api.ReviewStatus, error) {
	if err := requireSignedIn(sess); err != nil {
		return "", err
	}
	status, ok := parseReviewStatus(rawStatus)
	if !ok {
		return "", apperrors.EK(apperrors.KindInvalidInput, "error.not_found", "unknown review status")
	}
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return status, apperrors.EK(apperrors.KindInvalidInput, "error.not_found", "request id is required")
	}
	done, ok := sess.Actions.TryBegin(actionKey(requestID))
	if !ok {
		return status, apperrors.EK(apperrors.KindConflict, "requests.error.in_flight", "review already in flight")
	}
	defer done()

	if err := s.gateway.ReviewRequest(ctx, sess, status, requestID); err != nil {
		s.logger.Printf("request review failed session_id=%s status=%s request_id=%s err=%v", sess.ID, status, requestID, err)
		return status, err
	}
	sess.Store.Requests.Remove(requestID)
	if status == api.ReviewAccepted {
		sess.Syncer.Refresh(store.ResourceConnections)
	}
	return status, nil
}
