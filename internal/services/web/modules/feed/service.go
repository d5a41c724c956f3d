package feed

import (
	"context"
	"log"
	"strings"

	"github.com/devtinder/web/internal/services/web/api"
	apperrors "github.com/devtinder/web/internal/services/web/platform/errors"
	"github.com/devtinder/web/internal/services/web/store"
	"github.com/devtinder/web/internal/services/web/websession"
)

// FeedGateway records decisions on feed candidates.
type FeedGateway interface {
	SendDecision(ctx context.Context, sess *websession.Session, decision api.Decision, userID string) error
}

type service struct {
	gateway FeedGateway
	logger  *log.Logger
}

func newService(gateway FeedGateway, logger *log.Logger) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return service{gateway: gateway, logger: logger}
}

func requireSignedIn(sess *websession.Session) error {
	if !sess.SignedIn() {
		return apperrors.EK(apperrors.KindUnauthorized, "auth.notice.session_expired", "sign in required")
	}
	return nil
}

// queue returns the feed cache, asking for a refetch when it is Unloaded and
// nothing is in flight. Live re-renders never refetch.
func (s service) queue(sess *websession.Session, live bool) (store.Cache[api.User], error) {
	if err := requireSignedIn(sess); err != nil {
		return store.Cache[api.User]{}, err
	}
	cache := sess.Store.Feed.Snapshot()
	if !live && !cache.Loaded() && !sess.Store.Feed.Pending() {
		sess.Syncer.Refresh(store.ResourceFeed)
	}
	return cache, nil
}

// recordDecision sends the decision and, on success, drops the candidate
// from the queue. On failure the candidate stays queued.
func (s service) recordDecision(ctx context.Context, sess *websession.Session, rawDecision string, candidateID string) error {
	if err := requireSignedIn(sess); err != nil {
		return err
	}
	decision, ok := api.ParseDecision(rawDecision)
	if !ok {
		return apperrors.EK(apperrors.KindInvalidInput, "error.not_found", "unknown decision")
	}
	candidateID = strings.TrimSpace(candidateID)
	if candidateID == "" {
		return apperrors.EK(apperrors.KindInvalidInput, "error.not_found", "candidate id is required")
	}
	if err := s.gateway.SendDecision(ctx, sess, decision, candidateID); err != nil {
		s.logger.Printf("feed decision failed session_id=%s decision=%s user_id=%s err=%v", sess.ID, decision, candidateID, err)
		return err
	}
	sess.Store.Feed.Remove(candidateID)
	return nil
}
