package feed

import (
	"context"
	"errors"
	"testing"

	"github.com/devtinder/web/internal/services/web/api"
	apperrors "github.com/devtinder/web/internal/services/web/platform/errors"
	"github.com/devtinder/web/internal/services/web/store"
	"github.com/devtinder/web/internal/testkit/webfakes"
)

func TestRecordDecisionRemovesCandidateOnSuccess(t *testing.T) {
	t.Parallel()

	sess := signedInSession(t)
	webfakes.Seed(sess.Store.Feed, candidate("U41", "A"), candidate("U42", "B"))
	gateway := &fakeGateway{}
	svc := newService(gateway, webfakes.Discard())

	if err := svc.recordDecision(context.Background(), sess, "interested", "U42"); err != nil {
		t.Fatalf("recordDecision() error = %v", err)
	}
	cache := sess.Store.Feed.Snapshot()
	if cache.Contains("U42", api.User.Key) {
		t.Fatal("feed still contains U42")
	}
	if cache.Len() != 1 || cache.Status() != store.StatusPopulated {
		t.Fatalf("feed = %v len %d, want one populated", cache.Status(), cache.Len())
	}
	if gateway.calls[0] != (decisionCall{decision: api.DecisionInterested, userID: "U42"}) {
		t.Fatalf("gateway call = %+v", gateway.calls[0])
	}
}

func TestRecordDecisionKeepsCandidateOnFailure(t *testing.T) {
	t.Parallel()

	sess := signedInSession(t)
	webfakes.Seed(sess.Store.Feed, candidate("U42", "B"))
	svc := newService(&fakeGateway{err: errors.New("boom")}, webfakes.Discard())

	if err := svc.recordDecision(context.Background(), sess, "ignored", "U42"); err == nil {
		t.Fatal("recordDecision() error = nil, want gateway error")
	}
	if !sess.Store.Feed.Snapshot().Contains("U42", api.User.Key) {
		t.Fatal("feed lost U42 after failed decision")
	}
}

func TestRecordDecisionLastCandidateEmptiesFeed(t *testing.T) {
	t.Parallel()

	sess := signedInSession(t)
	webfakes.Seed(sess.Store.Feed, candidate("U42", "B"))
	svc := newService(&fakeGateway{}, webfakes.Discard())

	if err := svc.recordDecision(context.Background(), sess, "ignored", "U42"); err != nil {
		t.Fatalf("recordDecision() error = %v", err)
	}
	if got := sess.Store.Feed.Snapshot().Status(); got != store.StatusEmpty {
		t.Fatalf("feed status = %v, want empty", got)
	}
}

func TestRecordDecisionValidatesBeforeNetwork(t *testing.T) {
	t.Parallel()

	sess := signedInSession(t)
	gateway := &fakeGateway{}
	svc := newService(gateway, webfakes.Discard())

	tests := []struct {
		name     string
		decision string
		userID   string
	}{
		{name: "unknown decision", decision: "maybe", userID: "U1"},
		{name: "blank user", decision: "interested", userID: "  "},
	}
	for _, tc := range tests {
		err := svc.recordDecision(context.Background(), sess, tc.decision, tc.userID)
		if apperrors.KindOf(err) != apperrors.KindInvalidInput {
			t.Fatalf("%s: kind = %v, want invalid input", tc.name, apperrors.KindOf(err))
		}
	}
	if gateway.callCount() != 0 {
		t.Fatalf("gateway calls = %d, want 0", gateway.callCount())
	}
}

func TestRecordDecisionRequiresSignedInSession(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeGateway{}, webfakes.Discard())
	err := svc.recordDecision(context.Background(), nil, "interested", "U1")
	if apperrors.KindOf(err) != apperrors.KindUnauthorized {
		t.Fatalf("kind = %v, want unauthorized", apperrors.KindOf(err))
	}
}

func TestNewServiceDefaultsToUnavailableGateway(t *testing.T) {
	t.Parallel()

	sess := signedInSession(t)
	webfakes.Seed(sess.Store.Feed, candidate("U42", "B"))
	err := newService(nil, webfakes.Discard()).recordDecision(context.Background(), sess, "interested", "U42")
	if apperrors.KindOf(err) != apperrors.KindUnavailable {
		t.Fatalf("kind = %v, want unavailable", apperrors.KindOf(err))
	}
}

func TestQueueRefreshesUnloadedFeed(t *testing.T) {
	t.Parallel()

	sess := signedInSession(t)
	sess.Store.Feed.Invalidate()
	svc := newService(&fakeGateway{}, webfakes.Discard())

	if _, err := svc.queue(sess, true); err != nil {
		t.Fatalf("queue(live) error = %v", err)
	}
	if sess.Store.Feed.Pending() {
		t.Fatal("live render started a fetch")
	}

	if _, err := svc.queue(sess, false); err != nil {
		t.Fatalf("queue() error = %v", err)
	}
	sess.Syncer.Wait()
	if got := sess.Store.Feed.Snapshot().Status(); got != store.StatusEmpty {
		t.Fatalf("feed status after refresh = %v, want empty", got)
	}
}
