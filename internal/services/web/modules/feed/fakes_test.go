package feed

import (
	"context"
	"sync"
	"testing"

	"github.com/devtinder/web/internal/services/web/api"
	"github.com/devtinder/web/internal/services/web/platform/modulehandler"
	"github.com/devtinder/web/internal/services/web/platform/requestmeta"
	"github.com/devtinder/web/internal/services/web/websession"
	"github.com/devtinder/web/internal/testkit/webfakes"
)

// fakeGateway implements FeedGateway with error injection and call capture.
type fakeGateway struct {
	mu    sync.Mutex
	err   error
	calls []decisionCall
}

type decisionCall struct {
	decision api.Decision
	userID   string
}

var _ FeedGateway = (*fakeGateway)(nil)

func (f *fakeGateway) SendDecision(_ context.Context, _ *websession.Session, decision api.Decision, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, decisionCall{decision: decision, userID: userID})
	return f.err
}

func (f *fakeGateway) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func testBase() modulehandler.Base {
	return modulehandler.NewBase(requestmeta.SchemePolicy{}, webfakes.Discard())
}

// signedInSession returns a session for user u1 whose sync round has
// settled with every list empty.
func signedInSession(t *testing.T) *websession.Session {
	t.Helper()
	upstream := webfakes.NewUpstream()
	upstream.EmptyLists()
	registry := webfakes.NewRegistry(t, upstream, &webfakes.Clock{})
	return webfakes.NewSession(t, registry, &api.User{ID: "u1", FirstName: "Ada"})
}

func candidate(id string, name string) api.User {
	return api.User{ID: id, FirstName: name, Skills: []string{"go"}}
}
