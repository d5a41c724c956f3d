package requests

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

// fakeGateway implements RequestGateway. When gate is set, calls block until
// it is closed, after signalling on entered.
type fakeGateway struct {
	mu      sync.Mutex
	err     error
	calls   []string
	gate    chan struct{}
	entered chan struct{}
}

var _ RequestGateway = (*fakeGateway)(nil)

func (f *fakeGateway) ReviewRequest(_ context.Context, _ *websession.Session, status api.ReviewStatus, requestID string) error {
	f.mu.Lock()
	f.calls = append(f.calls, string(status)+":"+requestID)
	f.mu.Unlock()
	if f.gate != nil {
		f.entered <- struct{}{}
		<-f.gate
	}
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

type fixture struct {
	upstream *webfakes.Upstream
	clock    *webfakes.Clock
	sess     *websession.Session
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	upstream := webfakes.NewUpstream()
	upstream.EmptyLists()
	clock := &webfakes.Clock{}
	registry := webfakes.NewRegistry(t, upstream, clock)
	sess := webfakes.NewSession(t, registry, &api.User{ID: "u1", FirstName: "Ada"})
	return fixture{upstream: upstream, clock: clock, sess: sess}
}

func pendingRequest(id string, from string) api.PendingRequest {
	return api.PendingRequest{ID: id, FromUser: api.User{ID: "from-" + id, FirstName: from}}
}
