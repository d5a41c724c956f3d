package profile

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

// fakeGateway implements ProfileGateway with error injection and edit capture.
type fakeGateway struct {
	mu    sync.Mutex
	err   error
	edits []api.ProfileEdit
}

var _ ProfileGateway = (*fakeGateway)(nil)

func (f *fakeGateway) EditProfile(_ context.Context, _ *websession.Session, edit api.ProfileEdit) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.edits = append(f.edits, edit)
	return f.err
}

func (f *fakeGateway) lastEdit() (api.ProfileEdit, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.edits) == 0 {
		return api.ProfileEdit{}, 0
	}
	return f.edits[len(f.edits)-1], len(f.edits)
}

func testBase() modulehandler.Base {
	return modulehandler.NewBase(requestmeta.SchemePolicy{}, webfakes.Discard())
}

func ada() *api.User {
	return &api.User{
		ID:        "u1",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Age:       36,
		Gender:    api.GenderFemale,
		PhotoURL:  "https://img.test/ada.png",
		About:     "Engines",
		Skills:    []string{"math", "poetry"},
	}
}

func signedInSession(t *testing.T, upstream *webfakes.Upstream) *websession.Session {
	t.Helper()
	if upstream == nil {
		upstream = webfakes.NewUpstream()
	}
	upstream.EmptyLists()
	registry := webfakes.NewRegistry(t, upstream, &webfakes.Clock{})
	return webfakes.NewSession(t, registry, ada())
}
