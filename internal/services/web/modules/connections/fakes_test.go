package connections

import (
	"testing"

	"github.com/devtinder/web/internal/services/web/api"
	"github.com/devtinder/web/internal/services/web/platform/modulehandler"
	"github.com/devtinder/web/internal/services/web/platform/requestmeta"
	"github.com/devtinder/web/internal/services/web/websession"
	"github.com/devtinder/web/internal/testkit/webfakes"
)

func testBase() modulehandler.Base {
	return modulehandler.NewBase(requestmeta.SchemePolicy{}, webfakes.Discard())
}

func signedInSession(t *testing.T, upstream *webfakes.Upstream) *websession.Session {
	t.Helper()
	registry := webfakes.NewRegistry(t, upstream, &webfakes.Clock{})
	return webfakes.NewSession(t, registry, &api.User{ID: "u1", FirstName: "Ada"})
}
