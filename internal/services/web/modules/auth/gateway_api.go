package auth

import (
	"context"

	"github.com/devtinder/web/internal/services/web/api"
	"github.com/devtinder/web/internal/services/web/websession"
)

// NewAPIGateway returns a gateway that authenticates with the session's own
// client, so the upstream cookie lands in that session's jar.
func NewAPIGateway() AuthGateway {
	return apiGateway{}
}

type apiGateway struct{}

func (apiGateway) Login(ctx context.Context, sess *websession.Session, creds api.Credentials) (api.User, error) {
	return sess.API.Login(ctx, creds)
}

func (apiGateway) Signup(ctx context.Context, sess *websession.Session, signup api.Signup) (api.User, error) {
	return sess.API.Signup(ctx, signup)
}

func (apiGateway) Logout(ctx context.Context, sess *websession.Session) error {
	return sess.API.Logout(ctx)
}
