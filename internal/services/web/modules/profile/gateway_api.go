package profile

import (
	"context"

	"github.com/devtinder/web/internal/services/web/api"
	"github.com/devtinder/web/internal/services/web/websession"
)

// NewAPIGateway returns a gateway that saves edits with the session's client.
func NewAPIGateway() ProfileGateway {
	return apiGateway{}
}

type apiGateway struct{}

func (apiGateway) EditProfile(ctx context.Context, sess *websession.Session, edit api.ProfileEdit) error {
	return sess.API.EditProfile(ctx, edit)
}
