package feed

import (
	"context"

	"github.com/devtinder/web/internal/services/web/api"
	"github.com/devtinder/web/internal/services/web/websession"
)

// NewAPIGateway returns a gateway that calls the DevTinder API with the
// session's own client.
func NewAPIGateway() FeedGateway {
	return apiGateway{}
}

type apiGateway struct{}

func (apiGateway) SendDecision(ctx context.Context, sess *websession.Session, decision api.Decision, userID string) error {
	return sess.API.SendDecision(ctx, decision, userID)
}
