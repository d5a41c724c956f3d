package requests

import (
	"context"

	"github.com/devtinder/web/internal/services/web/api"
	"github.com/devtinder/web/internal/services/web/websession"
)

// NewAPIGateway returns a gateway that calls the DevTinder API with the
// session's own client.
func NewAPIGateway() RequestGateway {
	return apiGateway{}
}

type apiGateway struct{}

func (apiGateway) ReviewRequest(ctx context.Context, sess *websession.Session, status api.ReviewStatus, requestID string) error {
	return sess.API.ReviewRequest(ctx, status, requestID)
}
