package feed

import (
	"context"

	"github.com/devtinder/web/internal/services/web/api"
	apperrors "github.com/devtinder/web/internal/services/web/platform/errors"
	"github.com/devtinder/web/internal/services/web/websession"
)

type unavailableGateway struct{}

func (unavailableGateway) SendDecision(context.Context, *websession.Session, api.Decision, string) error {
	return apperrors.E(apperrors.KindUnavailable, "feed service is not configured")
}
