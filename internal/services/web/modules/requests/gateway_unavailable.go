package requests

import (
	"context"

	"github.com/devtinder/web/internal/services/web/api"
	apperrors "github.com/devtinder/web/internal/services/web/platform/errors"
	"github.com/devtinder/web/internal/services/web/websession"
)

type unavailableGateway struct{}

func (unavailableGateway) ReviewRequest(context.Context, *websession.Session, api.ReviewStatus, string) error {
	return apperrors.E(apperrors.KindUnavailable, "requests service is not configured")
}
