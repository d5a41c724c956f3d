package profile

import (
	"context"

	"github.com/devtinder/web/internal/services/web/api"
	apperrors "github.com/devtinder/web/internal/services/web/platform/errors"
	"github.com/devtinder/web/internal/services/web/websession"
)

type unavailableGateway struct{}

func (unavailableGateway) EditProfile(context.Context, *websession.Session, api.ProfileEdit) error {
	return apperrors.E(apperrors.KindUnavailable, "profile service is not configured")
}
