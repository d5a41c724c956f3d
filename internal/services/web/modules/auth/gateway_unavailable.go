package auth

import (
	"context"

	"github.com/devtinder/web/internal/services/web/api"
	apperrors "github.com/devtinder/web/internal/services/web/platform/errors"
	"github.com/devtinder/web/internal/services/web/websession"
)

type unavailableGateway struct{}

func (unavailableGateway) Login(context.Context, *websession.Session, api.Credentials) (api.User, error) {
	return api.User{}, errUnavailable
}

func (unavailableGateway) Signup(context.Context, *websession.Session, api.Signup) (api.User, error) {
	return api.User{}, errUnavailable
}

func (unavailableGateway) Logout(context.Context, *websession.Session) error {
	return errUnavailable
}

var errUnavailable = apperrors.E(apperrors.KindUnavailable, "auth service is not configured")
