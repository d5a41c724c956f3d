package modules

import (
	"github.com/devtinder/web/internal/services/web/modules/auth"
	"github.com/devtinder/web/internal/services/web/modules/connections"
	"github.com/devtinder/web/internal/services/web/modules/events"
	"github.com/devtinder/web/internal/services/web/modules/feed"
	"github.com/devtinder/web/internal/services/web/modules/profile"
	"github.com/devtinder/web/internal/services/web/modules/requests"
)

// DefaultPublicModules returns the modules served without a signed-in user.
func DefaultPublicModules(deps Dependencies) []Module {
	return []Module{
		auth.New(deps.authConfig()),
	}
}

// DefaultProtectedModules returns the modules that require a signed-in user.
func DefaultProtectedModules(deps Dependencies) []Module {
	return []Module{
		feed.NewWithGateway(feed.NewAPIGateway(), deps.Base),
		connections.New(deps.Base),
		requests.NewWithGateway(requests.NewAPIGateway(), deps.Base),
		profile.NewWithGateway(profile.NewAPIGateway(), deps.Base),
		auth.NewLogout(deps.authConfig()),
		events.New(deps.streamer(), deps.Base),
	}
}
