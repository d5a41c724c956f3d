// Package modules defines web module registry helpers.
package modules

import (
	module "github.com/devtinder/web/internal/services/web/module"
	"github.com/devtinder/web/internal/services/web/modules/auth"
	"github.com/devtinder/web/internal/services/web/modules/events"
	"github.com/devtinder/web/internal/services/web/platform/modulehandler"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// LiveHub streams session events and drops the streams of signed-out
// sessions.
type LiveHub interface {
	events.Streamer
	Disconnect(sessionID string)
}

// Dependencies carries the shared services required to compose the web
// module registry. Per-user API access travels with each session, so modules
// receive no API client here.
type Dependencies struct {
	Sessions auth.Sessions
	Cookies  auth.Cookies
	Hub      LiveHub
	Base     modulehandler.Base
}

func (d Dependencies) authConfig() auth.Config {
	cfg := auth.Config{
		Gateway:  auth.NewAPIGateway(),
		Sessions: d.Sessions,
		Cookies:  d.Cookies,
		Base:     d.Base,
	}
	if d.Hub != nil {
		cfg.OnSignOut = d.Hub.Disconnect
	}
	return cfg
}

func (d Dependencies) streamer() events.Streamer {
	if d.Hub == nil {
		return nil
	}
	return d.Hub
}
