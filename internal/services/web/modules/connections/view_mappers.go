package connections

import (
	"github.com/devtinder/web/internal/services/web/api"
	"github.com/devtinder/web/internal/services/web/store"
	webtemplates "github.com/devtinder/web/internal/services/web/templates"
)

func connectionsView(cache store.Cache[api.User]) webtemplates.ConnectionsView {
	items := cache.Items()
	view := webtemplates.ConnectionsView{
		State:       webtemplates.ListState(cache.RenderState()),
		Connections: make([]webtemplates.UserCardView, 0, len(items)),
	}
	for _, user := range items {
		view.Connections = append(view.Connections, webtemplates.UserCardView{
			ID:       user.Key(),
			Name:     user.FullName(),
			Age:      user.Age,
			Gender:   string(user.Gender),
			PhotoURL: user.PhotoURL,
			About:    user.About,
			Skills:   user.Skills,
		})
	}
	return view
}
