package requests

import (
	"github.com/devtinder/web/internal/services/web/api"
	"github.com/devtinder/web/internal/services/web/store"
	webtemplates "github.com/devtinder/web/internal/services/web/templates"
)

func requestsView(cache store.Cache[api.PendingRequest], inFlight func(key string) bool) webtemplates.RequestsView {
	items := cache.Items()
	view := webtemplates.RequestsView{
		State:    webtemplates.ListState(cache.RenderState()),
		Requests: make([]webtemplates.RequestView, 0, len(items)),
	}
	for _, request := range items {
		from := request.FromUser
		view.Requests = append(view.Requests, webtemplates.RequestView{
			ID: request.Key(),
			From: webtemplates.UserCardView{
				ID:       from.Key(),
				Name:     from.FullName(),
				Age:      from.Age,
				Gender:   string(from.Gender),
				PhotoURL: from.PhotoURL,
				About:    from.About,
				Skills:   from.Skills,
			},
			Busy: inFlight != nil && inFlight(actionKey(request.Key())),
		})
	}
	return view
}
