package feed

import (
	"github.com/devtinder/web/internal/services/web/api"
	"github.com/devtinder/web/internal/services/web/store"
	webtemplates "github.com/devtinder/web/internal/services/web/templates"
)

func feedView(cache store.Cache[api.User]) webtemplates.FeedView {
	view := webtemplates.FeedView{State: webtemplates.ListState(cache.RenderState())}
	if head, ok := cache.Head(); ok {
		view.Head = userCardView(head)
	}
	return view
}

func userCardView(user api.User) webtemplates.UserCardView {
	return webtemplates.UserCardView{
		ID:       user.Key(),
		Name:     user.FullName(),
		Age:      user.Age,
		Gender:   string(user.Gender),
		PhotoURL: user.PhotoURL,
		About:    user.About,
		Skills:   user.Skills,
	}
}
