package templates

import (
	"github.com/a-h/templ"

	"github.com/devtinder/web/internal/services/web/routepath"
)

// ListState mirrors the render state of a cached list.
type ListState string

const (
	ListLoading   ListState = "loading"
	ListEmpty     ListState = "empty"
	ListPopulated ListState = "populated"
)

// FeedView is the feed screen: only the queue head is shown.
type FeedView struct {
	State ListState
	Head  UserCardView
}

// ConnectionsView is the connections screen.
type ConnectionsView struct {
	State       ListState
	Connections []UserCardView
}

// RequestView is one pending request.
type RequestView struct {
	ID   string
	From UserCardView
	Busy bool
}

// RequestsView is the pending requests screen.
type RequestsView struct {
	State    ListState
	Requests []RequestView
}

// Feed renders the feed screen.
func Feed(loc Localizer, view FeedView) templ.Component {
	return component(func(h *html) {
		switch view.State {
		case ListPopulated:
			h.render(UserCard(loc, view.Head, []ActionView{
				{Action: routepath.FeedDecision(view.Head.ID, "ignored"), Label: T(loc, "feed.ignore"), Class: "secondary"},
				{Action: routepath.FeedDecision(view.Head.ID, "interested"), Label: T(loc, "feed.interested")},
			}))
		case ListEmpty:
			h.render(State(T(loc, "feed.empty")))
		default:
			h.render(State(T(loc, "feed.loading")))
		}
	})
}

// Connections renders the connections screen.
func Connections(loc Localizer, view ConnectionsView) templ.Component {
	return component(func(h *html) {
		h.element("h1", "", T(loc, "title.connections"))
		switch view.State {
		case ListPopulated:
			h.open("section", "list")
			for _, connection := range view.Connections {
				h.render(UserRow(loc, connection, ConnectionsSkillLimit, nil))
			}
			h.close("section")
		case ListEmpty:
			h.render(State(T(loc, "connections.empty")))
		default:
			h.render(State(T(loc, "connections.loading")))
		}
	})
}

// Requests renders the pending requests screen.
func Requests(loc Localizer, view RequestsView) templ.Component {
	return component(func(h *html) {
		h.element("h1", "", T(loc, "title.requests"))
		switch view.State {
		case ListPopulated:
			h.open("section", "list")
			for _, request := range view.Requests {
				h.render(UserRow(loc, request.From, RequestsSkillLimit, requestActions(loc, request)))
			}
			h.close("section")
		case ListEmpty:
			h.render(State(T(loc, "requests.empty")))
		default:
			h.render(State(T(loc, "requests.loading")))
		}
	})
}

func requestActions(loc Localizer, request RequestView) []ActionView {
	reject := T(loc, "requests.reject")
	accept := T(loc, "requests.accept")
	if request.Busy {
		reject = T(loc, "requests.working")
		accept = reject
	}
	return []ActionView{
		{Action: routepath.RequestReview(request.ID, "rejected"), Label: reject, Class: "secondary", Disabled: request.Busy},
		{Action: routepath.RequestReview(request.ID, "accepted"), Label: accept, Disabled: request.Busy},
	}
}
