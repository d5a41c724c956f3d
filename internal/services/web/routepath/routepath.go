// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root                 = "/"
	Login                = "/login"
	Signup               = "/signup"
	Health               = "/healthz"
	StaticPrefix         = "/static/"
	Stylesheet           = "/static/app.css"
	LiveScript           = "/static/live.js"
	AvatarPlaceholder    = "/static/avatar.svg"
	AppPrefix            = "/app/"
	AppRootPattern       = "/app/{$}"
	FeedPrefix           = "/app/feed/"
	FeedDecisionPattern  = FeedPrefix + "{userID}/{decision}"
	AppConnections       = "/app/connections"
	AppRequests          = "/app/requests"
	RequestsPrefix       = "/app/requests/"
	RequestReviewPattern = RequestsPrefix + "{requestID}/{decision}"
	AppProfile           = "/app/profile"
	AppLogout            = "/app/logout"
	AppEvents            = "/app/events"
)

// FeedDecision returns the form action that records decision for userID.
func FeedDecision(userID string, decision string) string {
	return FeedPrefix + escapeSegment(userID) + "/" + escapeSegment(decision)
}

// RequestReview returns the form action that reviews requestID.
func RequestReview(requestID string, decision string) string {
	return RequestsPrefix + escapeSegment(requestID) + "/" + escapeSegment(decision)
}

func escapeSegment(value string) string {
	return url.PathEscape(strings.TrimSpace(value))
}
