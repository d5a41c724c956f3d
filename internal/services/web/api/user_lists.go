package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
)

// Feed returns the candidate queue, unwrapped from the `FEED` field.
func (c *Client) Feed(ctx context.Context) ([]User, error) {
	body, err := c.call(ctx, OpFeed, http.MethodGet, "/user/feed", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[User](OpFeed, body, "FEED")
}

// Connections returns accepted connections, unwrapped from `data`.
func (c *Client) Connections(ctx context.Context) ([]User, error) {
	body, err := c.call(ctx, OpConnections, http.MethodGet, "/user/connections", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[User](OpConnections, body, "data")
}

// PendingRequests returns incoming requests, unwrapped from `data`.
func (c *Client) PendingRequests(ctx context.Context) ([]PendingRequest, error) {
	body, err := c.call(ctx, OpRequests, http.MethodGet, "/user/requests/pending", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[PendingRequest](OpRequests, body, "data")
}

// SendDecision records interest in, or dismissal of, a feed candidate.
func (c *Client) SendDecision(ctx context.Context, decision Decision, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return &Error{Op: OpDecision, Err: errors.New("user id is required")}
	}
	if _, ok := ParseDecision(string(decision)); !ok {
		return &Error{Op: OpDecision, Err: errors.New("unknown decision " + string(decision))}
	}
	path := "/request/send/" + string(decision) + "/" + url.PathEscape(userID)
	_, err := c.call(ctx, OpDecision, http.MethodPost, path, emptyBody)
	return err
}

// ReviewRequest accepts or rejects a pending request.
func (c *Client) ReviewRequest(ctx context.Context, status ReviewStatus, requestID string) error {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return &Error{Op: OpReview, Err: errors.New("request id is required")}
	}
	if status != ReviewAccepted && status != ReviewRejected {
		return &Error{Op: OpReview, Err: errors.New("unknown review status " + string(status))}
	}
	path := "/request/review/" + string(status) + "/" + url.PathEscape(requestID)
	_, err := c.call(ctx, OpReview, http.MethodPost, path, emptyBody)
	return err
}
