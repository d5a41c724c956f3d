// Package api is the HTTP client for the remote DevTinder REST API.
//
// Every Client owns a private cookie jar: the upstream session cookie set by
// /login or /signup is attached to later calls automatically, so one Client
// corresponds to exactly one signed-in browser session. Calls are never
// retried and carry no client-side timeout.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/publicsuffix"
)

const tracerName = "github.com/devtinder/web/internal/services/web/api"

// Operation names used in errors, logs and span names.
const (
	OpLogin       = "login"
	OpSignup      = "signup"
	OpLogout      = "logout"
	OpEditProfile = "edit_profile"
	OpFeed        = "feed"
	OpConnections = "connections"
	OpRequests    = "pending_requests"
	OpDecision    = "send_decision"
	OpReview      = "review_request"
)

// maxBodyBytes bounds how much of a response body is buffered.
const maxBodyBytes = 4 << 20

// Client calls the DevTinder API on behalf of one session.
type Client struct {
	baseURL *url.URL
	jar     http.CookieJar
	http    *http.Client
	tracer  trace.Tracer
}

// Option customizes a Client.
type Option func(*Client)

// WithTransport replaces the HTTP transport, mostly for tests.
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		if transport != nil {
			c.http.Transport = transport
		}
	}
}

// New builds a Client rooted at baseURL with an empty cookie jar.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("api base url is required")
	}
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("api base url must be http or https, got %q", baseURL)
	}
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	c := &Client{
		baseURL: parsed,
		jar:     jar,
		http:    &http.Client{Jar: jar},
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// BaseURL returns the API root this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Cookies returns the upstream cookies currently held for the API origin.
func (c *Client) Cookies() []*http.Cookie {
	return c.jar.Cookies(c.baseURL)
}

// SetCookies seeds the jar, used when a persisted session is restored.
func (c *Client) SetCookies(cookies []*http.Cookie) {
	if len(cookies) == 0 {
		return
	}
	c.jar.SetCookies(c.baseURL, cookies)
}

func (c *Client) endpoint(path string) string {
	return c.baseURL.String() + path
}

// call sends one JSON request and returns the raw 2xx body.
func (c *Client) call(ctx context.Context, op, method, path string, payload any) (body []byte, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := c.tracer.Start(ctx, "devtinder.api "+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, op+" failed")
		}
		span.End()
	}()

	var reader io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, &Error{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), reader)
	if err != nil {
		return nil, &Error{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Op: op, Err: err}
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &Error{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    ExtractMessage(body),
			Body:       body,
		}
	}
	return body, nil
}

// emptyBody is sent where the API expects an empty JSON object.
var emptyBody = struct{}{}

// decodeList unwraps the array found at path in body.
func decodeList[T any](op string, body []byte, path string) ([]T, error) {
	result := gjson.GetBytes(body, path)
	if !result.IsArray() {
		return nil, &Error{Op: op, Err: fmt.Errorf("response field %q is not a list", path)}
	}
	items := make([]T, 0, len(result.Array()))
	if err := json.Unmarshal([]byte(result.Raw), &items); err != nil {
		return nil, &Error{Op: op, Err: fmt.Errorf("decode %q: %w", path, err)}
	}
	return items, nil
}

// decodeUser finds the user object in an auth response: the `user` field,
// then a `data` object, then the top-level body.
func decodeUser(op string, body []byte) (User, error) {
	raw := ""
	for _, path := range []string{"user", "data"} {
		if result := gjson.GetBytes(body, path); result.IsObject() {
			raw = result.Raw
			break
		}
	}
	if raw == "" {
		if parsed := gjson.ParseBytes(body); parsed.IsObject() {
			raw = parsed.Raw
		}
	}
	if raw == "" {
		return User{}, &Error{Op: op, Err: errors.New("response carries no user")}
	}
	var user User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return User{}, &Error{Op: op, Err: fmt.Errorf("decode user: %w", err)}
	}
	if user.Key() == "" {
		return User{}, &Error{Op: op, Err: errors.New("response user has no id")}
	}
	return user, nil
}
