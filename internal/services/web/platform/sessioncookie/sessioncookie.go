// Package sessioncookie centralizes the browser session cookie. The cookie
// value is an HS256 JWT whose subject is the web session id.
package sessioncookie

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/devtinder/web/internal/services/web/platform/requestmeta"
)

// Name is the canonical web session cookie name.
const Name = "devtinder_session"

const issuer = "devtinder-web"

// DefaultTTL bounds how long a signed session cookie is accepted.
const DefaultTTL = 7 * 24 * time.Hour

// ErrInvalid reports a missing, tampered or expired session cookie.
var ErrInvalid = errors.New("invalid session cookie")

// Codec signs and verifies session cookies.
type Codec struct {
	secret []byte
	ttl    time.Duration
	policy requestmeta.SchemePolicy
	now    func() time.Time
}

// Option customizes a Codec.
type Option func(*Codec)

// WithTTL overrides DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(c *Codec) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithPolicy sets the scheme policy used for the Secure attribute.
func WithPolicy(policy requestmeta.SchemePolicy) Option {
	return func(c *Codec) { c.policy = policy }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		if now != nil {
			c.now = now
		}
	}
}

// NewCodec returns a codec signing with secret.
func NewCodec(secret []byte, opts ...Option) (*Codec, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("session secret is required")
	}
	c := &Codec{
		secret: append([]byte(nil), secret...),
		ttl:    DefaultTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// Encode signs sessionID into a cookie value.
func (c *Codec) Encode(sessionID string) (string, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return "", fmt.Errorf("session id is required")
	}
	now := c.now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode verifies value and returns the session id it carries.
func (c *Codec) Decode(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", ErrInvalid
	}
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(value, claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", ErrInvalid
	}
	return claims.Subject, nil
}

// Read returns the verified session id carried by r.
func (c *Codec) Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	sessionID, err := c.Decode(cookie.Value)
	if err != nil {
		return "", false
	}
	return sessionID, true
}

// Write sets the signed session cookie.
func (c *Codec) Write(w http.ResponseWriter, r *http.Request, sessionID string) error {
	if w == nil {
		return nil
	}
	value, err := c.Encode(sessionID)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(c.ttl / time.Second),
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, c.policy),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the session cookie.
func (c *Codec) Clear(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, c.policy),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
