// Package flash carries one notice across a redirect for visitors without a
// web session, such as the login page after sign-out.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/devtinder/web/internal/services/web/platform/requestmeta"
)

// CookieName is the one-time notice cookie.
const CookieName = "devtinder_flash"

// Kind classifies notice presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindError   Kind = "error"
)

// Notice references one localized message.
type Notice struct {
	Kind Kind   `json:"kind"`
	Key  string `json:"key"`
}

// Info creates an informational notice for key.
func Info(key string) Notice {
	return Notice{Kind: KindInfo, Key: key}
}

// Write stores notice for the next page render.
func Write(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy, notice Notice) {
	if w == nil {
		return
	}
	notice, ok := notice.normalized()
	if !ok {
		return
	}
	payload, err := json.Marshal(notice)
	if err != nil {
		return
	}
	setCookie(w, r, policy, base64.RawURLEncoding.EncodeToString(payload), 0)
}

// ReadAndClear returns the pending notice, expiring the cookie whenever one
// was sent, valid or not.
func ReadAndClear(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) (Notice, bool) {
	if r == nil {
		return Notice{}, false
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Notice{}, false
	}
	if w != nil {
		setCookie(w, r, policy, "", -1)
	}
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(cookie.Value))
	if err != nil {
		return Notice{}, false
	}
	var notice Notice
	if err := json.Unmarshal(decoded, &notice); err != nil {
		return Notice{}, false
	}
	return notice.normalized()
}

func (n Notice) normalized() (Notice, bool) {
	n.Key = strings.TrimSpace(n.Key)
	n.Kind = Kind(strings.ToLower(strings.TrimSpace(string(n.Kind))))
	if n.Key == "" {
		return Notice{}, false
	}
	switch n.Kind {
	case KindSuccess, KindInfo, KindError:
		return n, true
	default:
		return Notice{}, false
	}
}

func setCookie(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, policy),
		SameSite: http.SameSiteLaxMode,
	})
}
