package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

const validationPrefix = "User validation failed:"

// Error describes a failed call to the DevTinder API. StatusCode is zero for
// transport failures, in which case Err holds the cause.
type Error struct {
	Op         string
	StatusCode int
	Message    string
	Body       []byte
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.StatusCode == 0 {
		return fmt.Sprintf("devtinder api %s: %v", e.Op, e.Err)
	}
	if e.Message == "" {
		return fmt.Sprintf("devtinder api %s: status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("devtinder api %s: status %d: %s", e.Op, e.StatusCode, e.Message)
}

// Unwrap exposes the transport cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StatusCode returns the upstream HTTP status carried by err, or zero.
func StatusCode(err error) int {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return 0
	}
	return apiErr.StatusCode
}

// IsUnauthorized reports whether the upstream rejected the session cookie.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// UserMessage returns the server-provided message for err, or fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		if message := strings.TrimSpace(apiErr.Message); message != "" {
			return message
		}
	}
	return fallback
}

// ExtractMessage pulls a human-readable message out of an error body. JSON
// objects contribute `message` then `error`; JSON strings and plain text are
// used as-is. Mongoose-style validation prefixes are stripped.
func ExtractMessage(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return ""
	}
	if gjson.Valid(text) {
		parsed := gjson.Parse(text)
		switch {
		case parsed.IsObject():
			text = ""
			for _, field := range []string{"message", "error"} {
				value := parsed.Get(field)
				if value.Type == gjson.String && strings.TrimSpace(value.String()) != "" {
					text = value.String()
					break
				}
			}
		case parsed.Type == gjson.String:
			text = parsed.String()
		default:
			text = ""
		}
	}
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, validationPrefix) {
		text = strings.TrimSpace(strings.TrimPrefix(text, validationPrefix))
	}
	return text
}
