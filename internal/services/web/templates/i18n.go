package templates

import (
	"fmt"

	"golang.org/x/text/message"
)

// Localizer provides translated strings for page components. *message.Printer
// satisfies it.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T translates a catalog key. Without a localizer a string key is formatted
// as-is, so pages stay readable in tests and degraded paths.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	if keyString, ok := key.(string); ok {
		if len(args) > 0 {
			return fmt.Sprintf(keyString, args...)
		}
		return keyString
	}
	return ""
}
