// Package module defines the feature contract used by web composition.
package module

import "net/http"

// Mount describes a module route mount.
type Mount struct {
	Prefix string
	// Aliases are extra patterns served by the same handler, such as an
	// exact-match landing page outside Prefix.
	Aliases []string
	Handler http.Handler
}

// Patterns returns Prefix followed by Aliases, skipping blanks.
func (m Mount) Patterns() []string {
	patterns := make([]string, 0, 1+len(m.Aliases))
	if m.Prefix != "" {
		patterns = append(patterns, m.Prefix)
	}
	for _, alias := range m.Aliases {
		if alias != "" {
			patterns = append(patterns, alias)
		}
	}
	return patterns
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is an optional interface for modules that can report their
// operational availability. Modules with gateway dependencies implement this
// so the registry can derive service health without centralizing client knowledge.
type HealthReporter interface {
	Healthy() bool
}
