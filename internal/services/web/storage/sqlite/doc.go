// Package sqlite provides the browser-session persistence adapter backed by
// SQLite.
package sqlite
