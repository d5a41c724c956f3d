// Package storage declares persistence for browser-session records.
//
// Only what is needed to resume a session after a restart is stored: the
// upstream API cookies and the signed-in user. Remote collections are never
// persisted; a resumed session refetches them.
package storage
