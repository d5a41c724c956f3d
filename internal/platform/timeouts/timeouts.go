// Package timeouts defines shared timeout constants for the web process.
//
// Upstream DevTinder API calls deliberately carry no timeout: a hanging call
// leaves its cache Unloaded and the page keeps showing its loading state.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// LiveWrite caps a single websocket frame write to a browser tab.
const LiveWrite = 10 * time.Second

// LivePing is the interval between websocket keepalive pings.
const LivePing = 30 * time.Second

// LiveIdle drops a websocket whose peer has not answered a ping in time.
const LiveIdle = 60 * time.Second

// SessionIdle discards browser sessions not seen for this long. It matches
// the signed cookie lifetime.
const SessionIdle = 7 * 24 * time.Hour

// SessionPrune is the interval between idle-session sweeps.
const SessionPrune = 10 * time.Minute
