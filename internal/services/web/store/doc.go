// Package store holds the per-session client state mirrored from the
// DevTinder API: the signed-in user and three remote collections (feed,
// connections, pending requests).
//
// Each collection is a Cache that is always exactly one of Unloaded, Empty or
// Populated. Transitions are pure reducer functions over immutable Cache
// values; Resource wraps a Cache with a generation counter so that a fetch
// response only lands if no newer invalidation happened while it was in
// flight. Syncer is the controller that reacts to identity changes by
// invalidating every cache and refetching them for the new identity.
package store
