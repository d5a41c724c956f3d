package store

// Status is the load state of a cache.
type Status uint8

const (
	// StatusUnloaded means no successful fetch exists for the current identity.
	StatusUnloaded Status = iota
	// StatusEmpty means the last fetch succeeded with zero items.
	StatusEmpty
	// StatusPopulated means the cache holds at least one item.
	StatusPopulated
)

// String returns the status name used in logs and live events.
func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "empty"
	case StatusPopulated:
		return "populated"
	default:
		return "unloaded"
	}
}

// RenderState is what a screen shows for a cache.
type RenderState string

const (
	RenderLoading   RenderState = "loading"
	RenderEmpty     RenderState = "empty"
	RenderPopulated RenderState = "populated"
)

// KeyFunc extracts the identifier used to remove one item.
type KeyFunc[T any] func(T) string

// Cache is an immutable snapshot of one remote collection.
type Cache[T any] struct {
	status Status
	items  []T
}

// Status reports the load state.
func (c Cache[T]) Status() Status { return c.status }

// Loaded reports whether a fetch has landed for the current identity.
func (c Cache[T]) Loaded() bool { return c.status != StatusUnloaded }

// RenderState derives the screen state purely from the cache content.
func (c Cache[T]) RenderState() RenderState {
	switch c.status {
	case StatusEmpty:
		return RenderEmpty
	case StatusPopulated:
		return RenderPopulated
	default:
		return RenderLoading
	}
}

// Len returns the number of cached items.
func (c Cache[T]) Len() int { return len(c.items) }

// Items returns a copy of the cached items in order.
func (c Cache[T]) Items() []T {
	if len(c.items) == 0 {
		return nil
	}
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Head returns the first queued item.
func (c Cache[T]) Head() (T, bool) {
	var zero T
	if len(c.items) == 0 {
		return zero, false
	}
	return c.items[0], true
}

// Contains reports whether an item with id is cached.
func (c Cache[T]) Contains(id string, key KeyFunc[T]) bool {
	if key == nil {
		return false
	}
	for _, item := range c.items {
		if key(item) == id {
			return true
		}
	}
	return false
}

// ActionKind enumerates cache transitions.
type ActionKind uint8

const (
	ActionInvalidate ActionKind = iota
	ActionPopulate
	ActionRemove
)

// Action is one cache transition request.
type Action[T any] struct {
	Kind  ActionKind
	Items []T
	ID    string
}

// Invalidate builds the action that resets a cache to Unloaded.
func Invalidate[T any]() Action[T] {
	return Action[T]{Kind: ActionInvalidate}
}

// Populate builds the action that stores a fetched collection.
func Populate[T any](items []T) Action[T] {
	return Action[T]{Kind: ActionPopulate, Items: items}
}

// Remove builds the action that drops the item with id.
func Remove[T any](id string) Action[T] {
	return Action[T]{Kind: ActionRemove, ID: id}
}

// Reduce returns the cache state after applying action to state. state is
// never modified.
func Reduce[T any](state Cache[T], action Action[T], key KeyFunc[T]) Cache[T] {
	switch action.Kind {
	case ActionInvalidate:
		return Cache[T]{}
	case ActionPopulate:
		if len(action.Items) == 0 {
			return Cache[T]{status: StatusEmpty}
		}
		items := make([]T, len(action.Items))
		copy(items, action.Items)
		return Cache[T]{status: StatusPopulated, items: items}
	case ActionRemove:
		return removeItem(state, action.ID, key)
	default:
		return state
	}
}

func removeItem[T any](state Cache[T], id string, key KeyFunc[T]) Cache[T] {
	if state.status != StatusPopulated || key == nil {
		return state
	}
	kept := make([]T, 0, len(state.items))
	for _, item := range state.items {
		if key(item) == id {
			continue
		}
		kept = append(kept, item)
	}
	if len(kept) == len(state.items) {
		return state
	}
	if len(kept) == 0 {
		return Cache[T]{status: StatusEmpty}
	}
	return Cache[T]{status: StatusPopulated, items: kept}
}

// Invalidate returns the Unloaded cache.
func (c Cache[T]) Invalidate() Cache[T] {
	return Reduce(c, Invalidate[T](), nil)
}

// Populate returns the cache holding items.
func (c Cache[T]) Populate(items []T) Cache[T] {
	return Reduce(c, Populate(items), nil)
}

// Remove returns the cache without the item whose key is id.
func (c Cache[T]) Remove(id string, key KeyFunc[T]) Cache[T] {
	return Reduce(c, Remove[T](id), key)
}
