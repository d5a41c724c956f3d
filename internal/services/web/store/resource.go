package store

import "sync"

// Ticket identifies one fetch started by Resource.Begin.
type Ticket struct {
	resource   string
	generation uint64
}

// Generation returns the generation the fetch was started under.
func (t Ticket) Generation() uint64 { return t.generation }

// Change describes a resource state transition.
type Change struct {
	Resource string
	Status   Status
	Len      int
}

// Resource is a keyed remote collection guarded by a request generation.
type Resource[T any] struct {
	name string
	key  KeyFunc[T]

	mu         sync.Mutex
	state      Cache[T]
	generation uint64
	pending    bool
	notify     func(Change)
}

// NewResource returns an Unloaded resource.
func NewResource[T any](name string, key KeyFunc[T]) *Resource[T] {
	return &Resource[T]{name: name, key: key}
}

// Name returns the resource name.
func (r *Resource[T]) Name() string { return r.name }

// Snapshot returns the current cache value.
func (r *Resource[T]) Snapshot() Cache[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Generation returns the current request generation.
func (r *Resource[T]) Generation() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.generation
}

// Pending reports whether a fetch for the current generation is outstanding.
func (r *Resource[T]) Pending() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending
}

// Current reports whether ticket still matches the latest generation.
func (r *Resource[T]) Current(ticket Ticket) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return ticket.resource == r.name && ticket.generation == r.generation
}

// Invalidate resets the cache to Unloaded and supersedes any fetch in flight.
func (r *Resource[T]) Invalidate() {
	r.mu.Lock()
	r.generation++
	r.pending = false
	change := r.transitionLocked(Invalidate[T]())
	r.mu.Unlock()
	r.emit(change)
}

// Begin invalidates the cache and returns the ticket for the one fetch that
// may populate it.
func (r *Resource[T]) Begin() Ticket {
	r.mu.Lock()
	r.generation++
	r.pending = true
	ticket := Ticket{resource: r.name, generation: r.generation}
	change := r.transitionLocked(Invalidate[T]())
	r.mu.Unlock()
	r.emit(change)
	return ticket
}

// Apply populates the cache with a fetch result. It reports false and leaves
// the cache untouched when ticket has been superseded.
func (r *Resource[T]) Apply(ticket Ticket, items []T) bool {
	r.mu.Lock()
	if ticket.resource != r.name || ticket.generation != r.generation {
		r.mu.Unlock()
		return false
	}
	r.pending = false
	change := r.transitionLocked(Populate(items))
	r.mu.Unlock()
	r.emit(change)
	return true
}

// Fail resets the cache to Unloaded after a failed fetch, unless ticket has
// been superseded.
func (r *Resource[T]) Fail(ticket Ticket) bool {
	r.mu.Lock()
	if ticket.resource != r.name || ticket.generation != r.generation {
		r.mu.Unlock()
		return false
	}
	r.pending = false
	change := r.transitionLocked(Invalidate[T]())
	r.mu.Unlock()
	r.emit(change)
	return true
}

// Remove drops the item keyed by id. It reports whether an item was removed.
func (r *Resource[T]) Remove(id string) bool {
	r.mu.Lock()
	before := r.state.Len()
	change := r.transitionLocked(Remove[T](id))
	removed := r.state.Len() != before
	r.mu.Unlock()
	if removed {
		r.emit(change)
	}
	return removed
}

func (r *Resource[T]) transitionLocked(action Action[T]) Change {
	r.state = Reduce(r.state, action, r.key)
	return Change{Resource: r.name, Status: r.state.status, Len: len(r.state.items)}
}

func (r *Resource[T]) setNotify(fn func(Change)) {
	r.mu.Lock()
	r.notify = fn
	r.mu.Unlock()
}

func (r *Resource[T]) emit(change Change) {
	r.mu.Lock()
	fn := r.notify
	r.mu.Unlock()
	if fn != nil {
		fn(change)
	}
}
