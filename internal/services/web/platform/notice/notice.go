// Package notice keeps the transient notifications shown to one browser
// session. Every notice dismisses itself after DismissAfter.
package notice

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DismissAfter is how long a notice stays visible.
const DismissAfter = 3 * time.Second

// Kind selects notice presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Notice is one visible notification.
type Notice struct {
	ID      string
	Kind    Kind
	Message string
}

// Event reports a notice being shown or dismissed.
type Event struct {
	Notice    Notice
	Dismissed bool
}

// Timer is the subset of *time.Timer the center needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules fn after d.
type AfterFunc func(d time.Duration, fn func()) Timer

// Option customizes a Center.
type Option func(*Center)

// WithAfterFunc replaces time.AfterFunc, mostly for tests.
func WithAfterFunc(fn AfterFunc) Option {
	return func(c *Center) {
		if fn != nil {
			c.afterFunc = fn
		}
	}
}

type entry struct {
	notice Notice
	timer  Timer
}

// Center holds the visible notices of one session.
type Center struct {
	afterFunc AfterFunc

	mu        sync.Mutex
	entries   []entry
	listeners map[int]func(Event)
	nextID    int
	closed    bool
}

// NewCenter returns an empty center.
func NewCenter(opts ...Option) *Center {
	c := &Center{
		afterFunc: func(d time.Duration, fn func()) Timer { return time.AfterFunc(d, fn) },
		listeners: map[int]func(Event){},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Show makes a notice visible and schedules its dismissal.
func (c *Center) Show(kind Kind, message string) Notice {
	n := Notice{ID: uuid.NewString(), Kind: kind, Message: strings.TrimSpace(message)}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return n
	}
	timer := c.afterFunc(DismissAfter, func() { c.Dismiss(n.ID) })
	c.entries = append(c.entries, entry{notice: n, timer: timer})
	c.mu.Unlock()
	c.emit(Event{Notice: n})
	return n
}

// Success shows a success notice.
func (c *Center) Success(message string) Notice { return c.Show(KindSuccess, message) }

// Error shows an error notice.
func (c *Center) Error(message string) Notice { return c.Show(KindError, message) }

// Dismiss hides the notice with id. It reports whether it was visible.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	idx := -1
	for i, e := range c.entries {
		if e.notice.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return false
	}
	removed := c.entries[idx]
	c.entries = append(c.entries[:idx:idx], c.entries[idx+1:]...)
	c.mu.Unlock()

	if removed.timer != nil {
		removed.timer.Stop()
	}
	c.emit(Event{Notice: removed.notice, Dismissed: true})
	return true
}

// Active returns the visible notices, oldest first.
func (c *Center) Active() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notice, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e.notice)
	}
	return out
}

// Subscribe registers fn for show and dismiss events.
func (c *Center) Subscribe(fn func(Event)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// Close stops pending timers and drops every notice.
func (c *Center) Close() {
	c.mu.Lock()
	entries := c.entries
	c.entries = nil
	c.closed = true
	c.mu.Unlock()
	for _, e := range entries {
		if e.timer != nil {
			e.timer.Stop()
		}
	}
}

func (c *Center) emit(event Event) {
	c.mu.Lock()
	fns := make([]func(Event), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	c.mu.Unlock()
	for _, fn := range fns {
		fn(event)
	}
}
