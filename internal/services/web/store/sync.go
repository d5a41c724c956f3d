package store

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/devtinder/web/internal/services/web/api"
	"github.com/sourcegraph/conc"
)

// Fetcher loads one remote collection for the signed-in user.
type Fetcher[T any] func(ctx context.Context) ([]T, error)

// Binding couples a resource with the fetch that fills it.
type Binding struct {
	name       string
	invalidate func()
	begin      func() func(ctx context.Context) error
}

// Name returns the bound resource name.
func (b Binding) Name() string { return b.name }

// Bind returns the binding that refills resource with fetch.
func Bind[T any](resource *Resource[T], fetch Fetcher[T]) Binding {
	return Binding{
		name:       resource.Name(),
		invalidate: resource.Invalidate,
		begin: func() func(ctx context.Context) error {
			ticket := resource.Begin()
			return func(ctx context.Context) error {
				if !resource.Current(ticket) {
					return errSuperseded
				}
				items, err := fetch(ctx)
				if err != nil {
					resource.Fail(ticket)
					return err
				}
				if !resource.Apply(ticket, items) {
					return errSuperseded
				}
				return nil
			}
		},
	}
}

var errSuperseded = errors.New("fetch superseded")

// SyncerOption configures a Syncer.
type SyncerOption func(*Syncer)

// WithLogger sets the logger used for passive fetch failures.
func WithLogger(logger *log.Logger) SyncerOption {
	return func(s *Syncer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithContext sets the context background fetches run under.
func WithContext(ctx context.Context) SyncerOption {
	return func(s *Syncer) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}

// OnUnauthorized sets the hook called when a fetch for identity is rejected
// with 401.
func OnUnauthorized(fn func(identity string)) SyncerOption {
	return func(s *Syncer) {
		s.onUnauthorized = fn
	}
}

// Syncer keeps the store caches in step with the session identity.
type Syncer struct {
	store          *Store
	bindings       []Binding
	logger         *log.Logger
	ctx            context.Context
	onUnauthorized func(identity string)

	rounds sync.WaitGroup
}

// NewSyncer attaches a syncer to store. Identity changes on the store start
// a sync round in the background.
func NewSyncer(s *Store, bindings []Binding, opts ...SyncerOption) *Syncer {
	syncer := &Syncer{
		store:    s,
		bindings: append([]Binding(nil), bindings...),
		logger:   log.Default(),
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(syncer)
		}
	}
	s.observe(syncer.trigger)
	return syncer
}

// syncNow runs one round for identity and waits for every fetch to finish.
func (s *Syncer) syncNow(ctx context.Context, identity string) {
	s.run(ctx, identity, s.start(identity))
}

// Refresh refetches one resource for the current identity in the background.
// It reports false when no user is signed in or name is unknown. The identity
// lock is held until the fetch has its ticket, so a concurrent sign-out
// always supersedes it.
func (s *Syncer) Refresh(name string) bool {
	s.store.identityMu.Lock()
	defer s.store.identityMu.Unlock()

	identity := s.store.Session().Identity()
	if identity == "" {
		return false
	}
	for _, binding := range s.bindings {
		if binding.name != name {
			continue
		}
		fetch := binding.begin()
		s.spawn(identity, []namedFetch{{name: name, fetch: fetch}})
		return true
	}
	return false
}

// Wait blocks until every background round has finished.
func (s *Syncer) Wait() {
	s.rounds.Wait()
}

type namedFetch struct {
	name  string
	fetch func(ctx context.Context) error
}

func (s *Syncer) trigger(identity string) {
	s.spawn(identity, s.start(identity))
}

// start invalidates every bound cache and, when identity is present, returns
// the fetches that may repopulate them.
func (s *Syncer) start(identity string) []namedFetch {
	if identity == "" {
		for _, binding := range s.bindings {
			binding.invalidate()
		}
		return nil
	}
	fetches := make([]namedFetch, 0, len(s.bindings))
	for _, binding := range s.bindings {
		fetches = append(fetches, namedFetch{name: binding.name, fetch: binding.begin()})
	}
	return fetches
}

func (s *Syncer) spawn(identity string, fetches []namedFetch) {
	if len(fetches) == 0 {
		return
	}
	s.rounds.Add(1)
	go func() {
		defer s.rounds.Done()
		s.run(s.ctx, identity, fetches)
	}()
}

func (s *Syncer) run(ctx context.Context, identity string, fetches []namedFetch) {
	var wg conc.WaitGroup
	for _, f := range fetches {
		wg.Go(func() {
			err := f.fetch(ctx)
			switch {
			case err == nil:
			case errors.Is(err, errSuperseded):
				s.logger.Printf("sync fetch discarded resource=%s identity=%s", f.name, identity)
			default:
				s.logger.Printf("sync fetch failed resource=%s identity=%s err=%v", f.name, identity, err)
				if api.IsUnauthorized(err) && s.onUnauthorized != nil {
					s.onUnauthorized(identity)
				}
			}
		})
	}
	wg.Wait()
}
