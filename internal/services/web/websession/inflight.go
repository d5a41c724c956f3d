package websession

import "sync"

// Inflight tracks actions that must not run twice at once for the same key.
type Inflight struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

// TryBegin marks key as in flight. It returns false when key is already in
// flight; otherwise done must be called when the action finishes.
func (f *Inflight) TryBegin(key string) (done func(), ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.keys == nil {
		f.keys = map[string]struct{}{}
	}
	if _, busy := f.keys[key]; busy {
		return nil, false
	}
	f.keys[key] = struct{}{}
	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.keys, key)
			f.mu.Unlock()
		})
	}, true
}

// Pending reports whether key is in flight.
func (f *Inflight) Pending(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, busy := f.keys[key]
	return busy
}
