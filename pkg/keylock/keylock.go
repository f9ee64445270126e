package keylock

import "sync"

// Mutex serializes work per string key. Batch generation locks on
// (resinType, date) and dispatch/lifecycle lock on the unit id, so the
// destructive rebuild and per-allocation dispatch stay at-most-once.
type Mutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New() *Mutex { return &Mutex{locks: map[string]*sync.Mutex{}} }

// Lock acquires the named lock and returns its unlock func:
//
//	defer m.Lock(key)()
func (m *Mutex) Lock(key string) func() {
	m.mu.Lock()
	l, ok := m.locks[key]
	if !ok {
		l = &sync.Mutex{}
		m.locks[key] = l
	}
	m.mu.Unlock()
	l.Lock()
	return l.Unlock
}
