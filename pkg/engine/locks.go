package engine

import "sync"

// caseLocks serialises turn processing per case. A case processes one
// turn at a time; different cases proceed in parallel.
type caseLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newCaseLocks() *caseLocks {
	return &caseLocks{locks: make(map[string]*sync.Mutex)}
}

// Locked runs fn while holding the per-case turn lock, so out-of-band
// state mutations serialise with turn processing.
func (e *Engine) Locked(caseID string, fn func() error) error {
	unlock := e.locks.acquire(caseID)
	defer unlock()
	return fn()
}

// acquire blocks until the per-case lock is held and returns the
// unlock function.
func (l *caseLocks) acquire(caseID string) func() {
	l.mu.Lock()
	lock, ok := l.locks[caseID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[caseID] = lock
	}
	l.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
