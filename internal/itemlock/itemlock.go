// Package itemlock provides mutual exclusion scoped to a single item's
// identity, so writers to the same item serialize while writers to different
// items proceed concurrently. The bidding engine and the lifecycle controller
// share one Locker per store.
package itemlock

import "sync"

// Locker hands out one mutex per item key. Locks are never removed; the set
// of items is small and grows only when admins create new lots.
type Locker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewLocker creates an empty Locker.
func NewLocker() *Locker {
	return &Locker{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for the given item, creating it on first use.
func (l *Locker) Lock(itemID string) {
	l.mutexFor(itemID).Lock()
}

// Unlock releases the mutex for the given item.
func (l *Locker) Unlock(itemID string) {
	l.mutexFor(itemID).Unlock()
}

func (l *Locker) mutexFor(itemID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[itemID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[itemID] = m
	}
	return m
}
