// internal/events/locks.go
package events

import (
	"sync"

	"github.com/google/uuid"
)

// eventLocks hands out one mutex per event id so admission checks and the
// following insert run as a unit within this process.
type eventLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newEventLocks() *eventLocks {
	return &eventLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

func (l *eventLocks) get(id uuid.UUID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	return m
}

// forget drops the mutex for an event that no longer exists.
func (l *eventLocks) forget(id uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.locks, id)
}
