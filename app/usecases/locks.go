package usecases

import "sync"

// resourceLocks hands out one mutex per resource id so that
// check-then-insert admission is serialized per resource while requests
// against different resources proceed independently.
type resourceLocks struct {
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func newResourceLocks() *resourceLocks {
	return &resourceLocks{locks: make(map[int]*sync.Mutex)}
}

func (l *resourceLocks) get(resourceID int) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[resourceID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[resourceID] = lock
	}
	return lock
}
