package runtime

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type ListenerID = uuid.UUID

type listenerEntry[T any] struct {
	id       ListenerID
	listener T
}

// listenerList is a copy-on-write list of listeners.
// Writers serialize on mu and publish a fresh slice; readers take the
// current slice without locking and never observe a partial update.
type listenerList[T any] struct {
	mu      sync.Mutex
	entries atomic.Pointer[[]listenerEntry[T]]
}

func (l *listenerList[T]) add(listener T) ListenerID {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := uuid.New()
	current := l.snapshot()
	next := make([]listenerEntry[T], len(current), len(current)+1)
	copy(next, current)
	next = append(next, listenerEntry[T]{id: id, listener: listener})
	l.entries.Store(&next)
	return id
}

func (l *listenerList[T]) remove(id ListenerID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	current := l.snapshot()
	next := lo.Reject(current, func(e listenerEntry[T], _ int) bool {
		return e.id == id
	})
	if len(next) == len(current) {
		return false
	}
	l.entries.Store(&next)
	return true
}

// snapshot returns the slice in registration order. It must not be modified.
func (l *listenerList[T]) snapshot() []listenerEntry[T] {
	if p := l.entries.Load(); p != nil {
		return *p
	}
	return nil
}

func (l *listenerList[T]) len() int {
	return len(l.snapshot())
}
