// Package notify provides a small in-process observer registry.
package notify

import (
	"slices"
	"sync"
)

// Notifier fans out values to registered observers. The zero value is ready
// to use and safe for concurrent use.
type Notifier[T any] struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[uint64]func(T)
}

// Subscribe registers fn and returns a function that removes it. The returned
// function may be called more than once.
func (n *Notifier[T]) Subscribe(fn func(T)) (stop func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subs == nil {
		n.subs = make(map[uint64]func(T))
	}

	id := n.nextID
	n.nextID++
	n.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, id)
			n.mu.Unlock()
		})
	}
}

// Notify calls every registered observer with v in registration order.
// Observers run on the caller's goroutine without the registry lock held, so
// they may subscribe or unsubscribe.
func (n *Notifier[T]) Notify(v T) {
	n.mu.Lock()
	ids := make([]uint64, 0, len(n.subs))
	for id := range n.subs {
		ids = append(ids, id)
	}
	n.mu.Unlock()

	slices.Sort(ids)

	for _, id := range ids {
		n.mu.Lock()
		fn, ok := n.subs[id]
		n.mu.Unlock()
		if ok {
			fn(v)
		}
	}
}
