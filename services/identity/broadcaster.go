package identity

import (
	"sync"

	"hoteladmin/models"
)

// AuthEvent is delivered to OnAuthStateChanged listeners. Principal is set for
// both sign-in and sign-out so listeners know whose state changed.
type AuthEvent struct {
	Principal models.Principal
	SignedIn  bool
}

// Broadcaster fans auth-state events out to subscribers.
type Broadcaster struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]func(AuthEvent)
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{listeners: make(map[int]func(AuthEvent))}
}

// OnAuthStateChanged registers fn and returns a function that removes it.
// Calling the returned function more than once has no further effect.
func (b *Broadcaster) OnAuthStateChanged(fn func(AuthEvent)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.listeners, id)
			b.mu.Unlock()
		})
	}
}

// Publish calls every listener synchronously, outside the lock.
func (b *Broadcaster) Publish(event AuthEvent) {
	b.mu.Lock()
	fns := make([]func(AuthEvent), 0, len(b.listeners))
	for _, fn := range b.listeners {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(event)
	}
}

// Listeners returns the number of active subscriptions.
func (b *Broadcaster) Listeners() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}
