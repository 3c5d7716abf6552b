package eventbus

import "sync"

// Event represents an arbitrary event passed on the bus.
type Event interface{}

// Handler receives published events.
type Handler func(Event)

// EventBus implements a simple synchronous publish/subscribe event bus.
type EventBus interface {
	Publish(Event)
	// Subscribe registers h and returns a function removing it.
	Subscribe(h Handler) (unsubscribe func())
	Close()
}

type subscription struct {
	id int
	h  Handler
}

// Bus is the default EventBus. Handlers run on the publishing goroutine in
// subscription order, so publishing returns only after every handler ran.
type Bus struct {
	mu     sync.RWMutex
	subs   []subscription
	nextID int
	closed bool
}

// New creates a new Bus.
func New() *Bus { return &Bus{} }

// Publish delivers the event to all subscribers. Publishing on a closed bus
// is a no-op.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return
	}
	subs := append([]subscription(nil), b.subs...)
	b.mu.RUnlock()
	for _, s := range subs {
		s.h(e)
	}
}

// Subscribe registers a handler. Subscribing to a closed bus returns a no-op
// unsubscribe function and the handler is never called.
func (b *Bus) Subscribe(h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed || h == nil {
		return func() {}
	}
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, h: h})
	return func() { b.unsubscribe(id) }
}

func (b *Bus) unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Close drops all subscribers. Later publishes are ignored.
func (b *Bus) Close() {
	b.mu.Lock()
	b.closed = true
	b.subs = nil
	b.mu.Unlock()
}
