package event

import (
	"time"

	"github.com/herob4u/VRShowcase/core"
)

// Handler receives published events
type Handler func(Event)

// Clock supplies the publication timestamp
type Clock interface {
	Now() time.Duration
}

// Bus is the per-entity notification surface
//
// Architecture:
//   - One bus per prop, lifetime equals the prop
//   - Synchronous dispatch on the publishing goroutine (the tick goroutine)
//   - Handlers run in subscription order
//   - Props publish after their own state is updated, so handlers observe the new state
type Bus struct {
	entity   core.Entity
	clock    Clock
	handlers map[EventType][]Handler
}

// NewBus creates a bus stamping events with entity and clock time
func NewBus(entity core.Entity, clock Clock) *Bus {
	return &Bus{
		entity:   entity,
		clock:    clock,
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe registers h for t
func (b *Bus) Subscribe(t EventType, h Handler) {
	if h == nil {
		return
	}
	b.handlers[t] = append(b.handlers[t], h)
}

// SubscribeAll registers h for every event type
func (b *Bus) SubscribeAll(h Handler) {
	for t := EventType(0); t < eventTypeCount; t++ {
		b.Subscribe(t, h)
	}
}

// Publish dispatches t to all handlers
func (b *Bus) Publish(t EventType) {
	handlers := b.handlers[t]
	if len(handlers) == 0 {
		return
	}
	var now time.Duration
	if b.clock != nil {
		now = b.clock.Now()
	}
	ev := Event{Type: t, Entity: b.entity, Time: now}
	for _, h := range handlers {
		h(ev)
	}
}

// HandlerCount returns the number of handlers registered for t
func (b *Bus) HandlerCount(t EventType) int {
	return len(b.handlers[t])
}
