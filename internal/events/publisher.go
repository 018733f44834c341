package events

import (
	"sort"
	"sync"

	"github.com/carouselkit/carousel/internal/logger"
)

// Handler processes an event of a specific type. Handlers should avoid
// panicking; dispatch is synchronous so a slow handler delays the slider.
type Handler func(Event)

// Subscription represents a registered handler. Callers must invoke
// Unsubscribe to stop receiving events.
type Subscription interface {
	Unsubscribe()
}

// Publisher distributes slider events to subscribers in registration order.
// Publish blocks until all handlers run, which preserves the slide-set /
// slide-complete ordering guarantee for observers. Each event is also
// written as a structured log entry.
type Publisher struct {
	log    *logger.Logger
	subs   map[string][]subscriptionEntry
	nextID int
	mu     sync.RWMutex
}

// NewPublisher creates an event publisher backed by the structured logger.
func NewPublisher(log *logger.Logger) *Publisher {
	return &Publisher{
		log:  log,
		subs: make(map[string][]subscriptionEntry),
	}
}

// Publish logs the event and dispatches it to subscribers of its type.
func (p *Publisher) Publish(event Event) {
	if p == nil || event == nil {
		return
	}

	p.mu.RLock()
	handlers := append([]subscriptionEntry(nil), p.subs[event.EventType()]...)
	p.mu.RUnlock()

	fields := map[string]any{"event_type": event.EventType()}
	payload := event.Payload()
	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fields[key] = payload[key]
	}
	p.log.WithFields(fields).Debug("slider event")

	for _, entry := range handlers {
		if entry.handler == nil {
			continue
		}
		entry.handler(event)
	}
}

// Subscribe registers a handler for the provided event type.
func (p *Publisher) Subscribe(eventType string, handler Handler) Subscription {
	if p == nil || handler == nil {
		return noopSubscription{}
	}

	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.subs[eventType] = append(p.subs[eventType], subscriptionEntry{id: id, handler: handler})
	p.mu.Unlock()

	return subscription{
		cancel: func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			handlers := p.subs[eventType]
			for i, entry := range handlers {
				if entry.id == id {
					p.subs[eventType] = append(handlers[:i], handlers[i+1:]...)
					break
				}
			}
		},
	}
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	cancel func()
}

func (s subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

type subscriptionEntry struct {
	id      int
	handler Handler
}
