// Package bus is the in-process change notification channel between the
// storefront aggregates and whatever views observe them. It replaces the
// window-level cartUpdated CustomEvent of the browser storefront with an
// explicit subscription owned by the aggregates: same-process, synchronous,
// delivered in subscription order after the storage write lands.
package bus

import "sync"

// Topic names published by the aggregates. CartUpdated carries the updated
// []models.CartLine as payload, the other two signal a re-read.
const (
	TopicCartUpdated   = "cartUpdated"
	TopicMenuUpdated   = "menuUpdated"
	TopicOrdersUpdated = "ordersUpdated"
)

// Handler receives the event payload. Handlers run on the publisher's
// goroutine and should return quickly.
type Handler func(payload any)

type subscription struct {
	fn     Handler
	active bool
}

type Bus struct {
	mu     sync.Mutex
	topics map[string][]*subscription
}

func New() *Bus {
	return &Bus{topics: make(map[string][]*subscription)}
}

// Subscribe attaches fn to topic and returns the detach function. Detaching is
// idempotent and safe to call from inside a handler while the same topic is
// being dispatched.
func (b *Bus) Subscribe(topic string, fn Handler) (unsubscribe func()) {
	sub := &subscription{fn: fn, active: true}

	b.mu.Lock()
	b.topics[topic] = append(b.topics[topic], sub)
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		sub.active = false
		subs := b.topics[topic]
		for i, candidate := range subs {
			if candidate == sub {
				b.topics[topic] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers payload to every subscriber of topic, synchronously, in
// subscription order. Subscribers removed mid-dispatch are skipped. Publishing
// to a topic with no subscribers is a no-op.
func (b *Bus) Publish(topic string, payload any) {
	b.mu.Lock()
	subs := make([]*subscription, len(b.topics[topic]))
	copy(subs, b.topics[topic])
	b.mu.Unlock()

	for _, sub := range subs {
		b.mu.Lock()
		active := sub.active
		b.mu.Unlock()
		if !active {
			continue
		}
		sub.fn(payload)
	}
}
