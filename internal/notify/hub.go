package notify

import "sync"

const subscriberBuffer = 16

// Hub is a Notifier that fans notifications out to live subscribers, typically
// SSE connections. It is safe for concurrent use. A subscriber that falls
// behind has notifications dropped rather than blocking the publisher.
type Hub struct {
	mu     sync.Mutex
	subs   map[int]chan Notification
	nextID int
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan Notification)}
}

// Subscribe registers a new subscriber and returns its channel together with a
// cancel function. The channel is closed when cancel is called.
func (h *Hub) Subscribe() (<-chan Notification, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan Notification, subscriberBuffer)
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if c, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

// Notify delivers n to every subscriber without blocking.
func (h *Hub) Notify(n Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- n:
		default:
			// Subscriber buffer full; drop for this subscriber.
		}
	}
}

// SubscriberCount returns the number of live subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
