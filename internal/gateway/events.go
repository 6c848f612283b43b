package gateway

import (
	"sync"

	"contractreview/internal/conversation"
)

// eventHub fans conversation stream events out to websocket subscribers.
// Slow subscribers drop events instead of blocking the streaming goroutine.
type eventHub struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan conversation.StreamEvent
}

func newEventHub() *eventHub {
	return &eventHub{subs: map[int]chan conversation.StreamEvent{}}
}

func (h *eventHub) Subscribe() (<-chan conversation.StreamEvent, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	ch := make(chan conversation.StreamEvent, 256)
	h.subs[id] = ch
	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (h *eventHub) Publish(ev conversation.StreamEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, sub := range h.subs {
		select {
		case sub <- ev:
		default:
		}
	}
}
