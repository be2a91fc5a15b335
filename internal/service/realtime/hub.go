// Package realtime fans database change events out to SSE clients and in-process subscribers.
package realtime

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/pkg/logger"
)

const subscriberBuffer = 32

// Subscription receives the events of one table, or of every table when Table is empty
type Subscription struct {
	ID     string
	Table  string
	Events <-chan domain.ChangeEvent

	events chan domain.ChangeEvent
}

// Hub is the in-process change feed. Slow subscribers lose events instead of blocking Publish.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]*Subscription
	handlers    []func(domain.ChangeEvent)
	closed      bool
	logger      logger.Logger
}

func NewHub(logger logger.Logger) *Hub {
	return &Hub{
		subscribers: make(map[string]*Subscription),
		logger:      logger,
	}
}

// Subscribe registers a channel subscriber; call Unsubscribe when the client goes away.
// After Close the returned subscription is already closed.
func (h *Hub) Subscribe(table string) *Subscription {
	events := make(chan domain.ChangeEvent, subscriberBuffer)
	sub := &Subscription{
		ID:     uuid.New().String(),
		Table:  table,
		Events: events,
		events: events,
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(events)
		return sub
	}
	h.subscribers[sub.ID] = sub
	h.mu.Unlock()

	h.logger.WithFields(map[string]interface{}{
		"subscriber_id": sub.ID,
		"table":         table,
	}).Debug("Realtime subscriber added")
	return sub
}

func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subscribers[sub.ID]; !ok {
		return
	}
	delete(h.subscribers, sub.ID)
	close(sub.events)
}

// OnChange registers a synchronous handler called for every published event
func (h *Hub) OnChange(handler func(domain.ChangeEvent)) {
	h.mu.Lock()
	h.handlers = append(h.handlers, handler)
	h.mu.Unlock()
}

func (h *Hub) Publish(_ context.Context, event domain.ChangeEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, handler := range h.handlers {
		handler(event)
	}

	for _, sub := range h.subscribers {
		if sub.Table != "" && sub.Table != event.Table {
			continue
		}
		select {
		case sub.events <- event:
		default:
			h.logger.WithFields(map[string]interface{}{
				"subscriber_id": sub.ID,
				"table":         event.Table,
			}).Warn("Realtime subscriber is full, dropping event")
		}
	}
}

// Close ends every subscription so open streams return
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for id, sub := range h.subscribers {
		delete(h.subscribers, id)
		close(sub.events)
	}
}

// SubscriberCount is used by tests and the health endpoint
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
