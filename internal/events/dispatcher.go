package events

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// EventHandler handles a published event.
type EventHandler func(context.Context, Event) error

// Dispatcher interface allows event publication/subscription.
type Dispatcher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, handler EventHandler)
}

// inMemoryDispatcher is a simple synchronous dispatcher.
type inMemoryDispatcher struct {
	mu        sync.RWMutex
	logger    *zap.Logger
	listeners map[EventType][]EventHandler
}

// NewInMemoryDispatcher creates a dispatcher instance.
func NewInMemoryDispatcher(logger *zap.Logger) Dispatcher {
	return &inMemoryDispatcher{
		logger:    logger,
		listeners: make(map[EventType][]EventHandler),
	}
}

// Publish synchronously invokes handlers for the given event. Handler
// failures are logged and never propagate to the publisher.
func (d *inMemoryDispatcher) Publish(ctx context.Context, event Event) error {
	d.mu.RLock()
	handlers := append([]EventHandler{}, d.listeners[event.Type]...)
	d.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			d.logger.Warn("event handler failed",
				zap.String("event_type", string(event.Type)),
				zap.String("event_id", event.ID),
				zap.Error(err))
		}
	}
	return nil
}

// Subscribe registers a handler for the given event type.
func (d *inMemoryDispatcher) Subscribe(eventType EventType, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[eventType] = append(d.listeners[eventType], handler)
}
