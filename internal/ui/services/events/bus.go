package events

import (
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
)

// AnyEvent subscribes a listener to every published event
const AnyEvent = "*"

// Bus is a simple event bus for UI services
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]func(interface{})
	async     bool
}

// NewBus creates a new event bus. Listeners run on their own goroutines.
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
		async:     true,
	}
}

// NewSyncBus creates an event bus that calls listeners inline, in subscription order
func NewSyncBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
	}
}

// Subscribe registers a listener for an event type, e.g. "filters.CategoryChangedEvent"
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// Publish sends an event to all listeners
func (b *Bus) Publish(event interface{}) {
	b.mu.RLock()
	handlers := make([]func(interface{}), 0, len(b.listeners[AnyEvent]))
	handlers = append(handlers, b.listeners[TypeName(event)]...)
	handlers = append(handlers, b.listeners[AnyEvent]...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		if b.async {
			go b.call(handler, event)
		} else {
			b.call(handler, event)
		}
	}
}

func (b *Bus) call(handler func(interface{}), event interface{}) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Event handler panic for %s: %v", TypeName(event), r)
		}
	}()
	handler(event)
}

// TypeName returns the name listeners subscribe with
func TypeName(event interface{}) string {
	return fmt.Sprintf("%T", event)
}
