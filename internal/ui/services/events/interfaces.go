package events

import (
	log "github.com/sirupsen/logrus"
)

// EventBus is a simple interface for publishing events
type EventBus interface {
	Publish(event interface{})
	Subscribe(eventType string, handler func(interface{}))
}

// NullBus is a no-op implementation of EventBus
type NullBus struct{}

func (n *NullBus) Publish(event interface{})                           {}
func (n *NullBus) Subscribe(eventType string, handler func(interface{})) {}

// LogEvents writes every event published on bus to the log at debug level
func LogEvents(bus EventBus) {
	bus.Subscribe(AnyEvent, func(e interface{}) {
		log.WithField("event", TypeName(e)).Debugf("%+v", e)
	})
}
