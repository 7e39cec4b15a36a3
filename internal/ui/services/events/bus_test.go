package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingEvent struct{ N int }

func TestSyncBusDeliversByTypeAndWildcard(t *testing.T) {
	bus := NewSyncBus()

	var typed, all []interface{}
	bus.Subscribe("events.pingEvent", func(e interface{}) { typed = append(typed, e) })
	bus.Subscribe(AnyEvent, func(e interface{}) { all = append(all, e) })

	bus.Publish(pingEvent{N: 1})
	bus.Publish("other")

	assert.Equal(t, []interface{}{pingEvent{N: 1}}, typed)
	assert.Equal(t, []interface{}{pingEvent{N: 1}, "other"}, all)
}

func TestPanickingListenerDoesNotStopOthers(t *testing.T) {
	bus := NewSyncBus()

	called := false
	bus.Subscribe(AnyEvent, func(interface{}) { panic("boom") })
	bus.Subscribe(AnyEvent, func(interface{}) { called = true })

	assert.NotPanics(t, func() { bus.Publish(pingEvent{}) })
	assert.True(t, called)
}

func TestNullBus(t *testing.T) {
	var bus EventBus = &NullBus{}
	assert.NotPanics(t, func() {
		bus.Subscribe(AnyEvent, func(interface{}) {})
		bus.Publish(pingEvent{})
	})
}
