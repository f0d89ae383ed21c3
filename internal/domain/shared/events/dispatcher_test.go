package events

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/shared/logger"
)

func newTestEvent(eventType string) DomainEvent {
	return BaseEvent{
		AggregateID: "1",
		EventType:   eventType,
		OccurredAt:  time.Now(),
		Version:     1,
	}
}

func TestInMemoryEventDispatcher_PublishDeliversToSubscriber(t *testing.T) {
	d := NewInMemoryEventDispatcher(10, logger.NewLogger())
	require.NoError(t, d.Start())
	defer d.Stop()

	var handled atomic.Int32
	handler := NewSimpleEventHandler("issue.created", func(e DomainEvent) error {
		handled.Add(1)
		return nil
	})
	require.NoError(t, d.Subscribe("issue.created", handler))

	require.NoError(t, d.Publish(newTestEvent("issue.created")))
	require.NoError(t, d.Publish(newTestEvent("issue.resolved")))

	assert.Eventually(t, func() bool {
		return handled.Load() == 1
	}, time.Second, 5*time.Millisecond, "only the subscribed event type is delivered")
}

func TestInMemoryEventDispatcher_PublishBeforeStartFails(t *testing.T) {
	d := NewInMemoryEventDispatcher(10, logger.NewLogger())

	err := d.Publish(newTestEvent("issue.created"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not running")
}

func TestInMemoryEventDispatcher_HandlerErrorDoesNotStopOthers(t *testing.T) {
	d := NewInMemoryEventDispatcher(10, logger.NewLogger())
	require.NoError(t, d.Start())
	defer d.Stop()

	var handled atomic.Int32
	failing := NewSimpleEventHandler("issue.created", func(e DomainEvent) error {
		return fmt.Errorf("boom")
	})
	succeeding := NewSimpleEventHandler("issue.created", func(e DomainEvent) error {
		handled.Add(1)
		return nil
	})
	require.NoError(t, d.Subscribe("issue.created", failing))
	require.NoError(t, d.Subscribe("issue.created", succeeding))

	require.NoError(t, d.Publish(newTestEvent("issue.created")))

	assert.Eventually(t, func() bool {
		return handled.Load() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestInMemoryEventDispatcher_StopDrainsQueuedEvents(t *testing.T) {
	d := NewInMemoryEventDispatcher(10, logger.NewLogger())
	require.NoError(t, d.Start())

	var handled atomic.Int32
	handler := NewSimpleEventHandler("issue.created", func(e DomainEvent) error {
		handled.Add(1)
		return nil
	})
	require.NoError(t, d.Subscribe("issue.created", handler))

	for i := 0; i < 5; i++ {
		require.NoError(t, d.Publish(newTestEvent("issue.created")))
	}
	require.NoError(t, d.Stop())

	assert.Eventually(t, func() bool {
		return handled.Load() == 5
	}, time.Second, 5*time.Millisecond, "queued events are drained on stop")
}

func TestInMemoryEventDispatcher_Unsubscribe(t *testing.T) {
	d := NewInMemoryEventDispatcher(10, logger.NewLogger())

	handler := NewSimpleEventHandler("issue.created", func(e DomainEvent) error { return nil })
	require.NoError(t, d.Subscribe("issue.created", handler))
	require.NoError(t, d.Unsubscribe("issue.created", handler))

	d.mu.RLock()
	defer d.mu.RUnlock()
	assert.Empty(t, d.handlers["issue.created"])
}
