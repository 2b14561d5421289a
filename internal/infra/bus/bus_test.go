//go:build unit

package bus_test

import (
	"testing"
	"time"

	"payref-console/internal/domain/notification"
	"payref-console/internal/domain/payment"
	"payref-console/internal/infra/bus"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(reference string, status payment.Status) notification.Event {
	return notification.NewEvent(reference, status, "msg for "+reference, time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))
}

func TestPublish(t *testing.T) {
	t.Run("listeners run synchronously in subscription order", func(t *testing.T) {
		b := bus.NewNotificationBus()
		var order []string

		b.Subscribe(func(notification.Event) { order = append(order, "first") })
		b.Subscribe(func(notification.Event) { order = append(order, "second") })
		b.Subscribe(func(notification.Event) { order = append(order, "third") })

		b.Publish(event("ref-a", payment.StatusPending))

		assert.Equal(t, []string{"first", "second", "third"}, order)
	})

	t.Run("a panicking listener does not stop the rest", func(t *testing.T) {
		b := bus.NewNotificationBus()
		var reached bool

		b.Subscribe(func(notification.Event) { panic("listener bug") })
		b.Subscribe(func(notification.Event) { reached = true })

		require.NotPanics(t, func() {
			b.Publish(event("ref-a", payment.StatusPaid))
		})
		assert.True(t, reached)
		assert.Len(t, b.Events(), 1)
	})

	t.Run("history is most recent first", func(t *testing.T) {
		b := bus.NewNotificationBus()
		b.Publish(event("ref-old", payment.StatusPending))
		b.Publish(event("ref-new", payment.StatusPaid))

		events := b.Events()
		require.Len(t, events, 2)
		assert.Equal(t, "ref-new", events[0].ReferenceID)
		assert.Equal(t, "ref-old", events[1].ReferenceID)
	})

	t.Run("unsubscribed listener is no longer invoked", func(t *testing.T) {
		b := bus.NewNotificationBus()
		var calls int

		id := b.Subscribe(func(notification.Event) { calls++ })
		b.Publish(event("ref-a", payment.StatusPending))
		b.Unsubscribe(id)
		b.Publish(event("ref-b", payment.StatusPending))

		assert.Equal(t, 1, calls)
	})
}

func TestReadTracking(t *testing.T) {
	t.Run("events start unread", func(t *testing.T) {
		b := bus.NewNotificationBus()
		b.Publish(event("ref-a", payment.StatusPending))
		b.Publish(event("ref-b", payment.StatusPaid))

		assert.Equal(t, 2, b.UnreadCount())
	})

	t.Run("mark read flips exactly one event", func(t *testing.T) {
		b := bus.NewNotificationBus()
		b.Publish(event("ref-a", payment.StatusPending))
		b.Publish(event("ref-b", payment.StatusPaid))

		target := b.Events()[1]
		require.True(t, b.MarkRead(target.ID))

		assert.Equal(t, 1, b.UnreadCount())
		for _, evt := range b.Events() {
			if evt.ID == target.ID {
				assert.True(t, evt.Read)
			} else {
				assert.False(t, evt.Read)
			}
		}
	})

	t.Run("marking twice stays read", func(t *testing.T) {
		b := bus.NewNotificationBus()
		b.Publish(event("ref-a", payment.StatusPending))
		id := b.Events()[0].ID

		require.True(t, b.MarkRead(id))
		require.True(t, b.MarkRead(id))
		assert.Equal(t, 0, b.UnreadCount())
	})

	t.Run("unknown id reports false", func(t *testing.T) {
		b := bus.NewNotificationBus()
		b.Publish(event("ref-a", payment.StatusPending))

		assert.False(t, b.MarkRead(uuid.New()))
		assert.Equal(t, 1, b.UnreadCount())
	})

	t.Run("clear all drops history but keeps listeners", func(t *testing.T) {
		b := bus.NewNotificationBus()
		var calls int
		b.Subscribe(func(notification.Event) { calls++ })

		b.Publish(event("ref-a", payment.StatusPending))
		b.ClearAll()

		assert.Empty(t, b.Events())
		assert.Equal(t, 0, b.UnreadCount())

		b.Publish(event("ref-b", payment.StatusPaid))
		assert.Equal(t, 2, calls)
		assert.Len(t, b.Events(), 1)
	})

	t.Run("events returns a copy", func(t *testing.T) {
		b := bus.NewNotificationBus()
		b.Publish(event("ref-a", payment.StatusPending))

		events := b.Events()
		events[0].Read = true

		assert.Equal(t, 1, b.UnreadCount())
	})
}
