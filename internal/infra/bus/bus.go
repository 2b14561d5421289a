// Package bus is the in-process publish/subscribe channel for payment status
// events. It keeps the session-scoped notification history (most recent
// first) and fans events out to listeners synchronously, in subscription
// order. Nothing here is persisted; the durable payments list is a separate
// concern.
package bus

import (
	"log/slog"
	"sync"

	"payref-console/internal/domain/notification"

	"github.com/google/uuid"
)

type Listener func(notification.Event)

// Publisher is the write side exposed to usecases.
type Publisher interface {
	Publish(evt notification.Event)
}

type NotificationBus struct {
	mu        sync.Mutex
	events    []notification.Event
	listeners map[int]Listener
	order     []int
	nextID    int
}

func NewNotificationBus() *NotificationBus {
	return &NotificationBus{
		listeners: make(map[int]Listener),
	}
}

// Publish prepends the event to the history and invokes every listener in
// subscription order. It never fails: a panicking listener is logged and the
// remaining listeners still run.
func (b *NotificationBus) Publish(evt notification.Event) {
	b.mu.Lock()
	b.events = append([]notification.Event{evt}, b.events...)
	snapshot := make([]Listener, 0, len(b.order))
	for _, id := range b.order {
		if l, ok := b.listeners[id]; ok {
			snapshot = append(snapshot, l)
		}
	}
	b.mu.Unlock()

	for _, l := range snapshot {
		b.invoke(l, evt)
	}
}

func (b *NotificationBus) invoke(l Listener, evt notification.Event) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("notification listener panicked", "panic", r, "reference_id", evt.ReferenceID)
		}
	}()
	l(evt)
}

// Subscribe registers a listener and returns an id for Unsubscribe.
func (b *NotificationBus) Subscribe(l Listener) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = l
	b.order = append(b.order, id)
	return id
}

func (b *NotificationBus) Unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.listeners, id)
	for i, v := range b.order {
		if v == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Events returns a copy of the history, most recent first.
func (b *NotificationBus) Events() []notification.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]notification.Event, len(b.events))
	copy(out, b.events)
	return out
}

// MarkRead flags one event as read. Returns false when the id is unknown.
func (b *NotificationBus) MarkRead(id uuid.UUID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.events {
		if b.events[i].ID == id {
			b.events[i].Read = true
			return true
		}
	}
	return false
}

func (b *NotificationBus) ClearAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = nil
}

func (b *NotificationBus) UnreadCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for i := range b.events {
		if !b.events[i].Read {
			n++
		}
	}
	return n
}
