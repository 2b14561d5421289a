package queries

import (
	"payref-console/internal/domain/notification"
	"payref-console/internal/usecase/shared"
)

type NotificationQueries interface {
	List() []notification.Event
	UnreadCount() int
}

type notificationQueriesImpl struct {
	center shared.NotificationCenter
}

func NewNotificationQueries(center shared.NotificationCenter) NotificationQueries {
	return &notificationQueriesImpl{center: center}
}

// List returns the session history, most recent first.
func (n *notificationQueriesImpl) List() []notification.Event {
	return n.center.Events()
}

func (n *notificationQueriesImpl) UnreadCount() int {
	return n.center.UnreadCount()
}
