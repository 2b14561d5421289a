package response

import (
	"time"

	"payref-console/internal/domain/notification"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type NotificationResponse struct {
	ID          uuid.UUID `json:"id"`
	ReferenceID string    `json:"referenceId,omitempty"`
	Status      string    `json:"status,omitempty"`
	Message     string    `json:"message"`
	Severity    string    `json:"severity"`
	OccurredAt  time.Time `json:"occurredAt"`
	Read        bool      `json:"read"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
}

func FromEvents(events []notification.Event, unread int) *NotificationListResponse {
	items := make([]NotificationResponse, len(events))
	for i, evt := range events {
		_ = copier.Copy(&items[i], &evt)
		items[i].Status = evt.Status.String()
		items[i].Severity = string(evt.Severity)
	}
	return &NotificationListResponse{
		Notifications: items,
		UnreadCount:   unread,
	}
}
