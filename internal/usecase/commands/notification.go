package commands

import (
	"payref-console/internal/pkg/errs"
	"payref-console/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errs.New("notification not found")

type NotificationCommands interface {
	MarkRead(id uuid.UUID) error
	ClearAll()
}

type notificationCommandsImpl struct {
	center shared.NotificationCenter
}

func NewNotificationCommands(center shared.NotificationCenter) NotificationCommands {
	return &notificationCommandsImpl{center: center}
}

func (n *notificationCommandsImpl) MarkRead(id uuid.UUID) error {
	if !n.center.MarkRead(id) {
		return ErrNotificationNotFound
	}
	return nil
}

func (n *notificationCommandsImpl) ClearAll() {
	n.center.ClearAll()
}
