// Package shared declares the ports the usecase layer drives. Concrete
// implementations live under internal/infra and are bound at bootstrap.
package shared

import (
	"context"

	"payref-console/internal/domain/notification"
	"payref-console/internal/domain/payment"

	"github.com/google/uuid"
)

// PaymentGateway is the outbound edge to the remote payment-processing API.
type PaymentGateway interface {
	Authenticate(ctx context.Context, username, password string) error
	ForceRefresh(ctx context.Context) error
	Logout(ctx context.Context) error
	CreatePayment(ctx context.Context, draft payment.Draft) (*payment.Record, error)
	FetchPayment(ctx context.Context, reference, paymentID string) (*payment.Record, error)
	CancelPayment(ctx context.Context, reference, reason string) error
}

// PaymentsRepository is the durable, ordered list of locally known records.
type PaymentsRepository interface {
	Create(rec payment.Record) error
	UpdateStatus(reference string, status payment.Status) (payment.Record, bool, error)
	ApplyCancel(reference, reason string) (payment.Record, error)
	FindByReference(reference string) (payment.Record, error)
	List() []payment.Record
}

// DetailCache is the ephemeral read-through accelerator for detail lookups.
type DetailCache interface {
	Get(reference, paymentID string) (payment.Record, bool)
	Put(reference, paymentID string, rec payment.Record)
	Clear()
}

// NotificationCenter is the in-process event bus plus its session history.
type NotificationCenter interface {
	Publish(evt notification.Event)
	Events() []notification.Event
	MarkRead(id uuid.UUID) bool
	ClearAll()
	UnreadCount() int
}
