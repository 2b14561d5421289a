package notification

import (
	"time"

	"payref-console/internal/domain/payment"

	"github.com/google/uuid"
)

// Severity drives how a subscriber renders the event.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
)

// SeverityForStatus maps a payment status transition to its toast severity.
func SeverityForStatus(s payment.Status) Severity {
	switch s {
	case payment.StatusPaid:
		return SeveritySuccess
	case payment.StatusCancelled:
		return SeverityWarning
	case payment.StatusPending:
		return SeverityInfo
	default:
		return SeverityInfo
	}
}

// Event is one entry in the session-scoped notification history.
type Event struct {
	ID          uuid.UUID      `json:"id"`
	ReferenceID string         `json:"referenceId"`
	Status      payment.Status `json:"status"`
	Message     string         `json:"message"`
	Severity    Severity       `json:"severity"`
	OccurredAt  time.Time      `json:"occurredAt"`
	Read        bool           `json:"read"`
}

// NewSystemEvent is a status-less informational event, used for signals that
// concern the session rather than one reference (retry-in-progress, etc.).
func NewSystemEvent(message string, now time.Time) Event {
	return Event{
		ID:         uuid.New(),
		Message:    message,
		Severity:   SeverityInfo,
		OccurredAt: now,
	}
}

func NewEvent(referenceID string, status payment.Status, message string, now time.Time) Event {
	return Event{
		ID:          uuid.New(),
		ReferenceID: referenceID,
		Status:      status,
		Message:     message,
		Severity:    SeverityForStatus(status),
		OccurredAt:  now,
		Read:        false,
	}
}
