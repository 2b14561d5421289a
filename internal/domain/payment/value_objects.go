package payment

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNonPositiveAmount  = errors.New("amount must be positive")
	ErrEmptyDescription   = errors.New("description is empty")
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")
	ErrInvalidReference   = errors.New("reference must be exactly 30 characters")
	ErrDueDateInPast      = errors.New("due date is before today")
	ErrInvalidStatus      = errors.New("invalid payment status")
	ErrEmptyCancelReason  = errors.New("cancellation reason is empty")
)

const (
	// ReferenceLength is fixed by the upstream issuer.
	ReferenceLength      = 30
	MaxDescriptionLength = 255
)

type Amount struct {
	value float64
}

func NewAmount(v float64) (Amount, error) {
	if v <= 0 {
		return Amount{}, ErrNonPositiveAmount
	}
	return Amount{value: v}, nil
}

func (a Amount) Value() float64 { return a.value }

type Description struct {
	text string
}

func NewDescription(s string) (Description, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Description{}, ErrEmptyDescription
	}
	if len(t) > MaxDescriptionLength {
		return Description{}, ErrDescriptionTooLong
	}
	return Description{text: t}, nil
}

func (d Description) String() string { return d.text }

type Reference struct {
	value string
}

func NewReference(s string) (Reference, error) {
	if len(s) != ReferenceLength {
		return Reference{}, ErrInvalidReference
	}
	return Reference{value: s}, nil
}

func (r Reference) Value() string { return r.value }

// ValidateDueDate rejects due dates earlier than today (day granularity).
func ValidateDueDate(due, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if due.Before(today) {
		return ErrDueDateInPast
	}
	return nil
}
