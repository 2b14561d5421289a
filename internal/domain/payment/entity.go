package payment

import (
	"fmt"
	"strings"
	"time"
)

// Draft carries a validated creation request before the upstream API has
// issued a reference. ExternalID is the client-generated idempotency token,
// unique per creation attempt.
type Draft struct {
	ExternalID  string
	Amount      float64
	Description string
	DueDate     time.Time
	CallbackURL string
}

func NewDraft(amount float64, description string, dueDate time.Time, callbackURL string, now time.Time) (Draft, error) {
	amt, err := NewAmount(amount)
	if err != nil {
		return Draft{}, err
	}
	desc, err := NewDescription(description)
	if err != nil {
		return Draft{}, err
	}
	if err := ValidateDueDate(dueDate, now); err != nil {
		return Draft{}, err
	}

	return Draft{
		ExternalID:  fmt.Sprintf("ext-%d", now.UnixMilli()),
		Amount:      amt.Value(),
		Description: desc.String(),
		DueDate:     dueDate,
		CallbackURL: callbackURL,
	}, nil
}

// Record is one payment reference known to this client. Fields are exported
// because the record is serialized as-is into the durable list; state changes
// still go through the transition methods below.
type Record struct {
	Reference         string     `json:"reference"`
	PaymentID         string     `json:"paymentId"`
	ExternalID        string     `json:"externalId"`
	Amount            float64    `json:"amount"`
	Description       string     `json:"description"`
	DueDate           time.Time  `json:"dueDate"`
	Status            Status     `json:"status"`
	CreationDate      time.Time  `json:"creationDate"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	PaymentDate       *time.Time `json:"paymentDate,omitempty"`
	CancelDescription string     `json:"cancelDescription,omitempty"`
}

// NewRecord builds the locally known record for a freshly issued reference.
// Status is always PENDING at creation.
func NewRecord(reference, paymentID string, draft Draft, now time.Time) (*Record, error) {
	ref, err := NewReference(reference)
	if err != nil {
		return nil, err
	}

	return &Record{
		Reference:    ref.Value(),
		PaymentID:    paymentID,
		ExternalID:   draft.ExternalID,
		Amount:       draft.Amount,
		Description:  draft.Description,
		DueDate:      draft.DueDate,
		Status:       StatusPending,
		CreationDate: now,
		UpdatedAt:    now,
	}, nil
}

func (r *Record) IsPending() bool {
	return r.Status == StatusPending
}

// ApplyStatus moves the record to a server-reported status. Returns false
// when the status already matches (no transition, nothing to persist).
func (r *Record) ApplyStatus(next Status, now time.Time) (bool, error) {
	if next == r.Status {
		return false, nil
	}
	if !r.Status.CanTransitionTo(next) {
		return false, ErrInvalidStatus
	}
	r.Status = next
	r.UpdatedAt = now
	if next == StatusPaid && r.PaymentDate == nil {
		t := now
		r.PaymentDate = &t
	}
	return true, nil
}

// MarkCancelled applies a user-driven cancellation. Only PENDING records may
// be cancelled, and a reason is required.
func (r *Record) MarkCancelled(reason string, now time.Time) error {
	if !r.IsPending() {
		return ErrInvalidStatus
	}
	trimmed := strings.TrimSpace(reason)
	if trimmed == "" {
		return ErrEmptyCancelReason
	}
	r.Status = StatusCancelled
	r.CancelDescription = trimmed
	r.UpdatedAt = now
	return nil
}
