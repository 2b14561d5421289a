// Package repository owns the ordered list of locally known payment records.
// The list lives in memory, newest first, and every mutation rewrites the
// durable copy before it becomes visible: on a persistence failure the
// in-memory state stays at its pre-call value.
package repository

import (
	"sync"

	"payref-console/internal/domain/payment"
	"payref-console/internal/infra/storage"
	"payref-console/internal/pkg/clock"
	"payref-console/internal/pkg/errs"
)

type PaymentsRepository struct {
	mu      sync.Mutex
	records []payment.Record
	store   *storage.Store
	clock   clock.Clock
}

// NewPaymentsRepository loads the persisted list on construction. A corrupt
// or absent stored value degrades to an empty list inside the storage layer.
func NewPaymentsRepository(store *storage.Store, clk clock.Clock) *PaymentsRepository {
	return &PaymentsRepository{
		records: store.LoadPayments(),
		store:   store,
		clock:   clk,
	}
}

// Create prepends the record and persists the full list. The record's status
// is forced to PENDING regardless of what the caller set.
func (r *PaymentsRepository) Create(rec payment.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec.Status = payment.StatusPending
	next := make([]payment.Record, 0, len(r.records)+1)
	next = append(next, rec)
	next = append(next, r.records...)

	if err := r.store.SavePayments(next); err != nil {
		return err
	}
	r.records = next
	return nil
}

// UpdateStatus moves the first record matching reference to the given status,
// stamps UpdatedAt, and persists. Returns the updated record and whether a
// transition actually happened (a same-status report is a no-op, not an
// error). A forbidden transition is rejected without touching state.
func (r *PaymentsRepository) UpdateStatus(reference string, status payment.Status) (payment.Record, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(reference)
	if idx < 0 {
		return payment.Record{}, false, errs.ErrPaymentNotFound
	}

	updated := r.records[idx]
	changed, err := updated.ApplyStatus(status, r.clock.Now())
	if err != nil {
		return payment.Record{}, false, errs.Mark(err, errs.ErrInvalidStateTransition)
	}
	if !changed {
		return updated, false, nil
	}

	next := r.snapshot()
	next[idx] = updated
	if err := r.store.SavePayments(next); err != nil {
		return payment.Record{}, false, err
	}
	r.records = next
	return updated, true, nil
}

// ApplyCancel commits a cancellation that the upstream API has already
// accepted. It re-checks the PENDING precondition against current state, so
// an interleaved completion of another action cannot be silently overwritten.
func (r *PaymentsRepository) ApplyCancel(reference, reason string) (payment.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(reference)
	if idx < 0 {
		return payment.Record{}, errs.ErrPaymentNotFound
	}

	updated := r.records[idx]
	if err := updated.MarkCancelled(reason, r.clock.Now()); err != nil {
		return payment.Record{}, errs.Mark(err, errs.ErrInvalidStateTransition)
	}

	next := r.snapshot()
	next[idx] = updated
	if err := r.store.SavePayments(next); err != nil {
		return payment.Record{}, err
	}
	r.records = next
	return updated, nil
}

// FindByReference returns the first record with the given reference.
func (r *PaymentsRepository) FindByReference(reference string) (payment.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(reference)
	if idx < 0 {
		return payment.Record{}, errs.ErrPaymentNotFound
	}
	return r.records[idx], nil
}

// List returns a copy of the list, newest first.
func (r *PaymentsRepository) List() []payment.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

func (r *PaymentsRepository) indexOf(reference string) int {
	for i := range r.records {
		if r.records[i].Reference == reference {
			return i
		}
	}
	return -1
}

func (r *PaymentsRepository) snapshot() []payment.Record {
	out := make([]payment.Record, len(r.records))
	copy(out, r.records)
	return out
}
