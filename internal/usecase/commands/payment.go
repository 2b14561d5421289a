package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"payref-console/internal/domain/notification"
	"payref-console/internal/domain/payment"
	"payref-console/internal/pkg/clock"
	"payref-console/internal/pkg/config"
	"payref-console/internal/pkg/errs"
	"payref-console/internal/usecase/shared"
)

type CreatePaymentParams struct {
	Amount      float64
	Description string
	DueDate     time.Time
}

type PaymentCommands interface {
	Create(ctx context.Context, params CreatePaymentParams) (*payment.Record, error)
	Sync(ctx context.Context, reference, paymentID string, force bool) (*payment.Record, error)
	Cancel(ctx context.Context, reference, reason string) (*payment.Record, error)
}

type paymentCommandsImpl struct {
	gateway     shared.PaymentGateway
	repo        shared.PaymentsRepository
	cache       shared.DetailCache
	center      shared.NotificationCenter
	clock       clock.Clock
	callbackURL string
}

func NewPaymentCommands(
	gateway shared.PaymentGateway,
	repo shared.PaymentsRepository,
	cache shared.DetailCache,
	center shared.NotificationCenter,
	clk clock.Clock,
	cfg config.Config,
) PaymentCommands {
	return &paymentCommandsImpl{
		gateway:     gateway,
		repo:        repo,
		cache:       cache,
		center:      center,
		clock:       clk,
		callbackURL: cfg.Gateway.CallbackURL,
	}
}

// Create validates the request, registers it upstream, prepends the issued
// record to the durable list, warms the cache, and publishes a created event.
// Validation failures never reach the network.
func (p *paymentCommandsImpl) Create(ctx context.Context, params CreatePaymentParams) (*payment.Record, error) {
	draft, err := payment.NewDraft(params.Amount, params.Description, params.DueDate, p.callbackURL, p.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}

	rec, err := p.gateway.CreatePayment(ctx, draft)
	if err != nil {
		return nil, err
	}

	if err := p.repo.Create(*rec); err != nil {
		return nil, err
	}
	p.cache.Put(rec.Reference, rec.PaymentID, *rec)

	msg := fmt.Sprintf("Payment reference %s created", rec.Reference)
	p.center.Publish(notification.NewEvent(rec.Reference, payment.StatusPending, msg, p.clock.Now()))

	return rec, nil
}

// Sync returns the current detail for a reference. A fresh cache entry is
// served without a network call unless force is set. On a real fetch the
// server-reported status is reconciled into the durable list, publishing a
// status-change event when a transition happened.
func (p *paymentCommandsImpl) Sync(ctx context.Context, reference, paymentID string, force bool) (*payment.Record, error) {
	if !force {
		if rec, ok := p.cache.Get(reference, paymentID); ok {
			return &rec, nil
		}
	}

	fetched, err := p.gateway.FetchPayment(ctx, reference, paymentID)
	if err != nil {
		return nil, err
	}
	p.cache.Put(reference, paymentID, *fetched)

	p.reconcile(reference, fetched.Status)
	return fetched, nil
}

// reconcile applies a server-observed status to the local list. The server
// is authoritative, but a transition the state machine forbids (two terminal
// states disagreeing) is kept local and logged rather than applied.
func (p *paymentCommandsImpl) reconcile(reference string, status payment.Status) {
	local, err := p.repo.FindByReference(reference)
	if err != nil || local.Status == status {
		return
	}

	updated, changed, err := p.repo.UpdateStatus(reference, status)
	if err != nil {
		slog.Warn("skipping irreconcilable status report",
			"reference", reference, "local_status", local.Status.String(), "server_status", status.String(), "error", err.Error())
		return
	}
	if changed {
		msg := fmt.Sprintf("Payment %s is now %s", reference, updated.Status)
		p.center.Publish(notification.NewEvent(reference, updated.Status, msg, p.clock.Now()))
	}
}

// Cancel rejects non-pending records locally, before any network call. Only
// after the upstream cancel succeeds is the local record moved to CANCELLED.
func (p *paymentCommandsImpl) Cancel(ctx context.Context, reference, reason string) (*payment.Record, error) {
	local, err := p.repo.FindByReference(reference)
	if err != nil {
		return nil, err
	}
	if !local.IsPending() {
		return nil, errs.Mark(
			errs.Newf("payment %s is %s, only pending payments can be cancelled", reference, local.Status),
			errs.ErrInvalidStateTransition,
		)
	}
	if reason == "" {
		return nil, errs.Mark(payment.ErrEmptyCancelReason, errs.ErrValidationFailed)
	}

	if err := p.gateway.CancelPayment(ctx, reference, reason); err != nil {
		return nil, err
	}

	updated, err := p.repo.ApplyCancel(reference, reason)
	if err != nil {
		return nil, err
	}
	p.cache.Put(updated.Reference, updated.PaymentID, updated)

	msg := fmt.Sprintf("Payment %s was cancelled: %s", reference, reason)
	p.center.Publish(notification.NewEvent(reference, payment.StatusCancelled, msg, p.clock.Now()))

	return &updated, nil
}
