package queries

import (
	"strings"
	"time"

	"payref-console/internal/domain/payment"
	"payref-console/internal/usecase/shared"
)

// ListFilter is a pure, stateless query over the in-memory list. Nil fields
// are not applied.
type ListFilter struct {
	Search    *string
	Status    *payment.Status
	From      *time.Time
	To        *time.Time
	MinAmount *float64
	MaxAmount *float64
}

type PaymentQueries interface {
	List(filter ListFilter) []payment.Record
	FindByReference(reference string) (payment.Record, error)
}

type paymentQueriesImpl struct {
	repo shared.PaymentsRepository
}

func NewPaymentQueries(repo shared.PaymentsRepository) PaymentQueries {
	return &paymentQueriesImpl{repo: repo}
}

// List returns the known records newest first, narrowed by the filter.
func (p *paymentQueriesImpl) List(filter ListFilter) []payment.Record {
	records := p.repo.List()
	out := make([]payment.Record, 0, len(records))
	for _, rec := range records {
		if matches(rec, filter) {
			out = append(out, rec)
		}
	}
	return out
}

func (p *paymentQueriesImpl) FindByReference(reference string) (payment.Record, error) {
	return p.repo.FindByReference(reference)
}

func matches(rec payment.Record, f ListFilter) bool {
	if f.Search != nil {
		needle := strings.ToLower(strings.TrimSpace(*f.Search))
		if needle != "" &&
			!strings.Contains(strings.ToLower(rec.Reference), needle) &&
			!strings.Contains(strings.ToLower(rec.Description), needle) {
			return false
		}
	}
	if f.Status != nil && rec.Status != *f.Status {
		return false
	}
	if f.From != nil && rec.CreationDate.Before(*f.From) {
		return false
	}
	if f.To != nil && rec.CreationDate.After(*f.To) {
		return false
	}
	if f.MinAmount != nil && rec.Amount < *f.MinAmount {
		return false
	}
	if f.MaxAmount != nil && rec.Amount > *f.MaxAmount {
		return false
	}
	return true
}
