//go:build unit

package builder

import (
	"strings"
	"time"

	dompayment "payref-console/internal/domain/payment"
)

type PaymentBuilder struct {
	Reference   string
	PaymentID   string
	Amount      float64
	Description string
	DueDate     time.Time
	CallbackURL string
	Status      dompayment.Status
	Now         time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	return &PaymentBuilder{
		Reference:   strings.Repeat("R", dompayment.ReferenceLength),
		PaymentID:   "pay-001",
		Amount:      2500.50,
		Description: "Monthly subscription",
		DueDate:     now.AddDate(0, 0, 7),
		CallbackURL: "https://myurl/callback",
		Status:      dompayment.StatusPending,
		Now:         now,
	}
}

func (p *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(p)
	return p
}

func (p *PaymentBuilder) WithAmount(v float64) *PaymentBuilder {
	p.Amount = v
	return p
}

func (p *PaymentBuilder) WithDescription(s string) *PaymentBuilder {
	p.Description = s
	return p
}

func (p *PaymentBuilder) WithDueDate(t time.Time) *PaymentBuilder {
	p.DueDate = t
	return p
}

func (p *PaymentBuilder) WithReference(s string) *PaymentBuilder {
	p.Reference = s
	return p
}

func (p *PaymentBuilder) WithStatus(s dompayment.Status) *PaymentBuilder {
	p.Status = s
	return p
}

func (p *PaymentBuilder) BuildDraft() (dompayment.Draft, error) {
	return dompayment.NewDraft(p.Amount, p.Description, p.DueDate, p.CallbackURL, p.Now)
}

// BuildRecord bypasses draft validation and fabricates a record directly,
// useful for seeding repositories and caches with arbitrary statuses.
func (p *PaymentBuilder) BuildRecord() dompayment.Record {
	return dompayment.Record{
		Reference:    p.Reference,
		PaymentID:    p.PaymentID,
		ExternalID:   "ext-1234567890",
		Amount:       p.Amount,
		Description:  p.Description,
		DueDate:      p.DueDate,
		Status:       p.Status,
		CreationDate: p.Now,
		UpdatedAt:    p.Now,
	}
}
