package response

import (
	"time"

	"payref-console/internal/domain/payment"

	"github.com/jinzhu/copier"
)

type PaymentResponse struct {
	Reference         string     `json:"reference"`
	PaymentID         string     `json:"paymentId"`
	ExternalID        string     `json:"externalId"`
	Amount            float64    `json:"amount"`
	Description       string     `json:"description"`
	DueDate           time.Time  `json:"dueDate"`
	Status            string     `json:"status"`
	CreationDate      time.Time  `json:"creationDate"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	PaymentDate       *time.Time `json:"paymentDate,omitempty"`
	CancelDescription string     `json:"cancelDescription,omitempty"`
}

func FromRecord(rec payment.Record) *PaymentResponse {
	var resp PaymentResponse
	_ = copier.Copy(&resp, &rec)
	resp.Status = rec.Status.String()
	return &resp
}

func FromRecords(recs []payment.Record) []*PaymentResponse {
	out := make([]*PaymentResponse, len(recs))
	for i, rec := range recs {
		out[i] = FromRecord(rec)
	}
	return out
}
