package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"payref-console/internal/domain/payment"
	"payref-console/internal/pkg/errs"
)

// wireTimeLayout is the date format the upstream API exchanges alongside
// RFC 3339 timestamps.
const wireTimeLayout = "2006-01-02 15:04:05"

// Wire status codes. The textual PENDIENTE/PAGADO/CANCELADO scheme seen in
// one upstream iteration is not supported; the two-digit codes are the
// canonical wire contract.
const (
	wirePending   = "01"
	wirePaid      = "02"
	wireCancelled = "03"
	wireExpired   = "04"
)

func statusFromWire(code string) (payment.Status, error) {
	switch code {
	case wirePending:
		return payment.StatusPending, nil
	case wirePaid:
		return payment.StatusPaid, nil
	case wireCancelled:
		return payment.StatusCancelled, nil
	case wireExpired:
		return payment.StatusExpired, nil
	default:
		return "", errs.Newf("unknown wire status code %q", code)
	}
}

type createPaymentBody struct {
	ExternalID  string  `json:"externalId"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	DueDate     string  `json:"dueDate"`
	CallbackURL string  `json:"callbackURL"`
}

type createPaymentResult struct {
	Reference string `json:"reference"`
	PaymentID string `json:"paymentId"`
}

type cancelPaymentBody struct {
	Reference         string `json:"reference"`
	Status            string `json:"status"`
	UpdateDescription string `json:"updateDescription"`
}

// wirePayment mirrors the detail response shape before translation into the
// domain record.
type wirePayment struct {
	Reference         string  `json:"reference"`
	PaymentID         string  `json:"paymentId"`
	ExternalID        string  `json:"externalId"`
	Amount            float64 `json:"amount"`
	Description       string  `json:"description"`
	DueDate           string  `json:"dueDate"`
	Status            string  `json:"status"`
	CreationDate      string  `json:"creationDate"`
	UpdatedAt         string  `json:"updatedAt"`
	PaymentDate       string  `json:"paymentDate"`
	CancelDescription string  `json:"cancelDescription"`
}

func (w wirePayment) toRecord() (*payment.Record, error) {
	status, err := statusFromWire(w.Status)
	if err != nil {
		return nil, err
	}

	rec := &payment.Record{
		Reference:         w.Reference,
		PaymentID:         w.PaymentID,
		ExternalID:        w.ExternalID,
		Amount:            w.Amount,
		Description:       w.Description,
		Status:            status,
		CancelDescription: w.CancelDescription,
	}

	if rec.DueDate, err = parseWireTime(w.DueDate); err != nil {
		return nil, err
	}
	if rec.CreationDate, err = parseWireTime(w.CreationDate); err != nil {
		return nil, err
	}
	if rec.UpdatedAt, err = parseWireTime(w.UpdatedAt); err != nil {
		return nil, err
	}
	if w.PaymentDate != "" {
		t, err := parseWireTime(w.PaymentDate)
		if err != nil {
			return nil, err
		}
		rec.PaymentDate = &t
	}
	return rec, nil
}

func parseWireTime(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	t, err := time.Parse(wireTimeLayout, v)
	if err != nil {
		return time.Time{}, errs.Newf("unparseable upstream timestamp %q", v)
	}
	return t, nil
}

// CreatePayment registers a new payment request upstream and returns the
// locally known record for the issued reference, status PENDING.
func (c *Client) CreatePayment(ctx context.Context, draft payment.Draft) (*payment.Record, error) {
	body := createPaymentBody{
		ExternalID:  draft.ExternalID,
		Amount:      draft.Amount,
		Description: draft.Description,
		DueDate:     draft.DueDate.Format(wireTimeLayout),
		CallbackURL: draft.CallbackURL,
	}

	raw, err := c.do(ctx, http.MethodPost, "/payment", body, true)
	if err != nil {
		return nil, err
	}

	var result createPaymentResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, errs.Wrap(err, "failed to decode create payment response")
	}
	if result.Reference == "" || result.PaymentID == "" {
		return nil, errs.New("create payment response missing reference or paymentId")
	}

	return payment.NewRecord(result.Reference, result.PaymentID, draft, c.clock.Now())
}

// FetchPayment retrieves the server's view of one reference. The server is
// the source of truth for status.
func (c *Client) FetchPayment(ctx context.Context, reference, paymentID string) (*payment.Record, error) {
	path := fmt.Sprintf("/payment/%s/%s", reference, paymentID)
	raw, err := c.do(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return nil, err
	}

	var wire wirePayment
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, errs.Wrap(err, "failed to decode payment detail response")
	}
	return wire.toRecord()
}

// CancelPayment asks the upstream API to cancel a pending reference. The
// wire contract sends the cancelled status code alongside the reason.
func (c *Client) CancelPayment(ctx context.Context, reference, reason string) error {
	body := cancelPaymentBody{
		Reference:         reference,
		Status:            wireCancelled,
		UpdateDescription: reason,
	}
	_, err := c.do(ctx, http.MethodPut, "/payment/cancel", body, true)
	return err
}
