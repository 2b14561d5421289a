package request

import (
	"time"

	"payref-console/internal/pkg/errs"
	"payref-console/internal/usecase/commands"
)

var ErrInvalidDueDate = errs.New("dueDate must be a YYYY-MM-DD date")

const dueDateLayout = "2006-01-02"

type CreatePaymentRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"required"`
	DueDate     string  `json:"dueDate" binding:"required"`
}

// ToParams parses the due date and pushes it to the end of the day, so the
// reference stays payable through the whole named date.
func (r CreatePaymentRequest) ToParams() (commands.CreatePaymentParams, error) {
	due, err := time.Parse(dueDateLayout, r.DueDate)
	if err != nil {
		return commands.CreatePaymentParams{}, errs.Mark(ErrInvalidDueDate, errs.ErrValidationFailed)
	}
	due = due.Add(23*time.Hour + 59*time.Minute + 59*time.Second)

	return commands.CreatePaymentParams{
		Amount:      r.Amount,
		Description: r.Description,
		DueDate:     due,
	}, nil
}

type CancelPaymentRequest struct {
	Reason string `json:"reason" binding:"required"`
}
