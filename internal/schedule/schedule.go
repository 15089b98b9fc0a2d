package schedule

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the settlement state of a single installment.
type Status string

const (
	StatusPending Status = "pending"
	StatusPartial Status = "partial"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

// Installment is one row of a loan's repayment schedule. No is 1-based and
// defines the order in which payments are matched.
type Installment struct {
	ID              uuid.UUID
	LoanID          uuid.UUID
	No              int
	DueDate         time.Time
	PrincipalAmount decimal.Decimal
	InterestAmount  decimal.Decimal
	TotalAmount     decimal.Decimal
	Status          Status
}

// Update is a status change to apply to an installment.
type Update struct {
	InstallmentID uuid.UUID
	No            int
	Status        Status
}
