package loan

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle state of a loan.
type Status string

const (
	StatusPerforming    Status = "performing"
	StatusNonPerforming Status = "non_performing"
	StatusFullProvision Status = "full_provision"
	StatusPreliquidated Status = "preliquidated"
	StatusRepaid        Status = "repaid"
	StatusOverdue       Status = "overdue"
	StatusArchived      Status = "archived"
)

// PaymentType tells whether a repayment settled everything that was due.
type PaymentType string

const (
	PaymentFull    PaymentType = "full"
	PaymentPartial PaymentType = "partial"
)

// Loan is a disbursed loan. AmountRepaid and InterestRepaid only grow;
// Version is bumped on every write and guards concurrent repayments.
type Loan struct {
	ID             uuid.UUID
	Reference      string
	Principal      decimal.Decimal
	InterestRate   decimal.Decimal // annual, percent
	TenureMonths   int
	StartDate      time.Time
	EndDate        time.Time
	AmountRepaid   decimal.Decimal
	InterestRepaid decimal.Decimal
	Status         Status
	PreviousStatus Status // status to restore when un-archiving
	Version        int64
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	ArchivedAt     *time.Time
}

// Closed reports whether the principal has been fully repaid.
func (l *Loan) Closed() bool {
	return l.Status == StatusPreliquidated || l.Status == StatusRepaid
}

// Repayment is an immutable ledger entry recorded for every payment.
type Repayment struct {
	ID              uuid.UUID
	LoanID          uuid.UUID
	AmountPrincipal decimal.Decimal
	AmountInterest  decimal.Decimal
	PaymentType     PaymentType
	Notes           string
	RecordedBy      string
	CreatedAt       time.Time
}

// Total is the principal plus interest of the repayment.
func (r *Repayment) Total() decimal.Decimal {
	return r.AmountPrincipal.Add(r.AmountInterest)
}
