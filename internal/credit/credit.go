package credit

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle state of a credit.
type Status string

const (
	StatusActive    Status = "active"
	StatusMatured   Status = "matured"
	StatusWithdrawn Status = "withdrawn"
	StatusArchived  Status = "archived"
)

// PayoutType selects how a payout is split between principal and interest.
type PayoutType string

const (
	PayoutInterestOnly     PayoutType = "interest_only"
	PayoutPartialPrincipal PayoutType = "partial_principal"
	PayoutFullMaturity     PayoutType = "full_maturity"
	PayoutEarlyWithdrawal  PayoutType = "early_withdrawal"
)

// Valid reports whether t is a known payout type.
func (t PayoutType) Valid() bool {
	switch t {
	case PayoutInterestOnly, PayoutPartialPrincipal, PayoutFullMaturity, PayoutEarlyWithdrawal:
		return true
	}

	return false
}

// closes reports whether the payout returns the whole remaining principal.
func (t PayoutType) closes() bool {
	return t == PayoutFullMaturity || t == PayoutEarlyWithdrawal
}

// Credit is money placed by a creditor. RemainingPrincipal only shrinks and
// TotalPaidOut only grows.
type Credit struct {
	ID                 uuid.UUID
	Reference          string
	Principal          decimal.Decimal
	InterestRate       decimal.Decimal
	TenureMonths       int
	StartDate          time.Time
	RemainingPrincipal decimal.Decimal
	TotalPaidOut       decimal.Decimal
	Status             Status
	PreviousStatus     Status
	Version            int64
	CreatedAt          time.Time
	UpdatedAt          *time.Time
	ArchivedAt         *time.Time
}

func (c *Credit) MaturityDate() time.Time {
	return c.StartDate.AddDate(0, c.TenureMonths, 0)
}

// Payout is an immutable ledger entry recorded for every payout.
type Payout struct {
	ID              uuid.UUID
	CreditID        uuid.UUID
	AmountPrincipal decimal.Decimal
	AmountInterest  decimal.Decimal
	PayoutType      PayoutType
	Notes           string
	RecordedBy      string
	CreatedAt       time.Time
}

func (p *Payout) Total() decimal.Decimal {
	return p.AmountPrincipal.Add(p.AmountInterest)
}
