package credit

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/lendbook/internal/interest"
	"github.com/MrJamesThe3rd/lendbook/internal/money"
)

// Allocation is the outcome of applying a payout to a credit.
type Allocation struct {
	PayoutType      PayoutType
	Principal       decimal.Decimal
	Interest        decimal.Decimal
	NewRemaining    decimal.Decimal
	NewTotalPaidOut decimal.Decimal
	NewStatus       Status
}

// AccruedAt returns the interest accrued on the remaining principal since the
// start date.
func AccruedAt(c *Credit, asOf time.Time) (decimal.Decimal, error) {
	return interest.Accrued(c.RemainingPrincipal, c.InterestRate, c.StartDate, asOf)
}

// Allocate validates a payout and computes the credit's new balances.
// Closing payout types ignore the caller's amounts and pay out the remaining
// principal with its accrued interest, rounded to cents. It does not modify c.
func Allocate(c *Credit, payoutType PayoutType, principal, interestAmt decimal.Decimal, asOf time.Time) (Allocation, error) {
	if c.Status == StatusArchived || c.Status == StatusWithdrawn {
		return Allocation{}, fmt.Errorf("%w: status %s", ErrInactive, c.Status)
	}

	if !payoutType.Valid() {
		return Allocation{}, fmt.Errorf("%w: %q", ErrInvalidPayoutType, payoutType)
	}

	status := c.Status

	switch {
	case payoutType == PayoutInterestOnly:
		principal = decimal.Zero
	case payoutType.closes():
		accrued, err := AccruedAt(c, asOf)
		if err != nil {
			return Allocation{}, err
		}

		principal = c.RemainingPrincipal
		interestAmt = money.Cents(accrued)
		status = StatusWithdrawn
	}

	if principal.IsNegative() || interestAmt.IsNegative() {
		return Allocation{}, fmt.Errorf("%w: negative payout", money.ErrInvalidInput)
	}

	if money.Exceeds(principal, c.RemainingPrincipal) {
		return Allocation{}, fmt.Errorf("%w: requested %s, remaining %s", ErrExceedsBalance, principal.StringFixed(2), c.RemainingPrincipal.StringFixed(2))
	}

	if !principal.Add(interestAmt).IsPositive() {
		return Allocation{}, ErrNonPositive
	}

	if principal.GreaterThan(c.RemainingPrincipal) {
		principal = c.RemainingPrincipal
	}

	return Allocation{
		PayoutType:      payoutType,
		Principal:       principal,
		Interest:        interestAmt,
		NewRemaining:    money.FloorZero(c.RemainingPrincipal.Sub(principal)),
		NewTotalPaidOut: c.TotalPaidOut.Add(principal).Add(interestAmt),
		NewStatus:       status,
	}, nil
}
