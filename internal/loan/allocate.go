package loan

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/lendbook/internal/interest"
	"github.com/MrJamesThe3rd/lendbook/internal/money"
)

// Due is what remains owed on a loan at a point in time.
type Due struct {
	Principal decimal.Decimal
	Interest  decimal.Decimal
}

// Total is principal plus interest due.
func (d Due) Total() decimal.Decimal {
	return d.Principal.Add(d.Interest)
}

// DueAt returns the outstanding principal and the interest accrued on the
// original principal since the start date, less interest already repaid.
// Both are floored at zero.
func DueAt(l *Loan, asOf time.Time) (Due, error) {
	accrued, err := interest.Accrued(l.Principal, l.InterestRate, l.StartDate, asOf)
	if err != nil {
		return Due{}, err
	}

	return Due{
		Principal: money.FloorZero(l.Principal.Sub(l.AmountRepaid)),
		Interest:  money.FloorZero(accrued.Sub(l.InterestRepaid)),
	}, nil
}

// Allocation is the outcome of applying a tender to a loan. Principal and
// Interest are the amounts to record in the ledger.
type Allocation struct {
	Due               Due
	Principal         decimal.Decimal
	Interest          decimal.Decimal
	PaymentType       PaymentType
	NewAmountRepaid   decimal.Decimal
	NewInterestRepaid decimal.Decimal
	NewStatus         Status
}

// Allocate validates a tender against what is due and computes the loan's
// new totals and status. It does not modify l.
func Allocate(l *Loan, principal, interestAmt decimal.Decimal, asOf time.Time) (Allocation, error) {
	if l.Status == StatusArchived {
		return Allocation{}, ErrArchived
	}

	if principal.IsNegative() || interestAmt.IsNegative() {
		return Allocation{}, fmt.Errorf("%w: negative tender", money.ErrInvalidInput)
	}

	due, err := DueAt(l, asOf)
	if err != nil {
		return Allocation{}, err
	}

	if money.Exceeds(principal, due.Principal) {
		return Allocation{}, fmt.Errorf("%w: tendered %s, due %s", ErrExceedsDue, principal.StringFixed(2), due.Principal.StringFixed(2))
	}

	if !principal.Add(interestAmt).IsPositive() {
		return Allocation{}, ErrNonPositive
	}

	paymentType := PaymentPartial
	if money.ApproxEqual(principal, due.Principal) && money.ApproxEqual(interestAmt, due.Interest) {
		paymentType = PaymentFull
	}

	// A tender within a cent over the balance closes it exactly.
	if principal.GreaterThan(due.Principal) {
		principal = due.Principal
	}

	newRepaid := l.AmountRepaid.Add(principal)

	status := l.Status

	switch {
	case money.ApproxEqual(newRepaid, l.Principal):
		newRepaid = l.Principal
		status = StatusPreliquidated
	case newRepaid.IsPositive():
		status = StatusPerforming
	}

	return Allocation{
		Due:               due,
		Principal:         principal,
		Interest:          interestAmt,
		PaymentType:       paymentType,
		NewAmountRepaid:   newRepaid,
		NewInterestRepaid: l.InterestRepaid.Add(interestAmt),
		NewStatus:         status,
	}, nil
}
