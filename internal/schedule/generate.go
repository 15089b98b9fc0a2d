package schedule

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/lendbook/internal/money"
)

var monthsPerYear = decimal.NewFromInt(12)

// Generate builds a flat schedule: equal monthly principal, with the cents
// lost to rounding carried by the last installment, and a flat monthly
// interest charge on the original principal. Installment i is due i months
// after start.
func Generate(loanID uuid.UUID, principal, annualRatePercent decimal.Decimal, tenureMonths int, start time.Time) ([]Installment, error) {
	if tenureMonths <= 0 {
		return nil, fmt.Errorf("%w: tenure must be positive, got %d", money.ErrInvalidInput, tenureMonths)
	}

	if principal.IsNegative() || annualRatePercent.IsNegative() {
		return nil, fmt.Errorf("%w: negative principal or rate", money.ErrInvalidInput)
	}

	n := decimal.NewFromInt(int64(tenureMonths))
	monthlyPrincipal := principal.Div(n).Truncate(2)
	monthlyInterest := money.Cents(principal.Mul(annualRatePercent).Div(decimal.NewFromInt(100)).Div(monthsPerYear))

	installments := make([]Installment, tenureMonths)
	allocated := decimal.Zero

	for i := range tenureMonths {
		p := monthlyPrincipal
		if i == tenureMonths-1 {
			p = principal.Sub(allocated)
		}

		allocated = allocated.Add(p)

		installments[i] = Installment{
			ID:              uuid.New(),
			LoanID:          loanID,
			No:              i + 1,
			DueDate:         start.AddDate(0, i+1, 0),
			PrincipalAmount: p,
			InterestAmount:  monthlyInterest,
			TotalAmount:     p.Add(monthlyInterest),
			Status:          StatusPending,
		}
	}

	return installments, nil
}

// MarkOverdue returns overdue updates for every pending or partial
// installment whose due date is before asOf.
func MarkOverdue(installments []Installment, asOf time.Time) []Update {
	var updates []Update

	for _, inst := range installments {
		if inst.Status != StatusPending && inst.Status != StatusPartial {
			continue
		}

		if inst.DueDate.Before(asOf) {
			updates = append(updates, Update{InstallmentID: inst.ID, No: inst.No, Status: StatusOverdue})
		}
	}

	return updates
}
