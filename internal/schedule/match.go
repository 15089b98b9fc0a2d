package schedule

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/lendbook/internal/money"
)

// Match walks the schedule in installment order and settles installments
// against the tendered amounts. Paid installments are skipped. Each unpaid
// installment whose principal and interest are both covered is marked paid
// and its amounts are taken out of the pool. The first installment that
// cannot be fully covered is marked partial if anything is left, and
// matching stops there: the remainder is not spread over later rows.
func Match(installments []Installment, principal, interest decimal.Decimal) []Update {
	ordered := slices.Clone(installments)
	slices.SortFunc(ordered, func(a, b Installment) int {
		return cmp.Compare(a.No, b.No)
	})

	var updates []Update

	for _, inst := range ordered {
		if inst.Status == StatusPaid {
			continue
		}

		if money.Covers(principal, inst.PrincipalAmount) && money.Covers(interest, inst.InterestAmount) {
			updates = append(updates, Update{InstallmentID: inst.ID, No: inst.No, Status: StatusPaid})
			principal = principal.Sub(inst.PrincipalAmount)
			interest = interest.Sub(inst.InterestAmount)

			continue
		}

		if principal.IsPositive() || interest.IsPositive() {
			updates = append(updates, Update{InstallmentID: inst.ID, No: inst.No, Status: StatusPartial})
		}

		break
	}

	return updates
}
