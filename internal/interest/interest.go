// Package interest computes simple (non-compounding) interest accrued on a
// principal. It has no knowledge of payments: callers subtract whatever
// interest has already been settled.
package interest

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/lendbook/internal/money"
)

const daysPerYear = 365

var basis = decimal.NewFromInt(100 * daysPerYear)

// DaysElapsed returns the number of whole days between start and asOf.
// A start date in the future yields zero.
func DaysElapsed(start, asOf time.Time) int64 {
	days := math.Floor(asOf.Sub(start).Hours() / 24)
	if days < 0 {
		return 0
	}

	return int64(days)
}

// Accrued returns principal * rate/100 * days/365 where days is DaysElapsed.
func Accrued(principal, annualRatePercent decimal.Decimal, start, asOf time.Time) (decimal.Decimal, error) {
	if principal.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative principal %s", money.ErrInvalidInput, principal)
	}

	if annualRatePercent.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative rate %s", money.ErrInvalidInput, annualRatePercent)
	}

	days := DaysElapsed(start, asOf)
	if days == 0 {
		return decimal.Zero, nil
	}

	return principal.Mul(annualRatePercent).Mul(decimal.NewFromInt(days)).Div(basis), nil
}
