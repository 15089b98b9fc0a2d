// Package money holds the decimal helpers shared by the accrual and
// allocation code. Amounts are compared with a tolerance of one cent.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput is returned for malformed or negative numeric arguments.
var ErrInvalidInput = errors.New("invalid input")

// Epsilon is the tolerance used for every amount comparison.
var Epsilon = decimal.New(1, -2)

// ApproxEqual reports whether a and b differ by less than Epsilon.
func ApproxEqual(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(Epsilon)
}

// Exceeds reports whether a is greater than b by more than Epsilon.
func Exceeds(a, b decimal.Decimal) bool {
	return a.GreaterThan(b.Add(Epsilon))
}

// Covers reports whether have is at least want, allowing for Epsilon.
func Covers(have, want decimal.Decimal) bool {
	return have.Add(Epsilon).GreaterThanOrEqual(want)
}

// FloorZero clamps negative values to zero.
func FloorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}

	return d
}

// Cents rounds to two decimal places, half away from zero.
func Cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Format renders an amount with two decimals and thousands separators,
// e.g. 1234567.8 -> "1,234,567.80".
func Format(d decimal.Decimal) string {
	s := d.StringFixed(2)

	sign := ""
	if s[0] == '-' {
		sign = "-"
		s = s[1:]
	}

	intPart, frac := s[:len(s)-3], s[len(s)-3:]

	var out []byte

	for i, c := range []byte(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, ',')
		}

		out = append(out, c)
	}

	return sign + string(out) + frac
}
