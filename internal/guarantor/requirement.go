// Package guarantor resolves how many guarantors a loan amount needs and
// tracks the guarantor submissions collected for a loan.
package guarantor

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/lendbook/internal/money"
)

var ErrInvalidConfig = errors.New("invalid guarantor config")

// Tier maps the inclusive amount band [Min, Max] to a guarantor count.
type Tier struct {
	Min      decimal.Decimal `json:"min"`
	Max      decimal.Decimal `json:"max"`
	Required int             `json:"required"`
}

type Tiers []Tier

// Decode reads tiers from a JSON array so they can be set from a single
// environment variable.
func (t *Tiers) Decode(value string) error {
	var tiers []Tier
	if err := json.Unmarshal([]byte(value), &tiers); err != nil {
		return fmt.Errorf("decoding guarantor tiers: %w", err)
	}

	*t = tiers

	return nil
}

// Limits bounds the loan amounts that can be requested at all.
type Limits struct {
	Min decimal.Decimal `envconfig:"MIN_LOAN_AMOUNT" default:"100"`
	Max decimal.Decimal `envconfig:"MAX_LOAN_AMOUNT" default:"1000000"`
}

type Validation struct {
	Valid   bool
	Message string
}

func (l Limits) Validate(amount decimal.Decimal) Validation {
	if amount.LessThan(l.Min) {
		return Validation{Message: fmt.Sprintf("Amount must be at least %s", money.Format(l.Min))}
	}

	if amount.GreaterThan(l.Max) {
		return Validation{Message: fmt.Sprintf("Amount must not exceed %s", money.Format(l.Max))}
	}

	return Validation{Valid: true}
}

type Config struct {
	Enabled bool  `envconfig:"ENABLED" default:"true"`
	Tiers   Tiers `envconfig:"TIERS" default:"[{\"min\":0,\"max\":50000,\"required\":1},{\"min\":50000.01,\"max\":250000,\"required\":2},{\"min\":250000.01,\"max\":1000000,\"required\":3}]"`
	Limits  Limits
}

// Validate checks that limits are ordered and that tiers are ascending,
// non-overlapping bands with non-negative bounds and counts.
func (c Config) Validate() error {
	if c.Limits.Min.IsNegative() || c.Limits.Max.IsNegative() {
		return fmt.Errorf("%w: negative amount limit", ErrInvalidConfig)
	}

	if c.Limits.Min.GreaterThan(c.Limits.Max) {
		return fmt.Errorf("%w: min amount %s above max %s", ErrInvalidConfig, c.Limits.Min, c.Limits.Max)
	}

	for i, t := range c.Tiers {
		if t.Min.IsNegative() || t.Max.IsNegative() {
			return fmt.Errorf("%w: tier %d has a negative bound", ErrInvalidConfig, i)
		}

		if t.Min.GreaterThan(t.Max) {
			return fmt.Errorf("%w: tier %d min %s above max %s", ErrInvalidConfig, i, t.Min, t.Max)
		}

		if t.Required < 0 {
			return fmt.Errorf("%w: tier %d requires %d guarantors", ErrInvalidConfig, i, t.Required)
		}

		if i > 0 && !t.Min.GreaterThan(c.Tiers[i-1].Max) {
			return fmt.Errorf("%w: tier %d overlaps tier %d", ErrInvalidConfig, i, i-1)
		}
	}

	return nil
}

// RequiredGuarantors returns the count of the first tier containing amount,
// or 0 when guarantors are disabled or no tier matches. The amount is rounded
// to cents first, since band bounds are cent-adjacent.
func (c Config) RequiredGuarantors(amount decimal.Decimal) int {
	if !c.Enabled {
		return 0
	}

	amount = money.Cents(amount)

	for _, t := range c.Tiers {
		if amount.GreaterThanOrEqual(t.Min) && amount.LessThanOrEqual(t.Max) {
			return t.Required
		}
	}

	return 0
}

func (c Config) ValidateAmount(amount decimal.Decimal) Validation {
	return c.Limits.Validate(amount)
}
