package credit_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/lendbook/internal/credit"
	"github.com/MrJamesThe3rd/lendbook/internal/money"
)

var start = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newCredit(principal, rate string) *credit.Credit {
	p := dec(principal)

	return &credit.Credit{
		ID:                 uuid.New(),
		Principal:          p,
		InterestRate:       dec(rate),
		TenureMonths:       12,
		StartDate:          start,
		RemainingPrincipal: p,
		TotalPaidOut:       decimal.Zero,
		Status:             credit.StatusActive,
	}
}

func TestAllocate(t *testing.T) {
	type args struct {
		credit     func() *credit.Credit
		payoutType credit.PayoutType
		principal  string
		interest   string
		asOf       time.Time
	}

	type testCase struct {
		name          string
		args          args
		wantErr       error
		wantPrincipal string
		wantInterest  string
		wantRemaining string
		wantPaidOut   string
		wantStatus    credit.Status
	}

	tests := []testCase{
		{
			name: "InterestOnlyIgnoresPrincipal",
			args: args{
				credit:     func() *credit.Credit { return newCredit("5000", "10") },
				payoutType: credit.PayoutInterestOnly,
				principal:  "1000",
				interest:   "249.32",
				asOf:       start.AddDate(0, 0, 182),
			},
			wantPrincipal: "0",
			wantInterest:  "249.32",
			wantRemaining: "5000",
			wantPaidOut:   "249.32",
			wantStatus:    credit.StatusActive,
		},
		{
			name: "PartialPrincipal",
			args: args{
				credit:     func() *credit.Credit { return newCredit("5000", "10") },
				payoutType: credit.PayoutPartialPrincipal,
				principal:  "2000",
				interest:   "50",
				asOf:       start.AddDate(0, 0, 30),
			},
			wantPrincipal: "2000",
			wantInterest:  "50",
			wantRemaining: "3000",
			wantPaidOut:   "2050",
			wantStatus:    credit.StatusActive,
		},
		{
			name: "FullMaturityForcesAmounts",
			args: args{
				credit:     func() *credit.Credit { return newCredit("5000", "10") },
				payoutType: credit.PayoutFullMaturity,
				principal:  "1",
				interest:   "1",
				asOf:       start.AddDate(0, 0, 365),
			},
			wantPrincipal: "5000",
			wantInterest:  "500",
			wantRemaining: "0",
			wantPaidOut:   "5500",
			wantStatus:    credit.StatusWithdrawn,
		},
		{
			name: "EarlyWithdrawalRoundsInterestToCents",
			args: args{
				credit:     func() *credit.Credit { return newCredit("5000", "10") },
				payoutType: credit.PayoutEarlyWithdrawal,
				asOf:       start.AddDate(0, 0, 182),
				principal:  "0",
				interest:   "0",
			},
			wantPrincipal: "5000",
			wantInterest:  "249.32",
			wantRemaining: "0",
			wantPaidOut:   "5249.32",
			wantStatus:    credit.StatusWithdrawn,
		},
		{
			name: "MaturedCreditStillPaysOut",
			args: args{
				credit: func() *credit.Credit {
					c := newCredit("1000", "5")
					c.Status = credit.StatusMatured
					return c
				},
				payoutType: credit.PayoutInterestOnly,
				principal:  "0",
				interest:   "10",
				asOf:       start,
			},
			wantPrincipal: "0",
			wantInterest:  "10",
			wantRemaining: "1000",
			wantPaidOut:   "10",
			wantStatus:    credit.StatusMatured,
		},
		{
			name: "ExceedsBalance",
			args: args{
				credit:     func() *credit.Credit { return newCredit("5000", "10") },
				payoutType: credit.PayoutPartialPrincipal,
				principal:  "5000.02",
				interest:   "0",
				asOf:       start,
			},
			wantErr: credit.ErrExceedsBalance,
		},
		{
			name: "NonPositive",
			args: args{
				credit:     func() *credit.Credit { return newCredit("5000", "10") },
				payoutType: credit.PayoutInterestOnly,
				principal:  "0",
				interest:   "0",
				asOf:       start,
			},
			wantErr: credit.ErrNonPositive,
		},
		{
			name: "ClosingPayoutOnEmptyCreditIsNonPositive",
			args: args{
				credit: func() *credit.Credit {
					c := newCredit("5000", "10")
					c.RemainingPrincipal = decimal.Zero
					return c
				},
				payoutType: credit.PayoutFullMaturity,
				principal:  "0",
				interest:   "0",
				asOf:       start.AddDate(0, 0, 100),
			},
			wantErr: credit.ErrNonPositive,
		},
		{
			name: "NegativeInterest",
			args: args{
				credit:     func() *credit.Credit { return newCredit("5000", "10") },
				payoutType: credit.PayoutPartialPrincipal,
				principal:  "100",
				interest:   "-1",
				asOf:       start,
			},
			wantErr: money.ErrInvalidInput,
		},
		{
			name: "UnknownType",
			args: args{
				credit:     func() *credit.Credit { return newCredit("5000", "10") },
				payoutType: credit.PayoutType("bonus"),
				principal:  "100",
				interest:   "0",
				asOf:       start,
			},
			wantErr: credit.ErrInvalidPayoutType,
		},
		{
			name: "Withdrawn",
			args: args{
				credit: func() *credit.Credit {
					c := newCredit("5000", "10")
					c.Status = credit.StatusWithdrawn
					return c
				},
				payoutType: credit.PayoutInterestOnly,
				principal:  "0",
				interest:   "10",
				asOf:       start,
			},
			wantErr: credit.ErrInactive,
		},
		{
			name: "Archived",
			args: args{
				credit: func() *credit.Credit {
					c := newCredit("5000", "10")
					c.Status = credit.StatusArchived
					return c
				},
				payoutType: credit.PayoutInterestOnly,
				principal:  "0",
				interest:   "10",
				asOf:       start,
			},
			wantErr: credit.ErrInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.args.credit()
			before := *c

			got, err := credit.Allocate(c, tt.args.payoutType, dec(tt.args.principal), dec(tt.args.interest), tt.args.asOf)

			assert.Equal(t, before, *c, "Allocate must not modify the credit")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.True(t, got.Principal.Equal(dec(tt.wantPrincipal)), "principal %s", got.Principal)
			assert.True(t, got.Interest.Equal(dec(tt.wantInterest)), "interest %s", got.Interest)
			assert.True(t, got.NewRemaining.Equal(dec(tt.wantRemaining)), "remaining %s", got.NewRemaining)
			assert.True(t, got.NewTotalPaidOut.Equal(dec(tt.wantPaidOut)), "paid out %s", got.NewTotalPaidOut)
			assert.Equal(t, tt.wantStatus, got.NewStatus)
		})
	}
}

func TestAllocate_RemainingNeverNegative(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	types := []credit.PayoutType{
		credit.PayoutInterestOnly,
		credit.PayoutPartialPrincipal,
		credit.PayoutPartialPrincipal,
		credit.PayoutPartialPrincipal,
		credit.PayoutEarlyWithdrawal,
	}

	for round := 0; round < 50; round++ {
		c := newCredit("2500", "7.25")
		asOf := start

		for step := 0; step < 15; step++ {
			asOf = asOf.AddDate(0, 0, rng.IntN(60))

			pt := types[rng.IntN(len(types))]
			// up to 110% of what remains, plus the within-a-cent edge
			p := c.RemainingPrincipal.Mul(decimal.NewFromFloat(rng.Float64() * 1.1)).Round(2)
			if rng.IntN(10) == 0 {
				p = c.RemainingPrincipal.Add(dec("0.005"))
			}

			alloc, err := credit.Allocate(c, pt, p, dec("1"), asOf)
			if err != nil {
				continue
			}

			assert.False(t, alloc.NewRemaining.IsNegative(), "round %d step %d: remaining %s", round, step, alloc.NewRemaining)
			assert.False(t, alloc.NewRemaining.GreaterThan(c.Principal))
			assert.True(t, alloc.NewTotalPaidOut.GreaterThanOrEqual(c.TotalPaidOut))

			c.RemainingPrincipal = alloc.NewRemaining
			c.TotalPaidOut = alloc.NewTotalPaidOut
			c.Status = alloc.NewStatus
		}
	}
}

func TestCredit_MaturityDate(t *testing.T) {
	c := newCredit("100", "1")
	c.TenureMonths = 18

	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), c.MaturityDate())
}
