package interest_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/lendbook/internal/interest"
	"github.com/MrJamesThe3rd/lendbook/internal/money"
)

func TestAccrued(t *testing.T) {
	asOf := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	type args struct {
		principal string
		rate      string
		start     time.Time
	}

	type testCase struct {
		name    string
		args    args
		want    string
		wantErr error
	}

	tests := []testCase{
		{
			name: "FullYear",
			args: args{principal: "1200", rate: "12", start: asOf.AddDate(0, 0, -365)},
			want: "144",
		},
		{
			name: "HalfYearFloorsPartialDay",
			args: args{principal: "5000", rate: "10", start: asOf.Add(-182*24*time.Hour - 12*time.Hour)},
			want: "249.3150684931506849",
		},
		{
			name: "SameInstant",
			args: args{principal: "1000", rate: "20", start: asOf},
			want: "0",
		},
		{
			name: "FutureStartClampsToZero",
			args: args{principal: "1000", rate: "20", start: asOf.AddDate(0, 1, 0)},
			want: "0",
		},
		{
			name: "ZeroRate",
			args: args{principal: "1000", rate: "0", start: asOf.AddDate(-1, 0, 0)},
			want: "0",
		},
		{
			name:    "NegativePrincipal",
			args:    args{principal: "-1", rate: "10", start: asOf.AddDate(0, 0, -10)},
			wantErr: money.ErrInvalidInput,
		},
		{
			name:    "NegativeRate",
			args:    args{principal: "100", rate: "-10", start: asOf.AddDate(0, 0, -10)},
			wantErr: money.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := interest.Accrued(
				decimal.RequireFromString(tt.args.principal),
				decimal.RequireFromString(tt.args.rate),
				tt.args.start,
				asOf,
			)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestAccrued_Pure(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	asOf := time.Date(2024, 9, 17, 0, 0, 0, 0, time.UTC)
	p := decimal.RequireFromString("98765.43")
	r := decimal.RequireFromString("7.25")

	first, err := interest.Accrued(p, r, start, asOf)
	require.NoError(t, err)

	second, err := interest.Accrued(p, r, start, asOf)
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
}

func TestAccrued_NeverNegative(t *testing.T) {
	asOf := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	for offset := -400; offset <= 400; offset += 37 {
		got, err := interest.Accrued(decimal.NewFromInt(1000), decimal.NewFromInt(15), asOf.AddDate(0, 0, offset), asOf)
		require.NoError(t, err)
		assert.False(t, got.IsNegative(), "offset %d", offset)
	}
}

func TestDaysElapsed(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, int64(0), interest.DaysElapsed(start, start.Add(23*time.Hour)))
	assert.Equal(t, int64(1), interest.DaysElapsed(start, start.Add(24*time.Hour)))
	assert.Equal(t, int64(0), interest.DaysElapsed(start, start.Add(-48*time.Hour)))
	assert.Equal(t, int64(366), interest.DaysElapsed(start, start.AddDate(1, 0, 0)))
}
