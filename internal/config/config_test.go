package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/lendbook/internal/config"
	"github.com/MrJamesThe3rd/lendbook/internal/guarantor"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, 5*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, "postgres://postgres:@localhost:5432/lendbook?sslmode=disable", cfg.ConnectionString())

	assert.True(t, cfg.Guarantor.Enabled)
	require.Len(t, cfg.Guarantor.Tiers, 3)
	assert.Equal(t, 2, cfg.Guarantor.RequiredGuarantors(decimal.NewFromInt(100000)))
	assert.True(t, cfg.Guarantor.Limits.Min.Equal(decimal.NewFromInt(100)))
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_NAME", "books")
	t.Setenv("GUARANTOR_ENABLED", "false")
	t.Setenv("GUARANTOR_TIERS", `[{"min":0,"max":10,"required":4}]`)
	t.Setenv("MIN_LOAN_AMOUNT", "500")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "books", cfg.DB.Name)
	assert.False(t, cfg.Guarantor.Enabled)
	require.Len(t, cfg.Guarantor.Tiers, 1)
	assert.Equal(t, 4, cfg.Guarantor.Tiers[0].Required)
	assert.True(t, cfg.Guarantor.Tiers[0].Max.Equal(decimal.NewFromInt(10)))
	assert.True(t, cfg.Guarantor.Limits.Min.Equal(decimal.NewFromInt(500)))
}

func TestLoad_RejectsOverlappingTiers(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("GUARANTOR_TIERS", `[{"min":0,"max":100,"required":1},{"min":50,"max":200,"required":2}]`)

	_, err := config.Load()
	require.ErrorIs(t, err, guarantor.ErrInvalidConfig)
}

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	_, err := config.Load()
	require.Error(t, err)
}
