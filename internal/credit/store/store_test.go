package store_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/lendbook/internal/credit"
	"github.com/MrJamesThe3rd/lendbook/internal/credit/store"
)

func creditRows(id uuid.UUID, status string, version int64) *sqlmock.Rows {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	return sqlmock.NewRows([]string{
		"id", "reference", "principal", "interest_rate", "tenure_months", "start_date",
		"remaining_principal", "total_paid_out", "status", "previous_status", "version",
		"created_at", "updated_at", "archived_at",
	}).AddRow(
		id.String(), "CR-1", "5000", "10", 12, start,
		"5000", "0", status, "active", version,
		start, start, nil,
	)
}

func TestStore_GetCredit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := store.New(db)

	t.Run("found", func(t *testing.T) {
		id := uuid.New()

		mock.ExpectQuery("SELECT (.+) FROM credits WHERE id = \\$1").
			WithArgs(id).
			WillReturnRows(creditRows(id, "archived", 4))

		c, err := s.GetCredit(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, credit.StatusArchived, c.Status)
		assert.Equal(t, credit.StatusActive, c.PreviousStatus)
		assert.True(t, c.RemainingPrincipal.Equal(decimal.NewFromInt(5000)))
		assert.NotNil(t, c.UpdatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM credits").WillReturnError(sql.ErrNoRows)

		_, err := s.GetCredit(context.Background(), uuid.New())
		assert.ErrorIs(t, err, credit.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_ListCredits_IncludeArchived(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM credits WHERE 1 = 1 ORDER BY start_date ASC").
		WillReturnRows(creditRows(uuid.New(), "active", 1))

	credits, err := store.New(db).ListCredits(context.Background(), credit.ListFilter{IncludeArchived: true})
	require.NoError(t, err)
	assert.Len(t, credits, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ListCredits_ArchivedStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	status := credit.StatusArchived

	mock.ExpectQuery("SELECT (.+) FROM credits WHERE 1 = 1 AND status = \\$1 ORDER BY start_date ASC").
		WithArgs(status).
		WillReturnRows(creditRows(uuid.New(), "archived", 1))

	credits, err := store.New(db).ListCredits(context.Background(), credit.ListFilter{Status: &status})
	require.NoError(t, err)
	assert.Len(t, credits, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_PayoutTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := store.New(db)
	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		c := &credit.Credit{
			ID:                 uuid.New(),
			RemainingPrincipal: decimal.NewFromInt(4000),
			TotalPaidOut:       decimal.NewFromInt(1000),
			Status:             credit.StatusActive,
			Version:            7,
		}
		payoutID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO credit_payouts").
			WithArgs(c.ID, sqlmock.AnyArg(), sqlmock.AnyArg(), credit.PayoutPartialPrincipal, "", "finance").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(payoutID.String(), time.Now()))
		mock.ExpectExec("UPDATE credits SET remaining_principal = \\$1").
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), credit.StatusActive, c.ID, 7).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		ptx, err := s.BeginPayout(ctx)
		require.NoError(t, err)

		p := &credit.Payout{
			CreditID:        c.ID,
			AmountPrincipal: decimal.NewFromInt(1000),
			AmountInterest:  decimal.Zero,
			PayoutType:      credit.PayoutPartialPrincipal,
			RecordedBy:      "finance",
		}
		require.NoError(t, ptx.CreatePayout(ctx, p))
		assert.Equal(t, payoutID, p.ID)

		require.NoError(t, ptx.UpdateBalances(ctx, c))
		assert.Equal(t, int64(8), c.Version)
		require.NoError(t, ptx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stale version", func(t *testing.T) {
		c := &credit.Credit{ID: uuid.New(), Status: credit.StatusActive, Version: 1}

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE credits SET remaining_principal").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		ptx, err := s.BeginPayout(ctx)
		require.NoError(t, err)

		assert.ErrorIs(t, ptx.UpdateBalances(ctx, c), credit.ErrConflict)
		require.NoError(t, ptx.Rollback())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
