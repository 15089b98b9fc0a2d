package credit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/lendbook/internal/credit"
	"github.com/MrJamesThe3rd/lendbook/internal/money"
)

func clockAt(t time.Time) credit.Option {
	return credit.WithClock(func() time.Time { return t })
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name      string
		params    credit.CreateParams
		setupMock func(m *credit.MockRepository)
		wantErr   bool
	}{
		{
			name:   "Success",
			params: credit.CreateParams{Reference: "CR-1", Principal: dec("5000"), InterestRate: dec("10"), TenureMonths: 12, StartDate: start},
			setupMock: func(m *credit.MockRepository) {
				m.EXPECT().CreateCredit(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "ZeroPrincipal",
			params:  credit.CreateParams{Principal: dec("0"), InterestRate: dec("10"), TenureMonths: 12},
			wantErr: true,
		},
		{
			name:   "RepoError",
			params: credit.CreateParams{Principal: dec("10"), InterestRate: dec("1"), TenureMonths: 1},
			setupMock: func(m *credit.MockRepository) {
				m.EXPECT().CreateCredit(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := credit.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := credit.NewService(repo).Create(context.Background(), tt.params)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, credit.StatusActive, got.Status)
			assert.True(t, got.RemainingPrincipal.Equal(got.Principal))
			assert.True(t, got.TotalPaidOut.IsZero())
		})
	}
}

func TestService_Create_RejectsZeroTenure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := credit.NewService(credit.NewMockRepository(ctrl)).Create(context.Background(), credit.CreateParams{Principal: dec("1")})
	assert.ErrorIs(t, err, money.ErrInvalidInput)
}

func TestService_RecordPayout(t *testing.T) {
	creditID := uuid.New()
	asOf := start.AddDate(0, 0, 182)

	stored := func() *credit.Credit {
		c := newCredit("5000", "10")
		c.ID = creditID
		c.Version = 2
		return c
	}

	tests := []struct {
		name      string
		params    credit.PayoutParams
		setupMock func(repo *credit.MockRepository, tx *credit.MockPayoutTx)
		wantErr   error
		check     func(t *testing.T, res *credit.PayoutResult)
	}{
		{
			name:   "InterestOnly",
			params: credit.PayoutParams{CreditID: creditID, Type: credit.PayoutInterestOnly, Interest: dec("249.32"), RecordedBy: "finance-1"},
			setupMock: func(repo *credit.MockRepository, tx *credit.MockPayoutTx) {
				repo.EXPECT().BeginPayout(gomock.Any()).Return(tx, nil)
				tx.EXPECT().GetCredit(gomock.Any(), creditID).Return(stored(), nil)
				tx.EXPECT().
					CreatePayout(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *credit.Payout) error {
						assert.True(t, p.AmountPrincipal.IsZero())
						assert.Equal(t, "finance-1", p.RecordedBy)
						return nil
					})
				tx.EXPECT().
					UpdateBalances(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *credit.Credit) error {
						assert.Equal(t, int64(2), c.Version)
						return nil
					})
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			check: func(t *testing.T, res *credit.PayoutResult) {
				assert.True(t, res.Credit.RemainingPrincipal.Equal(dec("5000")))
				assert.True(t, res.Credit.TotalPaidOut.Equal(dec("249.32")))
				assert.Equal(t, credit.StatusActive, res.Credit.Status)
			},
		},
		{
			name:   "FullMaturityWithdraws",
			params: credit.PayoutParams{CreditID: creditID, Type: credit.PayoutFullMaturity},
			setupMock: func(repo *credit.MockRepository, tx *credit.MockPayoutTx) {
				repo.EXPECT().BeginPayout(gomock.Any()).Return(tx, nil)
				tx.EXPECT().GetCredit(gomock.Any(), creditID).Return(stored(), nil)
				tx.EXPECT().CreatePayout(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			check: func(t *testing.T, res *credit.PayoutResult) {
				assert.Equal(t, credit.StatusWithdrawn, res.Credit.Status)
				assert.True(t, res.Credit.RemainingPrincipal.IsZero())
				assert.True(t, res.Payout.AmountInterest.Equal(dec("249.32")))
			},
		},
		{
			name:   "RejectedWritesNothing",
			params: credit.PayoutParams{CreditID: creditID, Type: credit.PayoutPartialPrincipal, Principal: dec("6000")},
			setupMock: func(repo *credit.MockRepository, tx *credit.MockPayoutTx) {
				repo.EXPECT().BeginPayout(gomock.Any()).Return(tx, nil)
				tx.EXPECT().GetCredit(gomock.Any(), creditID).Return(stored(), nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: credit.ErrExceedsBalance,
		},
		{
			name:   "Conflict",
			params: credit.PayoutParams{CreditID: creditID, Type: credit.PayoutPartialPrincipal, Principal: dec("100")},
			setupMock: func(repo *credit.MockRepository, tx *credit.MockPayoutTx) {
				repo.EXPECT().BeginPayout(gomock.Any()).Return(tx, nil)
				tx.EXPECT().GetCredit(gomock.Any(), creditID).Return(stored(), nil)
				tx.EXPECT().CreatePayout(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).Return(credit.ErrConflict)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: credit.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := credit.NewMockRepository(ctrl)
			tx := credit.NewMockPayoutTx(ctrl)
			tt.setupMock(repo, tx)

			res, err := credit.NewService(repo, clockAt(asOf)).RecordPayout(context.Background(), tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)

				return
			}

			require.NoError(t, err)
			tt.check(t, res)
		})
	}
}

func TestService_MarkMatured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := credit.NewMockRepository(ctrl)

	c := newCredit("1000", "5")
	repo.EXPECT().GetCredit(gomock.Any(), c.ID).Return(c, nil).Times(2)
	repo.EXPECT().UpdateStatus(gomock.Any(), c).Return(nil)

	changed, err := credit.NewService(repo, clockAt(start.AddDate(0, 6, 0))).MarkMatured(context.Background(), c.ID)
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = credit.NewService(repo, clockAt(c.MaturityDate())).MarkMatured(context.Background(), c.ID)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, credit.StatusMatured, c.Status)
}

func TestService_ArchiveRestore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := credit.NewMockRepository(ctrl)
	svc := credit.NewService(repo, clockAt(start))

	c := newCredit("1000", "5")
	repo.EXPECT().GetCredit(gomock.Any(), c.ID).Return(c, nil).Times(2)
	repo.EXPECT().UpdateStatus(gomock.Any(), c).Return(nil).Times(2)

	got, err := svc.Archive(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, credit.StatusArchived, got.Status)
	assert.Equal(t, credit.StatusActive, got.PreviousStatus)

	got, err = svc.Restore(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, credit.StatusActive, got.Status)
	assert.Nil(t, got.ArchivedAt)
}
