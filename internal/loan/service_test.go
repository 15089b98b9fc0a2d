package loan_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/lendbook/internal/loan"
	"github.com/MrJamesThe3rd/lendbook/internal/money"
	"github.com/MrJamesThe3rd/lendbook/internal/schedule"
)

func fixedClock(t time.Time) loan.Option {
	return loan.WithClock(func() time.Time { return t })
}

func TestService_Create(t *testing.T) {
	type args struct {
		params loan.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *loan.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: loan.CreateParams{
					Reference:    "LN-001",
					Principal:    dec("1000"),
					InterestRate: dec("12"),
					TenureMonths: 3,
					StartDate:    start,
				},
			},
			setupMock: func(m *loan.MockRepository) {
				m.EXPECT().
					CreateLoan(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, l *loan.Loan, installments []schedule.Installment) error {
						assert.Len(t, installments, 3)
						for _, in := range installments {
							assert.Equal(t, l.ID, in.LoanID)
						}
						return nil
					})
			},
		},
		{
			name: "ZeroTenure",
			args: args{
				params: loan.CreateParams{Principal: dec("1000"), InterestRate: dec("12")},
			},
			wantErr: money.ErrInvalidInput,
		},
		{
			name: "NegativePrincipal",
			args: args{
				params: loan.CreateParams{Principal: dec("-1"), InterestRate: dec("12"), TenureMonths: 6},
			},
			wantErr: money.ErrInvalidInput,
		},
		{
			name: "RepoError",
			args: args{
				params: loan.CreateParams{Principal: dec("500"), InterestRate: dec("5"), TenureMonths: 1, StartDate: start},
			},
			setupMock: func(m *loan.MockRepository) {
				m.EXPECT().
					CreateLoan(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := loan.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := loan.NewService(repo)
			got, err := svc.Create(context.Background(), tt.args.params)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Nil(t, got)

				if errors.Is(tt.wantErr, money.ErrInvalidInput) {
					assert.ErrorIs(t, err, money.ErrInvalidInput)
				}

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, got.ID)
			assert.Equal(t, loan.StatusPerforming, got.Status)
			assert.Equal(t, start.AddDate(0, 3, 0), got.EndDate)
			assert.True(t, got.AmountRepaid.IsZero())
		})
	}
}

func TestService_RecordRepayment(t *testing.T) {
	loanID := uuid.New()

	stored := func() *loan.Loan {
		l := newLoan("300", "0")
		l.ID = loanID
		l.Version = 4
		return l
	}

	installments := func() []schedule.Installment {
		out := make([]schedule.Installment, 3)
		for i := range out {
			out[i] = schedule.Installment{
				ID:              uuid.New(),
				LoanID:          loanID,
				No:              i + 1,
				PrincipalAmount: dec("100"),
				InterestAmount:  decimal.Zero,
				TotalAmount:     dec("100"),
				Status:          schedule.StatusPending,
			}
		}
		return out
	}

	type testCase struct {
		name      string
		params    loan.RepaymentParams
		setupMock func(repo *loan.MockRepository, tx *loan.MockRepaymentTx)
		wantErr   error
		check     func(t *testing.T, res *loan.RepaymentResult)
	}

	tests := []testCase{
		{
			name:   "CommitsLedgerLoanAndSchedule",
			params: loan.RepaymentParams{LoanID: loanID, Principal: dec("150"), Interest: decimal.Zero, RecordedBy: "ops-1"},
			setupMock: func(repo *loan.MockRepository, tx *loan.MockRepaymentTx) {
				repo.EXPECT().BeginRepayment(gomock.Any()).Return(tx, nil)
				tx.EXPECT().GetLoan(gomock.Any(), loanID).Return(stored(), nil)
				tx.EXPECT().ListInstallments(gomock.Any(), loanID).Return(installments(), nil)
				tx.EXPECT().
					CreateRepayment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *loan.Repayment) error {
						assert.True(t, r.AmountPrincipal.Equal(dec("150")))
						assert.Equal(t, loan.PaymentPartial, r.PaymentType)
						assert.Equal(t, "ops-1", r.RecordedBy)
						r.ID = uuid.New()
						return nil
					})
				tx.EXPECT().
					UpdateBalances(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, l *loan.Loan) error {
						assert.Equal(t, int64(4), l.Version)
						assert.True(t, l.AmountRepaid.Equal(dec("150")))
						return nil
					})
				tx.EXPECT().
					UpdateInstallments(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, updates []schedule.Update) error {
						require.Len(t, updates, 2)
						assert.Equal(t, schedule.StatusPaid, updates[0].Status)
						assert.Equal(t, schedule.StatusPartial, updates[1].Status)
						return nil
					})
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			check: func(t *testing.T, res *loan.RepaymentResult) {
				assert.Equal(t, loan.StatusPerforming, res.Loan.Status)
				assert.Len(t, res.Installments, 2)
			},
		},
		{
			name:   "FullRepaymentPreliquidates",
			params: loan.RepaymentParams{LoanID: loanID, Principal: dec("300"), Interest: decimal.Zero},
			setupMock: func(repo *loan.MockRepository, tx *loan.MockRepaymentTx) {
				repo.EXPECT().BeginRepayment(gomock.Any()).Return(tx, nil)
				tx.EXPECT().GetLoan(gomock.Any(), loanID).Return(stored(), nil)
				tx.EXPECT().ListInstallments(gomock.Any(), loanID).Return(installments(), nil)
				tx.EXPECT().CreateRepayment(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().UpdateInstallments(gomock.Any(), gomock.Len(3)).Return(nil)
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			check: func(t *testing.T, res *loan.RepaymentResult) {
				assert.Equal(t, loan.StatusPreliquidated, res.Loan.Status)
				assert.Equal(t, loan.PaymentFull, res.Repayment.PaymentType)
			},
		},
		{
			name:   "RejectedAllocationWritesNothing",
			params: loan.RepaymentParams{LoanID: loanID, Principal: dec("400"), Interest: decimal.Zero},
			setupMock: func(repo *loan.MockRepository, tx *loan.MockRepaymentTx) {
				repo.EXPECT().BeginRepayment(gomock.Any()).Return(tx, nil)
				tx.EXPECT().GetLoan(gomock.Any(), loanID).Return(stored(), nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: loan.ErrExceedsDue,
		},
		{
			name:   "ConcurrentUpdateRollsBack",
			params: loan.RepaymentParams{LoanID: loanID, Principal: dec("100"), Interest: decimal.Zero},
			setupMock: func(repo *loan.MockRepository, tx *loan.MockRepaymentTx) {
				repo.EXPECT().BeginRepayment(gomock.Any()).Return(tx, nil)
				tx.EXPECT().GetLoan(gomock.Any(), loanID).Return(stored(), nil)
				tx.EXPECT().ListInstallments(gomock.Any(), loanID).Return(installments(), nil)
				tx.EXPECT().CreateRepayment(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).Return(loan.ErrConflict)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: loan.ErrConflict,
		},
		{
			name:   "NotFound",
			params: loan.RepaymentParams{LoanID: loanID, Principal: dec("100")},
			setupMock: func(repo *loan.MockRepository, tx *loan.MockRepaymentTx) {
				repo.EXPECT().BeginRepayment(gomock.Any()).Return(tx, nil)
				tx.EXPECT().GetLoan(gomock.Any(), loanID).Return(nil, loan.ErrNotFound)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: loan.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := loan.NewMockRepository(ctrl)
			tx := loan.NewMockRepaymentTx(ctrl)
			tt.setupMock(repo, tx)

			svc := loan.NewService(repo, fixedClock(year))
			res, err := svc.RecordRepayment(context.Background(), tt.params)

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

func TestService_ArchiveRestore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := loan.NewMockRepository(ctrl)
	svc := loan.NewService(repo, fixedClock(year))

	l := newLoan("1000", "10")
	l.Status = loan.StatusNonPerforming

	repo.EXPECT().GetLoan(gomock.Any(), l.ID).Return(l, nil).Times(2)
	repo.EXPECT().UpdateStatus(gomock.Any(), l).Return(nil).Times(2)

	archived, err := svc.Archive(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, loan.StatusArchived, archived.Status)
	assert.Equal(t, loan.StatusNonPerforming, archived.PreviousStatus)
	require.NotNil(t, archived.ArchivedAt)
	assert.Equal(t, year, *archived.ArchivedAt)

	restored, err := svc.Restore(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, loan.StatusNonPerforming, restored.Status)
	assert.Nil(t, restored.ArchivedAt)
}

func TestService_ArchiveIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := loan.NewMockRepository(ctrl)
	svc := loan.NewService(repo)

	l := newLoan("1000", "10")
	l.Status = loan.StatusArchived

	repo.EXPECT().GetLoan(gomock.Any(), l.ID).Return(l, nil)

	got, err := svc.Archive(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, loan.StatusArchived, got.Status)
}

func TestService_MarkOverdue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := loan.NewMockRepository(ctrl)
	svc := loan.NewService(repo, fixedClock(start.AddDate(0, 2, 5)))

	loanID := uuid.New()
	installments, err := schedule.Generate(loanID, dec("300"), dec("0"), 3, start)
	require.NoError(t, err)

	repo.EXPECT().ListInstallments(gomock.Any(), loanID).Return(installments, nil)
	repo.EXPECT().UpdateInstallments(gomock.Any(), gomock.Len(2)).Return(nil)

	updates, err := svc.MarkOverdue(context.Background(), loanID)
	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, schedule.StatusOverdue, updates[0].Status)
}
