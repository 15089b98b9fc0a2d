package loan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/lendbook/internal/money"
	"github.com/MrJamesThe3rd/lendbook/internal/schedule"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=loan
type Repository interface {
	CreateLoan(ctx context.Context, l *Loan, installments []schedule.Installment) error
	GetLoan(ctx context.Context, id uuid.UUID) (*Loan, error)
	GetLoanByReference(ctx context.Context, reference string) (*Loan, error)
	ListLoans(ctx context.Context, filter ListFilter) ([]*Loan, error)
	UpdateStatus(ctx context.Context, l *Loan) error
	DeleteLoan(ctx context.Context, id uuid.UUID) error

	ListRepayments(ctx context.Context, loanID uuid.UUID) ([]*Repayment, error)
	ListInstallments(ctx context.Context, loanID uuid.UUID) ([]schedule.Installment, error)
	UpdateInstallments(ctx context.Context, updates []schedule.Update) error

	BeginRepayment(ctx context.Context) (RepaymentTx, error)
}

// RepaymentTx is the unit of work for a single repayment: the ledger insert,
// the loan update and the schedule updates commit together or not at all.
type RepaymentTx interface {
	GetLoan(ctx context.Context, id uuid.UUID) (*Loan, error)
	ListInstallments(ctx context.Context, loanID uuid.UUID) ([]schedule.Installment, error)
	CreateRepayment(ctx context.Context, r *Repayment) error
	// UpdateBalances writes the repaid totals and status if l.Version still
	// matches the stored row, and returns ErrConflict otherwise.
	UpdateBalances(ctx context.Context, l *Loan) error
	UpdateInstallments(ctx context.Context, updates []schedule.Update) error
	Commit() error
	Rollback() error
}

type Option func(*Service)

// WithClock overrides the time source used for interest accrual.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

type CreateParams struct {
	Reference    string
	Principal    decimal.Decimal
	InterestRate decimal.Decimal
	TenureMonths int
	StartDate    time.Time
}

type ListFilter struct {
	Status          *Status
	IncludeArchived bool
}

type RepaymentParams struct {
	LoanID     uuid.UUID
	Principal  decimal.Decimal
	Interest   decimal.Decimal
	Notes      string
	RecordedBy string
}

type RepaymentResult struct {
	Loan         *Loan
	Repayment    *Repayment
	Installments []schedule.Update
}

// Create registers a disbursed loan together with its generated schedule.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Loan, error) {
	if params.TenureMonths <= 0 {
		return nil, fmt.Errorf("%w: tenure must be positive", money.ErrInvalidInput)
	}

	if params.Principal.IsNegative() || params.InterestRate.IsNegative() {
		return nil, fmt.Errorf("%w: negative principal or rate", money.ErrInvalidInput)
	}

	l := &Loan{
		ID:             uuid.New(),
		Reference:      params.Reference,
		Principal:      params.Principal,
		InterestRate:   params.InterestRate,
		TenureMonths:   params.TenureMonths,
		StartDate:      params.StartDate,
		EndDate:        params.StartDate.AddDate(0, params.TenureMonths, 0),
		AmountRepaid:   decimal.Zero,
		InterestRepaid: decimal.Zero,
		Status:         StatusPerforming,
	}

	installments, err := schedule.Generate(l.ID, l.Principal, l.InterestRate, l.TenureMonths, l.StartDate)
	if err != nil {
		return nil, fmt.Errorf("generating schedule: %w", err)
	}

	if err := s.repo.CreateLoan(ctx, l, installments); err != nil {
		return nil, err
	}

	return l, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Loan, error) {
	return s.repo.GetLoan(ctx, id)
}

func (s *Service) GetByReference(ctx context.Context, reference string) (*Loan, error) {
	return s.repo.GetLoanByReference(ctx, reference)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Loan, error) {
	return s.repo.ListLoans(ctx, filter)
}

func (s *Service) Repayments(ctx context.Context, loanID uuid.UUID) ([]*Repayment, error) {
	return s.repo.ListRepayments(ctx, loanID)
}

func (s *Service) Installments(ctx context.Context, loanID uuid.UUID) ([]schedule.Installment, error) {
	return s.repo.ListInstallments(ctx, loanID)
}

// Due loads the loan and returns what is owed on it at asOf.
func (s *Service) Due(ctx context.Context, id uuid.UUID, asOf time.Time) (*Loan, Due, error) {
	l, err := s.repo.GetLoan(ctx, id)
	if err != nil {
		return nil, Due{}, err
	}

	due, err := DueAt(l, asOf)
	if err != nil {
		return nil, Due{}, err
	}

	return l, due, nil
}

// Now returns the service clock's current time.
func (s *Service) Now() time.Time {
	return s.now()
}

// RecordRepayment allocates the tender, appends the ledger entry, updates the
// loan and settles schedule installments in a single transaction. A rejected
// allocation returns before anything is written.
func (s *Service) RecordRepayment(ctx context.Context, params RepaymentParams) (*RepaymentResult, error) {
	rtx, err := s.repo.BeginRepayment(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin repayment: %w", err)
	}
	defer rtx.Rollback()

	l, err := rtx.GetLoan(ctx, params.LoanID)
	if err != nil {
		return nil, err
	}

	alloc, err := Allocate(l, params.Principal, params.Interest, s.now())
	if err != nil {
		return nil, err
	}

	installments, err := rtx.ListInstallments(ctx, l.ID)
	if err != nil {
		return nil, fmt.Errorf("list installments: %w", err)
	}

	updates := schedule.Match(installments, alloc.Principal, alloc.Interest)

	rep := &Repayment{
		LoanID:          l.ID,
		AmountPrincipal: alloc.Principal,
		AmountInterest:  alloc.Interest,
		PaymentType:     alloc.PaymentType,
		Notes:           params.Notes,
		RecordedBy:      params.RecordedBy,
	}
	if err := rtx.CreateRepayment(ctx, rep); err != nil {
		return nil, fmt.Errorf("create repayment: %w", err)
	}

	l.AmountRepaid = alloc.NewAmountRepaid
	l.InterestRepaid = alloc.NewInterestRepaid
	l.Status = alloc.NewStatus

	if err := rtx.UpdateBalances(ctx, l); err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := rtx.UpdateInstallments(ctx, updates); err != nil {
			return nil, fmt.Errorf("update installments: %w", err)
		}
	}

	if err := rtx.Commit(); err != nil {
		return nil, fmt.Errorf("commit repayment: %w", err)
	}

	slog.Info("repayment recorded",
		"loan_id", l.ID,
		"principal", rep.AmountPrincipal.StringFixed(2),
		"interest", rep.AmountInterest.StringFixed(2),
		"payment_type", rep.PaymentType,
		"status", l.Status,
	)

	return &RepaymentResult{Loan: l, Repayment: rep, Installments: updates}, nil
}

// Archive soft-deletes a loan, remembering its status for Restore.
func (s *Service) Archive(ctx context.Context, id uuid.UUID) (*Loan, error) {
	l, err := s.repo.GetLoan(ctx, id)
	if err != nil {
		return nil, err
	}

	if l.Status == StatusArchived {
		return l, nil
	}

	now := s.now()
	l.PreviousStatus = l.Status
	l.Status = StatusArchived
	l.ArchivedAt = &now

	if err := s.repo.UpdateStatus(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}

// Restore brings an archived loan back to the status it had before.
func (s *Service) Restore(ctx context.Context, id uuid.UUID) (*Loan, error) {
	l, err := s.repo.GetLoan(ctx, id)
	if err != nil {
		return nil, err
	}

	if l.Status != StatusArchived {
		return l, nil
	}

	l.Status = l.PreviousStatus
	if l.Status == "" {
		l.Status = StatusPerforming
	}

	l.PreviousStatus = ""
	l.ArchivedAt = nil

	if err := s.repo.UpdateStatus(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}

// Delete permanently removes a loan with its ledger and schedule.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteLoan(ctx, id)
}

// MarkOverdue flags pending or partial installments that are past due.
func (s *Service) MarkOverdue(ctx context.Context, loanID uuid.UUID) ([]schedule.Update, error) {
	installments, err := s.repo.ListInstallments(ctx, loanID)
	if err != nil {
		return nil, err
	}

	updates := schedule.MarkOverdue(installments, s.now())
	if len(updates) == 0 {
		return nil, nil
	}

	if err := s.repo.UpdateInstallments(ctx, updates); err != nil {
		return nil, err
	}

	return updates, nil
}
