package credit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/lendbook/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=credit
type Repository interface {
	CreateCredit(ctx context.Context, c *Credit) error
	GetCredit(ctx context.Context, id uuid.UUID) (*Credit, error)
	ListCredits(ctx context.Context, filter ListFilter) ([]*Credit, error)
	UpdateStatus(ctx context.Context, c *Credit) error
	ListPayouts(ctx context.Context, creditID uuid.UUID) ([]*Payout, error)
	BeginPayout(ctx context.Context) (PayoutTx, error)
}

// PayoutTx groups the ledger insert and the credit update of one payout.
type PayoutTx interface {
	GetCredit(ctx context.Context, id uuid.UUID) (*Credit, error)
	CreatePayout(ctx context.Context, p *Payout) error
	// UpdateBalances returns ErrConflict when c.Version is stale.
	UpdateBalances(ctx context.Context, c *Credit) error
	Commit() error
	Rollback() error
}

type Option func(*Service)

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

type PayoutParams struct {
	CreditID   uuid.UUID
	Type       PayoutType
	Principal  decimal.Decimal
	Interest   decimal.Decimal
	Notes      string
	RecordedBy string
}

type PayoutResult struct {
	Credit *Credit
	Payout *Payout
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Credit, error) {
	if params.TenureMonths <= 0 {
		return nil, fmt.Errorf("%w: tenure must be positive", money.ErrInvalidInput)
	}

	if !params.Principal.IsPositive() || params.InterestRate.IsNegative() {
		return nil, fmt.Errorf("%w: principal must be positive and rate non-negative", money.ErrInvalidInput)
	}

	c := &Credit{
		ID:                 uuid.New(),
		Reference:          params.Reference,
		Principal:          params.Principal,
		InterestRate:       params.InterestRate,
		TenureMonths:       params.TenureMonths,
		StartDate:          params.StartDate,
		RemainingPrincipal: params.Principal,
		TotalPaidOut:       decimal.Zero,
		Status:             StatusActive,
	}

	if err := s.repo.CreateCredit(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Credit, error) {
	return s.repo.GetCredit(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Credit, error) {
	return s.repo.ListCredits(ctx, filter)
}

func (s *Service) Payouts(ctx context.Context, creditID uuid.UUID) ([]*Payout, error) {
	return s.repo.ListPayouts(ctx, creditID)
}

// Accrued returns the credit with the interest accrued on its remaining
// principal at asOf.
func (s *Service) Accrued(ctx context.Context, id uuid.UUID, asOf time.Time) (*Credit, decimal.Decimal, error) {
	c, err := s.repo.GetCredit(ctx, id)
	if err != nil {
		return nil, decimal.Zero, err
	}

	accrued, err := AccruedAt(c, asOf)
	if err != nil {
		return nil, decimal.Zero, err
	}

	return c, accrued, nil
}

func (s *Service) Now() time.Time {
	return s.now()
}

// RecordPayout allocates the payout and writes the ledger entry and the new
// balances in one transaction.
func (s *Service) RecordPayout(ctx context.Context, params PayoutParams) (*PayoutResult, error) {
	ptx, err := s.repo.BeginPayout(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin payout: %w", err)
	}
	defer ptx.Rollback()

	c, err := ptx.GetCredit(ctx, params.CreditID)
	if err != nil {
		return nil, err
	}

	alloc, err := Allocate(c, params.Type, params.Principal, params.Interest, s.now())
	if err != nil {
		return nil, err
	}

	p := &Payout{
		CreditID:        c.ID,
		AmountPrincipal: alloc.Principal,
		AmountInterest:  alloc.Interest,
		PayoutType:      alloc.PayoutType,
		Notes:           params.Notes,
		RecordedBy:      params.RecordedBy,
	}
	if err := ptx.CreatePayout(ctx, p); err != nil {
		return nil, fmt.Errorf("create payout: %w", err)
	}

	c.RemainingPrincipal = alloc.NewRemaining
	c.TotalPaidOut = alloc.NewTotalPaidOut
	c.Status = alloc.NewStatus

	if err := ptx.UpdateBalances(ctx, c); err != nil {
		return nil, err
	}

	if err := ptx.Commit(); err != nil {
		return nil, fmt.Errorf("commit payout: %w", err)
	}

	slog.Info("payout recorded",
		"credit_id", c.ID,
		"payout_type", p.PayoutType,
		"principal", p.AmountPrincipal.StringFixed(2),
		"interest", p.AmountInterest.StringFixed(2),
		"status", c.Status,
	)

	return &PayoutResult{Credit: c, Payout: p}, nil
}

func (s *Service) Archive(ctx context.Context, id uuid.UUID) (*Credit, error) {
	c, err := s.repo.GetCredit(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.Status == StatusArchived {
		return c, nil
	}

	now := s.now()
	c.PreviousStatus = c.Status
	c.Status = StatusArchived
	c.ArchivedAt = &now

	if err := s.repo.UpdateStatus(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Restore(ctx context.Context, id uuid.UUID) (*Credit, error) {
	c, err := s.repo.GetCredit(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.Status != StatusArchived {
		return c, nil
	}

	c.Status = c.PreviousStatus
	if c.Status == "" {
		c.Status = StatusActive
	}

	c.PreviousStatus = ""
	c.ArchivedAt = nil

	if err := s.repo.UpdateStatus(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// MarkMatured moves an active credit past its maturity date to matured.
// It reports whether the status changed.
func (s *Service) MarkMatured(ctx context.Context, id uuid.UUID) (bool, error) {
	c, err := s.repo.GetCredit(ctx, id)
	if err != nil {
		return false, err
	}

	if c.Status != StatusActive || s.now().Before(c.MaturityDate()) {
		return false, nil
	}

	c.Status = StatusMatured

	if err := s.repo.UpdateStatus(ctx, c); err != nil {
		return false, err
	}

	return true, nil
}
