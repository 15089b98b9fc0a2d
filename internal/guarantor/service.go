package guarantor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=guarantor
type Repository interface {
	CreateSubmission(ctx context.Context, s *Submission) error
	GetSubmission(ctx context.Context, id uuid.UUID) (*Submission, error)
	GetSubmissionByToken(ctx context.Context, token string) (*Submission, error)
	ListSubmissions(ctx context.Context, loanID uuid.UUID) ([]*Submission, error)
	// UpdateSubmission persists s only if the stored status is still from,
	// and returns ErrInvalidTransition otherwise.
	UpdateSubmission(ctx context.Context, s *Submission, from Status) error
}

type Service struct {
	repo Repository
	cfg  Config
	now  func() time.Time
}

func NewService(repo Repository, cfg Config) *Service {
	return &Service{repo: repo, cfg: cfg, now: time.Now}
}

func (s *Service) Config() Config {
	return s.cfg
}

type InviteParams struct {
	LoanID uuid.UUID
	Name   string
	Email  string
	Phone  string
}

type SubmitParams struct {
	Name  string
	Email string
	Phone string
}

// Requirement compares the guarantors a loan amount needs with what has been
// collected so far.
type Requirement struct {
	Required  int
	Verified  int
	Submitted int
	Pending   int
}

func (r Requirement) Satisfied() bool {
	return r.Verified >= r.Required
}

func (s *Service) Invite(ctx context.Context, params InviteParams) (*Submission, error) {
	sub := &Submission{
		ID:          uuid.New(),
		LoanID:      params.LoanID,
		Name:        params.Name,
		Email:       params.Email,
		Phone:       params.Phone,
		Status:      StatusPending,
		AccessToken: uuid.NewString(),
	}

	if err := s.repo.CreateSubmission(ctx, sub); err != nil {
		return nil, err
	}

	return sub, nil
}

func (s *Service) List(ctx context.Context, loanID uuid.UUID) ([]*Submission, error) {
	return s.repo.ListSubmissions(ctx, loanID)
}

// Submit records the guarantor's details against the token. A token can
// only be used while its submission is pending.
func (s *Service) Submit(ctx context.Context, token string, params SubmitParams) (*Submission, error) {
	sub, err := s.repo.GetSubmissionByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := Transition(sub.Status, StatusSubmitted); err != nil {
		return nil, err
	}

	now := s.now()
	from := sub.Status

	sub.Status = StatusSubmitted
	sub.SubmittedAt = &now

	if params.Name != "" {
		sub.Name = params.Name
	}

	if params.Email != "" {
		sub.Email = params.Email
	}

	if params.Phone != "" {
		sub.Phone = params.Phone
	}

	if err := s.repo.UpdateSubmission(ctx, sub, from); err != nil {
		return nil, err
	}

	return sub, nil
}

func (s *Service) Verify(ctx context.Context, id uuid.UUID, reviewer string) (*Submission, error) {
	return s.review(ctx, id, reviewer, StatusVerified)
}

func (s *Service) Reject(ctx context.Context, id uuid.UUID, reviewer string) (*Submission, error) {
	return s.review(ctx, id, reviewer, StatusRejected)
}

func (s *Service) review(ctx context.Context, id uuid.UUID, reviewer string, to Status) (*Submission, error) {
	sub, err := s.repo.GetSubmission(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := Transition(sub.Status, to); err != nil {
		return nil, err
	}

	now := s.now()
	from := sub.Status

	sub.Status = to
	sub.ReviewedAt = &now
	sub.ReviewedBy = reviewer

	if err := s.repo.UpdateSubmission(ctx, sub, from); err != nil {
		return nil, err
	}

	slog.Info("guarantor reviewed", "submission_id", sub.ID, "loan_id", sub.LoanID, "status", to, "reviewer", reviewer)

	return sub, nil
}

// RequirementStatus resolves the guarantor count for amount and tallies the
// loan's submissions by status.
func (s *Service) RequirementStatus(ctx context.Context, loanID uuid.UUID, amount decimal.Decimal) (Requirement, error) {
	subs, err := s.repo.ListSubmissions(ctx, loanID)
	if err != nil {
		return Requirement{}, fmt.Errorf("listing submissions: %w", err)
	}

	req := Requirement{Required: s.cfg.RequiredGuarantors(amount)}

	for _, sub := range subs {
		switch sub.Status {
		case StatusVerified:
			req.Verified++
		case StatusSubmitted:
			req.Submitted++
		case StatusPending:
			req.Pending++
		}
	}

	return req, nil
}
