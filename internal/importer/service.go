package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/lendbook/internal/loan"
)

//go:generate mockgen -source=service.go -destination=recorder_mock.go -package=importer
type LoanRecorder interface {
	GetByReference(ctx context.Context, reference string) (*loan.Loan, error)
	RecordRepayment(ctx context.Context, params loan.RepaymentParams) (*loan.RepaymentResult, error)
}

type Service struct {
	loans LoanRecorder
}

func NewService(loans LoanRecorder) *Service {
	return &Service{loans: loans}
}

type Applied struct {
	Line      int
	Loan      string
	LoanID    uuid.UUID
	Repayment *loan.Repayment
	Status    loan.Status
}

type Result struct {
	Applied  []Applied
	Rejected []Rejected
}

// Import records every parsed row as its own repayment. A row that fails
// allocation or persistence is rejected with the reason and the rest carry
// on; only an unreadable file fails the whole import. If ctx ends part-way,
// the rows not yet attempted are rejected and the result still lists every
// repayment that was committed.
func (s *Service) Import(ctx context.Context, r io.Reader, recordedBy string) (*Result, error) {
	rows, rejected, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse repayments: %w", err)
	}

	res := &Result{Rejected: rejected}

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			for _, rest := range rows[i:] {
				res.Rejected = append(res.Rejected, Rejected{
					Line:   rest.Line,
					Loan:   rest.Loan,
					Reason: fmt.Sprintf("not processed, import cancelled: %v", err),
				})
			}

			slog.Warn("repayment import cancelled", "applied", len(res.Applied), "skipped", len(rows)-i, "error", err)

			break
		}

		loanID, err := s.resolve(ctx, row.Loan)
		if err != nil {
			res.Rejected = append(res.Rejected, Rejected{Line: row.Line, Loan: row.Loan, Reason: err.Error()})
			continue
		}

		out, err := s.loans.RecordRepayment(ctx, loan.RepaymentParams{
			LoanID:     loanID,
			Principal:  row.Principal,
			Interest:   row.Interest,
			Notes:      row.Notes,
			RecordedBy: recordedBy,
		})
		if err != nil {
			res.Rejected = append(res.Rejected, Rejected{Line: row.Line, Loan: row.Loan, Reason: err.Error()})
			continue
		}

		res.Applied = append(res.Applied, Applied{
			Line:      row.Line,
			Loan:      row.Loan,
			LoanID:    loanID,
			Repayment: out.Repayment,
			Status:    out.Loan.Status,
		})
	}

	slog.Info("repayment import finished", "applied", len(res.Applied), "rejected", len(res.Rejected), "recorded_by", recordedBy)

	return res, nil
}

// resolve accepts either a loan ID or a loan reference.
func (s *Service) resolve(ctx context.Context, ref string) (uuid.UUID, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return id, nil
	}

	l, err := s.loans.GetByReference(ctx, ref)
	if err != nil {
		return uuid.Nil, err
	}

	return l.ID, nil
}
