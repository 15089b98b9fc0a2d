// Package statement renders a plain-text account statement for a loan.
package statement

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/lendbook/internal/interest"
	"github.com/MrJamesThe3rd/lendbook/internal/loan"
	"github.com/MrJamesThe3rd/lendbook/internal/money"
	"github.com/MrJamesThe3rd/lendbook/internal/schedule"
)

// Statement is a snapshot of a loan and its ledger at AsOf.
type Statement struct {
	Loan         *loan.Loan
	AsOf         time.Time
	Days         int64
	Accrued      decimal.Decimal
	Due          loan.Due
	Repayments   []*loan.Repayment
	Installments []schedule.Installment
}

type Service struct {
	loans *loan.Service
}

func NewService(loans *loan.Service) *Service {
	return &Service{loans: loans}
}

// Build gathers the loan, its dues as of the service clock, its repayments
// and its schedule.
func (s *Service) Build(ctx context.Context, loanID uuid.UUID) (*Statement, error) {
	asOf := s.loans.Now()

	l, due, err := s.loans.Due(ctx, loanID, asOf)
	if err != nil {
		return nil, err
	}

	reps, err := s.loans.Repayments(ctx, loanID)
	if err != nil {
		return nil, fmt.Errorf("listing repayments: %w", err)
	}

	installments, err := s.loans.Installments(ctx, loanID)
	if err != nil {
		return nil, fmt.Errorf("listing installments: %w", err)
	}

	accrued, err := interest.Accrued(l.Principal, l.InterestRate, l.StartDate, asOf)
	if err != nil {
		return nil, err
	}

	return &Statement{
		Loan:         l,
		AsOf:         asOf,
		Days:         interest.DaysElapsed(l.StartDate, asOf),
		Accrued:      accrued,
		Due:          due,
		Repayments:   reps,
		Installments: installments,
	}, nil
}

// Render formats the statement: a header, one line per repayment, the
// schedule, then totals.
func Render(st *Statement) string {
	var sb strings.Builder

	l := st.Loan

	fmt.Fprintf(&sb, "Loan %s (%s)\n", l.Reference, l.ID)
	fmt.Fprintf(&sb, "Status: %s\n", l.Status)
	fmt.Fprintf(&sb, "Principal: %s at %s%% over %d months from %s\n",
		money.Format(l.Principal), l.InterestRate.String(), l.TenureMonths, l.StartDate.Format(time.DateOnly))
	fmt.Fprintf(&sb, "As of %s (%d days)\n\n", st.AsOf.Format(time.DateOnly), st.Days)

	sb.WriteString("Repayments\n")

	if len(st.Repayments) == 0 {
		sb.WriteString("  none\n")
	}

	for _, r := range st.Repayments {
		fmt.Fprintf(&sb, "* %s | principal %s | interest %s | %s",
			r.CreatedAt.Format(time.DateOnly), money.Format(r.AmountPrincipal), money.Format(r.AmountInterest), r.PaymentType)

		if r.Notes != "" {
			fmt.Fprintf(&sb, " | %s", r.Notes)
		}

		sb.WriteString("\n")
	}

	if len(st.Installments) > 0 {
		sb.WriteString("\nSchedule\n")

		for _, in := range st.Installments {
			fmt.Fprintf(&sb, "  #%d %s %s %s\n", in.No, in.DueDate.Format(time.DateOnly), money.Format(in.TotalAmount), in.Status)
		}
	}

	sb.WriteString("\nTotals\n")
	fmt.Fprintf(&sb, "  Principal repaid:  %s\n", money.Format(l.AmountRepaid))
	fmt.Fprintf(&sb, "  Interest accrued:  %s\n", money.Format(money.Cents(st.Accrued)))
	fmt.Fprintf(&sb, "  Interest repaid:   %s\n", money.Format(l.InterestRepaid))
	fmt.Fprintf(&sb, "  Principal due:     %s\n", money.Format(st.Due.Principal))
	fmt.Fprintf(&sb, "  Interest due:      %s\n", money.Format(money.Cents(st.Due.Interest)))
	fmt.Fprintf(&sb, "  Total due:         %s\n", money.Format(money.Cents(st.Due.Total())))

	return sb.String()
}

// Save builds the statement and writes it to dir as
// <reference>_<YYYYMMDD>.txt, returning the file path.
func (s *Service) Save(ctx context.Context, loanID uuid.UUID, dir string) (string, error) {
	st, err := s.Build(ctx, loanID)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, filename(st))
	if err := os.WriteFile(path, []byte(Render(st)), 0o644); err != nil {
		return "", fmt.Errorf("writing statement: %w", err)
	}

	return path, nil
}

func filename(st *Statement) string {
	ref := st.Loan.Reference
	if ref == "" {
		ref = st.Loan.ID.String()
	}

	safe := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}

		return '_'
	}, ref)

	return fmt.Sprintf("%s_%s.txt", safe, st.AsOf.Format("20060102"))
}
