package loan

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/lendbook/internal/loan"
	"github.com/MrJamesThe3rd/lendbook/internal/schedule"
)

type loanResponse struct {
	ID             uuid.UUID       `json:"id"`
	Reference      string          `json:"reference,omitempty"`
	Principal      decimal.Decimal `json:"principal"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	TenureMonths   int             `json:"tenure_months"`
	StartDate      string          `json:"start_date"`
	EndDate        string          `json:"end_date"`
	AmountRepaid   decimal.Decimal `json:"amount_repaid"`
	InterestRepaid decimal.Decimal `json:"interest_repaid"`
	Status         loan.Status     `json:"status"`
	Version        int64           `json:"version"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      *time.Time      `json:"updated_at,omitempty"`
	ArchivedAt     *time.Time      `json:"archived_at,omitempty"`
}

type dueResponse struct {
	LoanID    uuid.UUID       `json:"loan_id"`
	AsOf      string          `json:"as_of"`
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
	Total     decimal.Decimal `json:"total"`
}

type repaymentResponse struct {
	ID          uuid.UUID        `json:"id"`
	LoanID      uuid.UUID        `json:"loan_id"`
	Principal   decimal.Decimal  `json:"principal"`
	Interest    decimal.Decimal  `json:"interest"`
	PaymentType loan.PaymentType `json:"payment_type"`
	Notes       string           `json:"notes,omitempty"`
	RecordedBy  string           `json:"recorded_by,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

type installmentResponse struct {
	No        int             `json:"no"`
	DueDate   string          `json:"due_date"`
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
	Total     decimal.Decimal `json:"total"`
	Status    schedule.Status `json:"status"`
}

type updateResponse struct {
	No     int             `json:"no"`
	Status schedule.Status `json:"status"`
}

type recordResponse struct {
	Loan         loanResponse      `json:"loan"`
	Repayment    repaymentResponse `json:"repayment"`
	Installments []updateResponse  `json:"installments"`
}

func toResponse(l *loan.Loan) loanResponse {
	return loanResponse{
		ID:             l.ID,
		Reference:      l.Reference,
		Principal:      l.Principal,
		InterestRate:   l.InterestRate,
		TenureMonths:   l.TenureMonths,
		StartDate:      l.StartDate.Format(time.DateOnly),
		EndDate:        l.EndDate.Format(time.DateOnly),
		AmountRepaid:   l.AmountRepaid,
		InterestRepaid: l.InterestRepaid,
		Status:         l.Status,
		Version:        l.Version,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
		ArchivedAt:     l.ArchivedAt,
	}
}

func toResponseList(loans []*loan.Loan) []loanResponse {
	resp := make([]loanResponse, len(loans))
	for i, l := range loans {
		resp[i] = toResponse(l)
	}

	return resp
}

func toRepaymentResponse(r *loan.Repayment) repaymentResponse {
	return repaymentResponse{
		ID:          r.ID,
		LoanID:      r.LoanID,
		Principal:   r.AmountPrincipal,
		Interest:    r.AmountInterest,
		PaymentType: r.PaymentType,
		Notes:       r.Notes,
		RecordedBy:  r.RecordedBy,
		CreatedAt:   r.CreatedAt,
	}
}

func toInstallmentResponse(in schedule.Installment) installmentResponse {
	return installmentResponse{
		No:        in.No,
		DueDate:   in.DueDate.Format(time.DateOnly),
		Principal: in.PrincipalAmount,
		Interest:  in.InterestAmount,
		Total:     in.TotalAmount,
		Status:    in.Status,
	}
}
