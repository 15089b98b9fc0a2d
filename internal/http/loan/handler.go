package loan

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/lendbook/internal/auth"
	"github.com/MrJamesThe3rd/lendbook/internal/http/respond"
	"github.com/MrJamesThe3rd/lendbook/internal/loan"
	"github.com/MrJamesThe3rd/lendbook/internal/statement"
)

type Handler struct {
	svc        *loan.Service
	statements *statement.Service
}

func NewHandler(svc *loan.Service, statements *statement.Service) *Handler {
	return &Handler{svc: svc, statements: statements}
}

func (h *Handler) Routes(r chi.Router) {
	r.With(auth.Require(auth.LoansView)).Get("/", h.list)
	r.With(auth.Require(auth.LoansManage)).Post("/", h.create)

	r.Route("/{id}", func(r chi.Router) {
		r.With(auth.Require(auth.LoansView)).Get("/", h.get)
		r.With(auth.Require(auth.LoansView)).Get("/due", h.due)
		r.With(auth.Require(auth.LoansView)).Get("/repayments", h.repayments)
		r.With(auth.Require(auth.LoansView)).Get("/schedule", h.schedule)
		r.With(auth.Require(auth.LoansView)).Get("/statement", h.statement)
		r.With(auth.Require(auth.RepaymentsRecord)).Post("/repayments", h.recordRepayment)
		r.With(auth.Require(auth.LoansManage)).Post("/archive", h.archive)
		r.With(auth.Require(auth.LoansManage)).Post("/restore", h.restore)
		r.With(auth.Require(auth.LoansDelete)).Delete("/", h.delete)
	})
}

type createLoanRequest struct {
	Reference    string          `json:"reference" validate:"max=64"`
	Principal    decimal.Decimal `json:"principal"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	TenureMonths int             `json:"tenure_months" validate:"gt=0,lte=600"`
	StartDate    string          `json:"start_date" validate:"required,datetime=2006-01-02"`
}

type recordRepaymentRequest struct {
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
	Notes     string          `json:"notes" validate:"max=500"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createLoanRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	start, _ := time.Parse(time.DateOnly, req.StartDate)

	l, err := h.svc.Create(r.Context(), loan.CreateParams{
		Reference:    req.Reference,
		Principal:    req.Principal,
		InterestRate: req.InterestRate,
		TenureMonths: req.TenureMonths,
		StartDate:    start,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(l))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := loan.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(loan.Status(s))
	}

	if r.URL.Query().Get("include_archived") == "true" {
		filter.IncludeArchived = true
	}

	loans, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(loans))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	l, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(l))
}

func (h *Handler) due(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	asOf := h.svc.Now()

	if s := r.URL.Query().Get("as_of"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			respond.BadRequest(w, "invalid as_of: %s", s)
			return
		}

		asOf = t
	}

	_, due, err := h.svc.Due(r.Context(), id, asOf)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, dueResponse{
		LoanID:    id,
		AsOf:      asOf.Format(time.DateOnly),
		Principal: due.Principal.Round(2),
		Interest:  due.Interest.Round(2),
		Total:     due.Total().Round(2),
	})
}

func (h *Handler) recordRepayment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req recordRepaymentRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	res, err := h.svc.RecordRepayment(r.Context(), loan.RepaymentParams{
		LoanID:     id,
		Principal:  req.Principal,
		Interest:   req.Interest,
		Notes:      req.Notes,
		RecordedBy: auth.FromContext(r.Context()).Subject,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	updates := make([]updateResponse, len(res.Installments))
	for i, u := range res.Installments {
		updates[i] = updateResponse{No: u.No, Status: u.Status}
	}

	respond.JSON(w, http.StatusCreated, recordResponse{
		Loan:         toResponse(res.Loan),
		Repayment:    toRepaymentResponse(res.Repayment),
		Installments: updates,
	})
}

func (h *Handler) repayments(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	reps, err := h.svc.Repayments(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]repaymentResponse, len(reps))
	for i, rep := range reps {
		resp[i] = toRepaymentResponse(rep)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) schedule(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	installments, err := h.svc.Installments(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]installmentResponse, len(installments))
	for i, in := range installments {
		resp[i] = toInstallmentResponse(in)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) statement(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	st, err := h.statements.Build(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(statement.Render(st)))
}

func (h *Handler) archive(w http.ResponseWriter, r *http.Request) {
	h.changeStatus(w, r, h.svc.Archive)
}

func (h *Handler) restore(w http.ResponseWriter, r *http.Request) {
	h.changeStatus(w, r, h.svc.Restore)
}

func (h *Handler) changeStatus(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id uuid.UUID) (*loan.Loan, error)) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	l, err := fn(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(l))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return uuid.Nil, false
	}

	return id, true
}
