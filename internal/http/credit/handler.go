package credit

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/lendbook/internal/auth"
	"github.com/MrJamesThe3rd/lendbook/internal/credit"
	"github.com/MrJamesThe3rd/lendbook/internal/http/respond"
)

type Handler struct {
	svc *credit.Service
}

func NewHandler(svc *credit.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.With(auth.Require(auth.CreditsView)).Get("/", h.list)
	r.With(auth.Require(auth.CreditsManage)).Post("/", h.create)

	r.Route("/{id}", func(r chi.Router) {
		r.With(auth.Require(auth.CreditsView)).Get("/", h.get)
		r.With(auth.Require(auth.CreditsView)).Get("/accrued", h.accrued)
		r.With(auth.Require(auth.CreditsView)).Get("/payouts", h.payouts)
		r.With(auth.Require(auth.PayoutsRecord)).Post("/payouts", h.recordPayout)
		r.With(auth.Require(auth.CreditsManage)).Post("/archive", h.archive)
		r.With(auth.Require(auth.CreditsManage)).Post("/restore", h.restore)
	})
}

type creditResponse struct {
	ID                 uuid.UUID       `json:"id"`
	Reference          string          `json:"reference,omitempty"`
	Principal          decimal.Decimal `json:"principal"`
	InterestRate       decimal.Decimal `json:"interest_rate"`
	TenureMonths       int             `json:"tenure_months"`
	StartDate          string          `json:"start_date"`
	MaturityDate       string          `json:"maturity_date"`
	RemainingPrincipal decimal.Decimal `json:"remaining_principal"`
	TotalPaidOut       decimal.Decimal `json:"total_paid_out"`
	Status             credit.Status   `json:"status"`
	Version            int64           `json:"version"`
	CreatedAt          time.Time       `json:"created_at"`
	ArchivedAt         *time.Time      `json:"archived_at,omitempty"`
}

type payoutResponse struct {
	ID         uuid.UUID         `json:"id"`
	CreditID   uuid.UUID         `json:"credit_id"`
	Principal  decimal.Decimal   `json:"principal"`
	Interest   decimal.Decimal   `json:"interest"`
	PayoutType credit.PayoutType `json:"payout_type"`
	Notes      string            `json:"notes,omitempty"`
	RecordedBy string            `json:"recorded_by,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

type accruedResponse struct {
	CreditID  uuid.UUID       `json:"credit_id"`
	AsOf      string          `json:"as_of"`
	Accrued   decimal.Decimal `json:"accrued"`
	Remaining decimal.Decimal `json:"remaining_principal"`
}

type createCreditRequest struct {
	Reference    string          `json:"reference" validate:"max=64"`
	Principal    decimal.Decimal `json:"principal"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	TenureMonths int             `json:"tenure_months" validate:"gt=0,lte=600"`
	StartDate    string          `json:"start_date" validate:"required,datetime=2006-01-02"`
}

type recordPayoutRequest struct {
	PayoutType credit.PayoutType `json:"payout_type" validate:"required,oneof=interest_only partial_principal full_maturity early_withdrawal"`
	Principal  decimal.Decimal   `json:"principal"`
	Interest   decimal.Decimal   `json:"interest"`
	Notes      string            `json:"notes" validate:"max=500"`
}

func toResponse(c *credit.Credit) creditResponse {
	return creditResponse{
		ID:                 c.ID,
		Reference:          c.Reference,
		Principal:          c.Principal,
		InterestRate:       c.InterestRate,
		TenureMonths:       c.TenureMonths,
		StartDate:          c.StartDate.Format(time.DateOnly),
		MaturityDate:       c.MaturityDate().Format(time.DateOnly),
		RemainingPrincipal: c.RemainingPrincipal,
		TotalPaidOut:       c.TotalPaidOut,
		Status:             c.Status,
		Version:            c.Version,
		CreatedAt:          c.CreatedAt,
		ArchivedAt:         c.ArchivedAt,
	}
}

func toPayoutResponse(p *credit.Payout) payoutResponse {
	return payoutResponse{
		ID:         p.ID,
		CreditID:   p.CreditID,
		Principal:  p.AmountPrincipal,
		Interest:   p.AmountInterest,
		PayoutType: p.PayoutType,
		Notes:      p.Notes,
		RecordedBy: p.RecordedBy,
		CreatedAt:  p.CreatedAt,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createCreditRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	start, _ := time.Parse(time.DateOnly, req.StartDate)

	c, err := h.svc.Create(r.Context(), credit.CreateParams{
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

	respond.JSON(w, http.StatusCreated, toResponse(c))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := credit.ListFilter{IncludeArchived: r.URL.Query().Get("include_archived") == "true"}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(credit.Status(s))
	}

	credits, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]creditResponse, len(credits))
	for i, c := range credits {
		resp[i] = toResponse(c)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(c))
}

func (h *Handler) accrued(w http.ResponseWriter, r *http.Request) {
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

	c, accrued, err := h.svc.Accrued(r.Context(), id, asOf)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, accruedResponse{
		CreditID:  c.ID,
		AsOf:      asOf.Format(time.DateOnly),
		Accrued:   accrued.Round(2),
		Remaining: c.RemainingPrincipal,
	})
}

func (h *Handler) recordPayout(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req recordPayoutRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	res, err := h.svc.RecordPayout(r.Context(), credit.PayoutParams{
		CreditID:   id,
		Type:       req.PayoutType,
		Principal:  req.Principal,
		Interest:   req.Interest,
		Notes:      req.Notes,
		RecordedBy: auth.FromContext(r.Context()).Subject,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]any{
		"credit": toResponse(res.Credit),
		"payout": toPayoutResponse(res.Payout),
	})
}

func (h *Handler) payouts(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	payouts, err := h.svc.Payouts(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]payoutResponse, len(payouts))
	for i, p := range payouts {
		resp[i] = toPayoutResponse(p)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) archive(w http.ResponseWriter, r *http.Request) {
	h.changeStatus(w, r, h.svc.Archive)
}

func (h *Handler) restore(w http.ResponseWriter, r *http.Request) {
	h.changeStatus(w, r, h.svc.Restore)
}

func (h *Handler) changeStatus(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id uuid.UUID) (*credit.Credit, error)) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	c, err := fn(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(c))
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return uuid.Nil, false
	}

	return id, true
}
