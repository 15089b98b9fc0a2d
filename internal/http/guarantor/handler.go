package guarantor

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/lendbook/internal/auth"
	"github.com/MrJamesThe3rd/lendbook/internal/guarantor"
	"github.com/MrJamesThe3rd/lendbook/internal/http/respond"
	"github.com/MrJamesThe3rd/lendbook/internal/loan"
)

type Handler struct {
	svc   *guarantor.Service
	loans *loan.Service
}

func NewHandler(svc *guarantor.Service, loans *loan.Service) *Handler {
	return &Handler{svc: svc, loans: loans}
}

func (h *Handler) Routes(r chi.Router) {
	r.With(auth.Require(auth.LoansView)).Get("/requirement", h.requirement)
	r.With(auth.Require(auth.GuarantorsManage)).Get("/", h.list)
	r.With(auth.Require(auth.GuarantorsManage)).Post("/", h.invite)
	r.With(auth.Require(auth.GuarantorsVerify)).Post("/{id}/verify", h.verify)
	r.With(auth.Require(auth.GuarantorsVerify)).Post("/{id}/reject", h.reject)
}

// PublicRoutes are mounted outside the authenticated group; the access
// token in the path is the only credential.
func (h *Handler) PublicRoutes(r chi.Router) {
	r.Post("/{token}", h.submit)
}

type submissionResponse struct {
	ID          uuid.UUID        `json:"id"`
	LoanID      uuid.UUID        `json:"loan_id"`
	Name        string           `json:"name"`
	Email       string           `json:"email,omitempty"`
	Phone       string           `json:"phone,omitempty"`
	Status      guarantor.Status `json:"status"`
	AccessToken string           `json:"access_token,omitempty"`
	SubmittedAt *time.Time       `json:"submitted_at,omitempty"`
	ReviewedAt  *time.Time       `json:"reviewed_at,omitempty"`
	ReviewedBy  string           `json:"reviewed_by,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

type requirementResponse struct {
	Amount   decimal.Decimal `json:"amount"`
	Required int             `json:"required"`
	Valid    bool            `json:"valid"`
	Message  string          `json:"message,omitempty"`
}

type loanGuarantorsResponse struct {
	LoanID      uuid.UUID            `json:"loan_id"`
	Required    int                  `json:"required"`
	Verified    int                  `json:"verified"`
	Submitted   int                  `json:"submitted"`
	Pending     int                  `json:"pending"`
	Satisfied   bool                 `json:"satisfied"`
	Submissions []submissionResponse `json:"submissions"`
}

type inviteRequest struct {
	LoanID uuid.UUID `json:"loan_id" validate:"required"`
	Name   string    `json:"name" validate:"required,max=200"`
	Email  string    `json:"email" validate:"omitempty,email"`
	Phone  string    `json:"phone" validate:"omitempty,max=32"`
}

type submitRequest struct {
	Name  string `json:"name" validate:"omitempty,max=200"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,max=32"`
}

func toResponse(s *guarantor.Submission, withToken bool) submissionResponse {
	resp := submissionResponse{
		ID:          s.ID,
		LoanID:      s.LoanID,
		Name:        s.Name,
		Email:       s.Email,
		Phone:       s.Phone,
		Status:      s.Status,
		SubmittedAt: s.SubmittedAt,
		ReviewedAt:  s.ReviewedAt,
		ReviewedBy:  s.ReviewedBy,
		CreatedAt:   s.CreatedAt,
	}

	if withToken {
		resp.AccessToken = s.AccessToken
	}

	return resp
}

func (h *Handler) requirement(w http.ResponseWriter, r *http.Request) {
	amount, err := decimal.NewFromString(r.URL.Query().Get("amount"))
	if err != nil {
		respond.BadRequest(w, "invalid amount")
		return
	}

	cfg := h.svc.Config()
	v := cfg.ValidateAmount(amount)

	respond.JSON(w, http.StatusOK, requirementResponse{
		Amount:   amount,
		Required: cfg.RequiredGuarantors(amount),
		Valid:    v.Valid,
		Message:  v.Message,
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	loanID, err := uuid.Parse(r.URL.Query().Get("loan_id"))
	if err != nil {
		respond.BadRequest(w, "invalid loan_id")
		return
	}

	l, err := h.loans.Get(r.Context(), loanID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	subs, err := h.svc.List(r.Context(), loanID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	req, err := h.svc.RequirementStatus(r.Context(), loanID, l.Principal)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := loanGuarantorsResponse{
		LoanID:      loanID,
		Required:    req.Required,
		Verified:    req.Verified,
		Submitted:   req.Submitted,
		Pending:     req.Pending,
		Satisfied:   req.Satisfied(),
		Submissions: make([]submissionResponse, len(subs)),
	}
	for i, s := range subs {
		resp.Submissions[i] = toResponse(s, false)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) invite(w http.ResponseWriter, r *http.Request) {
	var req inviteRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	if _, err := h.loans.Get(r.Context(), req.LoanID); err != nil {
		respond.Error(w, r, err)
		return
	}

	sub, err := h.svc.Invite(r.Context(), guarantor.InviteParams{
		LoanID: req.LoanID,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(sub, true))
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.svc.Verify)
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.svc.Reject)
}

func (h *Handler) review(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id uuid.UUID, reviewer string) (*guarantor.Submission, error)) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	sub, err := fn(r.Context(), id, auth.FromContext(r.Context()).Subject)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(sub, false))
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	sub, err := h.svc.Submit(r.Context(), chi.URLParam(r, "token"), guarantor.SubmitParams{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(sub, false))
}
