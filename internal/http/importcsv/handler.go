package importcsv

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/lendbook/internal/auth"
	"github.com/MrJamesThe3rd/lendbook/internal/http/respond"
	"github.com/MrJamesThe3rd/lendbook/internal/importer"
	"github.com/MrJamesThe3rd/lendbook/internal/loan"
)

type Handler struct {
	importSvc *importer.Service
}

func NewHandler(importSvc *importer.Service) *Handler {
	return &Handler{importSvc: importSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.With(auth.Require(auth.RepaymentsImport)).Post("/repayments", h.importRepayments)
}

type appliedResponse struct {
	Line        int              `json:"line"`
	Loan        string           `json:"loan"`
	LoanID      uuid.UUID        `json:"loan_id"`
	RepaymentID uuid.UUID        `json:"repayment_id"`
	Principal   decimal.Decimal  `json:"principal"`
	Interest    decimal.Decimal  `json:"interest"`
	PaymentType loan.PaymentType `json:"payment_type"`
	LoanStatus  loan.Status      `json:"loan_status"`
}

type rejectedResponse struct {
	Line   int    `json:"line"`
	Loan   string `json:"loan,omitempty"`
	Reason string `json:"reason"`
}

type importResponse struct {
	Imported int                `json:"imported"`
	Applied  []appliedResponse  `json:"applied"`
	Rejected []rejectedResponse `json:"rejected"`
}

func (h *Handler) importRepayments(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		respond.BadRequest(w, "failed to parse form: %s", err)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respond.BadRequest(w, "file field is required")
		return
	}
	defer file.Close()

	result, err := h.importSvc.Import(r.Context(), file, auth.FromContext(r.Context()).Subject)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := importResponse{
		Imported: len(result.Applied),
		Applied:  make([]appliedResponse, 0, len(result.Applied)),
		Rejected: make([]rejectedResponse, 0, len(result.Rejected)),
	}

	for _, a := range result.Applied {
		resp.Applied = append(resp.Applied, appliedResponse{
			Line:        a.Line,
			Loan:        a.Loan,
			LoanID:      a.LoanID,
			RepaymentID: a.Repayment.ID,
			Principal:   a.Repayment.AmountPrincipal,
			Interest:    a.Repayment.AmountInterest,
			PaymentType: a.Repayment.PaymentType,
			LoanStatus:  a.Status,
		})
	}

	for _, rej := range result.Rejected {
		resp.Rejected = append(resp.Rejected, rejectedResponse{Line: rej.Line, Loan: rej.Loan, Reason: rej.Reason})
	}

	status := http.StatusCreated
	if len(result.Applied) == 0 {
		status = http.StatusOK
	}

	respond.JSON(w, status, resp)
}
