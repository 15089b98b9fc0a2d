// Package respond holds the JSON helpers shared by the HTTP handlers.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MrJamesThe3rd/lendbook/internal/credit"
	"github.com/MrJamesThe3rd/lendbook/internal/guarantor"
	"github.com/MrJamesThe3rd/lendbook/internal/importer"
	"github.com/MrJamesThe3rd/lendbook/internal/loan"
	"github.com/MrJamesThe3rd/lendbook/internal/money"
)

const maxBody = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Decode reads a JSON body into v and runs its validate tags. On failure it
// writes the 400 response itself and returns false.
func Decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		JSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}

	if err := validate.Struct(v); err != nil {
		ValidationError(w, err)
		return false
	}

	return true
}

func ValidationError(w http.ResponseWriter, err error) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = fe.Tag()
	}

	JSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields})
}

// BadRequest reports a malformed parameter.
func BadRequest(w http.ResponseWriter, format string, args ...any) {
	JSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf(format, args...)})
}

// Error maps domain errors to status codes. Anything unrecognised is logged
// and reported as a 500 without its message.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		JSON(w, status, errorResponse{Error: http.StatusText(status)})

		return
	}

	JSON(w, status, errorResponse{Error: err.Error()})
}

func Status(err error) int {
	switch {
	case errors.Is(err, loan.ErrNotFound),
		errors.Is(err, credit.ErrNotFound),
		errors.Is(err, guarantor.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, loan.ErrConflict),
		errors.Is(err, credit.ErrConflict),
		errors.Is(err, loan.ErrArchived),
		errors.Is(err, credit.ErrInactive),
		errors.Is(err, guarantor.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, money.ErrInvalidInput),
		errors.Is(err, loan.ErrExceedsDue),
		errors.Is(err, loan.ErrNonPositive),
		errors.Is(err, credit.ErrExceedsBalance),
		errors.Is(err, credit.ErrNonPositive),
		errors.Is(err, credit.ErrInvalidPayoutType),
		errors.Is(err, importer.ErrNoHeader):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
