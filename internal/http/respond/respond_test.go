package respond_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/lendbook/internal/credit"
	"github.com/MrJamesThe3rd/lendbook/internal/guarantor"
	"github.com/MrJamesThe3rd/lendbook/internal/http/respond"
	"github.com/MrJamesThe3rd/lendbook/internal/loan"
	"github.com/MrJamesThe3rd/lendbook/internal/money"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{loan.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", credit.ErrNotFound), http.StatusNotFound},
		{guarantor.ErrNotFound, http.StatusNotFound},
		{loan.ErrConflict, http.StatusConflict},
		{loan.ErrArchived, http.StatusConflict},
		{credit.ErrInactive, http.StatusConflict},
		{guarantor.ErrInvalidTransition, http.StatusConflict},
		{fmt.Errorf("%w: tendered 10", loan.ErrExceedsDue), http.StatusUnprocessableEntity},
		{credit.ErrExceedsBalance, http.StatusUnprocessableEntity},
		{money.ErrInvalidInput, http.StatusUnprocessableEntity},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, respond.Status(tt.err))
		})
	}
}

func TestError_HidesInternalMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	respond.Error(rec, req, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

type payload struct {
	Name  string `json:"name" validate:"required"`
	Count int    `json:"count" validate:"gt=0"`
}

func TestDecode(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","count":2}`))

		var p payload
		assert.True(t, respond.Decode(rec, req, &p))
		assert.Equal(t, "a", p.Name)
	})

	t.Run("validation reports json field names", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"count":0}`))

		var p payload
		assert.False(t, respond.Decode(rec, req, &p))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"required"`)
		assert.Contains(t, rec.Body.String(), `"count":"gt"`)
	})

	t.Run("unknown field", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","count":1,"x":1}`))

		var p payload
		assert.False(t, respond.Decode(rec, req, &p))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
