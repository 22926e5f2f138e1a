package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madison-jay/edike-backend/internal/domain/inventory"
	"github.com/madison-jay/edike-backend/internal/domain/leave"
	"github.com/madison-jay/edike-backend/internal/domain/payroll"
	"github.com/madison-jay/edike-backend/internal/domain/schedule"
	"github.com/madison-jay/edike-backend/internal/domain/user"
	"github.com/madison-jay/edike-backend/internal/pkg/validator"
)

func TestHandleErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation errors", validator.ValidationErrors{{Field: "email", Message: "is required"}}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"duplicate period payment", payroll.ErrDuplicatePeriod, http.StatusBadRequest, "CONFLICT"},
		{"pending deduction exists", payroll.ErrPendingDeductionExists, http.StatusBadRequest, "CONFLICT"},
		{"overlapping schedule", schedule.ErrOverlappingSchedule, http.StatusBadRequest, "CONFLICT"},
		{"sku exists", inventory.ErrSKUExists, http.StatusBadRequest, "CONFLICT"},
		{"barcode exists", inventory.ErrBarcodeExists, http.StatusBadRequest, "CONFLICT"},
		{"insufficient balance", leave.ErrInsufficientBalance, http.StatusBadRequest, "BAD_REQUEST"},
		{"payment not found", payroll.ErrPaymentNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"permission required", user.ErrPermissionRequired, http.StatusForbidden, "FORBIDDEN"},
		{"identity missing", user.ErrIdentityMissing, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"unknown error", errors.New("pool exhausted"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestHandleErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("dial tcp 10.0.0.7:5432: connection refused"))

	assert.NotContains(t, rec.Body.String(), "10.0.0.7")
	assert.Contains(t, rec.Body.String(), "An unexpected error occurred")
}
