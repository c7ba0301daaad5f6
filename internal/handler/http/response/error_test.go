package response

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smartpay/smartpay-backend-go/internal/domain/attendance"
	"github.com/smartpay/smartpay-backend-go/internal/domain/employee"
	"github.com/smartpay/smartpay-backend-go/internal/domain/leave"
	"github.com/smartpay/smartpay-backend-go/internal/domain/user"
)

func TestHandleError_StatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"employee not found", employee.ErrEmployeeNotFound, http.StatusNotFound},
		{"non-working day", attendance.ErrNonWorkingDay, http.StatusBadRequest},
		{"already checked in", attendance.ErrAlreadyCheckedIn, http.StatusConflict},
		{"not checked in", attendance.ErrNotCheckedIn, http.StatusBadRequest},
		{"already checked out", attendance.ErrAlreadyCheckedOut, http.StatusConflict},
		{"invalid date range", leave.ErrInvalidDateRange, http.StatusUnprocessableEntity},
		{"already processed", leave.ErrAlreadyProcessed, http.StatusConflict},
		{"balance not found", leave.ErrBalanceNotFound, http.StatusNotFound},
		{"admin required", user.ErrAdminAccessRequired, http.StatusForbidden},
		{"invalid token", user.ErrInvalidToken, http.StatusUnauthorized},
		{"wrapped sentinel", fmt.Errorf("failed to clock in: %w", attendance.ErrAlreadyCheckedIn), http.StatusConflict},
		{"unknown error", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			HandleError(w, tc.err)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestHandleError_StorageTimeout(t *testing.T) {
	t.Parallel()

	// A query deadline surfaces as a timeout error; the caller may retry.
	w := httptest.NewRecorder()
	HandleError(w, fmt.Errorf("failed to list attendances: %w", context.DeadlineExceeded))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
