package response

import (
	"context"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/smartpay/smartpay-backend-go/internal/domain/attendance"
	"github.com/smartpay/smartpay-backend-go/internal/domain/employee"
	"github.com/smartpay/smartpay-backend-go/internal/domain/leave"
	"github.com/smartpay/smartpay-backend-go/internal/domain/user"
	"github.com/smartpay/smartpay-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrNonWorkingDay):
		BadRequest(w, "This date is not a working day", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "Not clocked in yet", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already clocked out today")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidDateRange):
		UnprocessableEntity(w, "End date must not be before start date")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrUnknownLeaveType):
		BadRequest(w, "Unknown leave type", nil)
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")

	// Access errors
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing access token")

	// Storage timeouts are transient; the caller may retry.
	case pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded):
		ServiceUnavailable(w, "Storage temporarily unavailable")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
