package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInvalidDateRange     = errors.New("end date must not be before start date")
	ErrAlreadyProcessed     = errors.New("leave request already processed")
	ErrUnknownLeaveType     = errors.New("unknown leave type")
	ErrBalanceNotFound      = errors.New("leave balance not found")
)
