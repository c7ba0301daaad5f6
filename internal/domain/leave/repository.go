package leave

import "context"

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	List(ctx context.Context, filter RequestFilter) ([]Request, int64, error)
	GetByEmployeeID(ctx context.Context, employeeID string, filter RequestFilter) ([]Request, int64, error)

	// UpdateDecision writes the terminal state. The update is conditional on
	// the row still being pending; losing that race surfaces as
	// ErrAlreadyProcessed.
	UpdateDecision(ctx context.Context, request Request) error
}

// LeaveBalanceRepository - interface for leave_balances table
type LeaveBalanceRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (Balance, error)

	// Deduct applies an approved request's days to the ledger atomically,
	// with the regular/off clamp enforced in the database.
	Deduct(ctx context.Context, employeeID string, leaveType Type, days int) error
}
