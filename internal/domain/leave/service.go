package leave

import "context"

// LeaveService drives a leave request from submission to a terminal
// decision and exposes the balance ledger.
type LeaveService interface {
	// Submit creates a pending leave request for the employee.
	Submit(ctx context.Context, employeeID string, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)

	// Approve moves a pending request to approved and deducts the balance;
	// both commit in one transaction.
	Approve(ctx context.Context, requestID string, decidedBy string) (LeaveRequestResponse, error)

	// Reject moves a pending request to rejected. No ledger interaction.
	Reject(ctx context.Context, requestID string, decidedBy string) (LeaveRequestResponse, error)

	// GetBalance returns the employee's ledger counters.
	GetBalance(ctx context.Context, employeeID string) (BalanceResponse, error)

	// ListRequests retrieves leave requests with filters (admin).
	ListRequests(ctx context.Context, filter RequestFilter) (ListLeaveRequestsResponse, error)

	// GetMyRequests retrieves the authenticated employee's requests.
	GetMyRequests(ctx context.Context, employeeID string, filter RequestFilter) (ListLeaveRequestsResponse, error)
}
