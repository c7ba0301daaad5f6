package employee

import "context"

// EmployeeRepository is read-only: employee records are created and
// maintained by the HR system.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByStaffID(ctx context.Context, staffID string) (Employee, error)
	List(ctx context.Context, filter Filter) ([]Employee, int64, error)
}
