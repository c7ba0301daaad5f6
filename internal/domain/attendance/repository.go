package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. The
// attendances table is unique on (employee_id, date), which is what
// serializes concurrent clock-ins.
type AttendanceRepository interface {
	// Create inserts the day's record; a unique-key conflict surfaces as
	// ErrAlreadyCheckedIn.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns nil without error when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// SetClockOut completes the record. The update is conditional on
	// clock_out still being unset; losing that race surfaces as
	// ErrAlreadyCheckedOut.
	SetClockOut(ctx context.Context, att Attendance) error

	// List returns records ordered by date, with employee data joined.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// GetMyAttendance returns one employee's records ordered by date.
	GetMyAttendance(ctx context.Context, employeeID string, filter MyAttendanceFilter) ([]Attendance, int64, error)
}
