package attendance

import "context"

// AttendanceService defines the clock-in/clock-out business logic. Clock
// actions are evaluated against the working-hours calendar at the injected
// clock's current time.
type AttendanceService interface {
	// ClockIn records the start of the working day for the staff member.
	ClockIn(ctx context.Context, staffID string) (AttendanceResponse, error)

	// ClockOut completes the day's record.
	ClockOut(ctx context.Context, staffID string) (AttendanceResponse, error)

	// ListAttendance retrieves attendance records with filters (admin).
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// GetMyAttendance retrieves the authenticated employee's records.
	GetMyAttendance(ctx context.Context, employeeID string, filter MyAttendanceFilter) (ListAttendanceResponse, error)
}
