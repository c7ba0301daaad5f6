package attendance

import "errors"

// Attendance domain errors
var (
	ErrNonWorkingDay      = errors.New("the schedule marks this date as non-working")
	ErrAlreadyCheckedIn   = errors.New("you have already clocked in today")
	ErrNotCheckedIn       = errors.New("you have not clocked in yet")
	ErrAlreadyCheckedOut  = errors.New("you have already clocked out")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
