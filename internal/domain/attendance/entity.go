package attendance

import "time"

// Status is the closed set of derived attendance states. Human-readable text
// is rendered from it in the response layer, never stored.
type Status string

const (
	StatusOnTime               Status = "on_time"
	StatusLateWithinLimit      Status = "late_within_limit"
	StatusLateNeedsExplanation Status = "late_needs_explanation"
	StatusCheckedOut           Status = "checked_out"
	StatusLeftEarly            Status = "left_early"
)

// Label renders the presentation text for a status.
func (s Status) Label() string {
	switch s {
	case StatusOnTime:
		return "On time"
	case StatusLateWithinLimit:
		return "Late (within limit)"
	case StatusLateNeedsExplanation:
		return "Late, explanation required"
	case StatusCheckedOut:
		return "Checked out"
	case StatusLeftEarly:
		return "Left early"
	default:
		return string(s)
	}
}

// Attendance is one employee's record for one calendar date. The
// (employee_id, date) pair is unique; the record is created by the first
// clock-in of the day and completed by the clock-out.
type Attendance struct {
	ID               string
	EmployeeID       string
	Date             time.Time
	ClockIn          *time.Time
	ClockOut         *time.Time
	HoursWorked      *float64
	LateMinutes      int
	NeedsExplanation bool
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined for responses
	EmployeeName *string
	Department   *string
}
