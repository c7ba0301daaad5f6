package attendance

import (
	"github.com/smartpay/smartpay-backend-go/internal/pkg/validator"
)

// AttendanceResponse composes the attendance record with read-only employee
// data; neither side is mutated to build it.
type AttendanceResponse struct {
	ID               string   `json:"id"`
	EmployeeID       string   `json:"employee_id"`
	EmployeeName     string   `json:"employee_name,omitempty"`
	Department       string   `json:"department,omitempty"`
	Date             string   `json:"date"`
	ClockInTime      *string  `json:"clock_in_time,omitempty"`
	ClockOutTime     *string  `json:"clock_out_time,omitempty"`
	HoursWorked      *float64 `json:"hours_worked,omitempty"`
	LateMinutes      int      `json:"late_minutes"`
	NeedsExplanation bool     `json:"needs_explanation"`
	Status           string   `json:"status"`
	StatusLabel      string   `json:"status_label"`

	// Informational only: lateness expressed in eight-hour days. Never
	// applied to the leave balance.
	EquivalentLeaveDays float64 `json:"equivalent_leave_days"`
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}

// AttendanceFilter is the admin listing filter.
type AttendanceFilter struct {
	EmployeeID *string
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MyAttendanceFilter is the employee's own listing filter.
type MyAttendanceFilter struct {
	StartDate *string
	EndDate   *string
	Page      int
	Limit     int
}

func (f *MyAttendanceFilter) Validate() error {
	af := AttendanceFilter{StartDate: f.StartDate, EndDate: f.EndDate, Page: f.Page, Limit: f.Limit}
	err := af.Validate()
	f.Page = af.Page
	f.Limit = af.Limit
	return err
}
