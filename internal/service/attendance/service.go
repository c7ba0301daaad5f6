package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartpay/smartpay-backend-go/internal/domain/attendance"
	"github.com/smartpay/smartpay-backend-go/internal/domain/employee"
	"github.com/smartpay/smartpay-backend-go/internal/domain/schedule"
	"github.com/smartpay/smartpay-backend-go/internal/pkg/clock"
)

// Clock-ins more than this many minutes late require an HR explanation.
const lateExplanationThresholdMinutes = 30

// One working day, for the informational lateness-to-leave-days figure.
const workdayMinutes = 480

type AttendanceServiceImpl struct {
	clock clock.Clock
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewAttendanceService(
	clk clock.Clock,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		clock:                clk,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
	}
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, staffID string) (attendance.AttendanceResponse, error) {
	emp, err := a.EmployeeRepository.GetByStaffID(ctx, staffID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.clock.Now()
	day := schedule.ScheduleFor(now)
	if !day.Working {
		return attendance.AttendanceResponse{}, attendance.ErrNonWorkingDay
	}

	date := schedule.DateOnly(now)
	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil && existing.ClockIn != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	lateMinutes := 0
	if now.After(day.Start) {
		lateMinutes = int(math.Floor(now.Sub(day.Start).Minutes()))
	}

	status, needsExplanation := deriveClockInStatus(lateMinutes)

	record := attendance.Attendance{
		EmployeeID:       emp.ID,
		Date:             date,
		ClockIn:          &now,
		LateMinutes:      lateMinutes,
		NeedsExplanation: needsExplanation,
		Status:           status,
	}

	created, err := a.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	created.EmployeeName = &emp.FullName
	created.Department = emp.Department
	return mapAttendanceToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, staffID string) (attendance.AttendanceResponse, error) {
	emp, err := a.EmployeeRepository.GetByStaffID(ctx, staffID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.clock.Now()
	date := schedule.DateOnly(now)

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil || record.ClockIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if record.ClockOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	hours := decimal.NewFromFloat(now.Sub(*record.ClockIn).Hours()).Round(2).InexactFloat64()

	// The stored date round-trips through the database as midnight UTC;
	// the schedule must come from the clock's own zone, as in ClockIn.
	day := schedule.ScheduleFor(now)
	status := attendance.StatusCheckedOut
	// The clock-in evaluation already decided needs_explanation for
	// lateness; leaving early adds its own flag independently.
	needsExplanation := record.NeedsExplanation
	if now.Before(day.End) {
		status = attendance.StatusLeftEarly
		needsExplanation = true
	}

	record.ClockOut = &now
	record.HoursWorked = &hours
	record.Status = status
	record.NeedsExplanation = needsExplanation

	if err := a.AttendanceRepository.SetClockOut(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record.EmployeeName = &emp.FullName
	record.Department = emp.Department
	return mapAttendanceToResponse(*record), nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	attendances, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	return buildListResponse(attendances, total, filter.Page, filter.Limit), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, employeeID string, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	attendances, total, err := a.AttendanceRepository.GetMyAttendance(ctx, employeeID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to get my attendance: %w", err)
	}

	return buildListResponse(attendances, total, filter.Page, filter.Limit), nil
}

func deriveClockInStatus(lateMinutes int) (attendance.Status, bool) {
	switch {
	case lateMinutes == 0:
		return attendance.StatusOnTime, false
	case lateMinutes <= lateExplanationThresholdMinutes:
		return attendance.StatusLateWithinLimit, false
	default:
		return attendance.StatusLateNeedsExplanation, true
	}
}

func buildListResponse(attendances []attendance.Attendance, total int64, page, limit int) attendance.ListAttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        page,
		Limit:       limit,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		Attendances: responses,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// mapAttendanceToResponse builds the view model; the entity is not mutated.
func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	var employeeName, department string
	if att.EmployeeName != nil {
		employeeName = *att.EmployeeName
	}
	if att.Department != nil {
		department = *att.Department
	}

	equivalentDays := decimal.NewFromInt(int64(att.LateMinutes)).
		Div(decimal.NewFromInt(workdayMinutes)).
		Round(4).InexactFloat64()

	return attendance.AttendanceResponse{
		ID:                  att.ID,
		EmployeeID:          att.EmployeeID,
		EmployeeName:        employeeName,
		Department:          department,
		Date:                att.Date.Format("2006-01-02"),
		ClockInTime:         timePtrToString(att.ClockIn),
		ClockOutTime:        timePtrToString(att.ClockOut),
		HoursWorked:         att.HoursWorked,
		LateMinutes:         att.LateMinutes,
		NeedsExplanation:    att.NeedsExplanation,
		Status:              string(att.Status),
		StatusLabel:         att.Status.Label(),
		EquivalentLeaveDays: equivalentDays,
	}
}
