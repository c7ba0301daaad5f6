package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpay/smartpay-backend-go/internal/domain/attendance"
	"github.com/smartpay/smartpay-backend-go/internal/domain/employee"
	"github.com/smartpay/smartpay-backend-go/internal/pkg/clock"
)

// ===== FAKES =====

type fakeAttendanceRepo struct {
	records map[string]*attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Attendance)}
}

func attendanceKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	key := attendanceKey(att.EmployeeID, att.Date)
	if _, ok := f.records[key]; ok {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
	}
	att.ID = "att-" + key
	f.records[key] = &att
	return att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	att, ok := f.records[attendanceKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	cp := *att
	return &cp, nil
}

func (f *fakeAttendanceRepo) SetClockOut(_ context.Context, att attendance.Attendance) error {
	stored, ok := f.records[attendanceKey(att.EmployeeID, att.Date)]
	if !ok || stored.ClockOut != nil {
		return attendance.ErrAlreadyCheckedOut
	}
	*stored = att
	return nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, _ attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		out = append(out, *att)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) GetMyAttendance(_ context.Context, employeeID string, _ attendance.MyAttendanceFilter) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		if att.EmployeeID == employeeID {
			out = append(out, *att)
		}
	}
	return out, int64(len(out)), nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByStaffID(_ context.Context, staffID string) (employee.Employee, error) {
	emp, ok := f.employees[staffID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.Filter) ([]employee.Employee, int64, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, int64(len(out)), nil
}

func newTestService(now time.Time) (attendance.AttendanceService, *fakeAttendanceRepo) {
	dept := "Engineering"
	attRepo := newFakeAttendanceRepo()
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP-001": {ID: "emp-1", StaffID: "EMP-001", FullName: "Ade Putra", Department: &dept},
	}}
	svc := NewAttendanceService(clock.Fixed{T: now}, attRepo, empRepo)
	return svc, attRepo
}

// ===== CLOCK IN =====

func TestAttendanceService_ClockIn_OnTime(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Tuesday, exactly at the 08:00 start.
	now := time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)

	resp, err := svc.ClockIn(ctx, "EMP-001")
	require.NoError(t, err)

	assert.Equal(t, 0, resp.LateMinutes)
	assert.Equal(t, string(attendance.StatusOnTime), resp.Status)
	assert.False(t, resp.NeedsExplanation)
	assert.Equal(t, "2026-08-25", resp.Date)
	assert.Equal(t, "Ade Putra", resp.EmployeeName)
}

func TestAttendanceService_ClockIn_LateWithinLimit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	now := time.Date(2026, 8, 25, 8, 15, 0, 0, time.UTC)
	svc, _ := newTestService(now)

	resp, err := svc.ClockIn(ctx, "EMP-001")
	require.NoError(t, err)

	assert.Equal(t, 15, resp.LateMinutes)
	assert.Equal(t, string(attendance.StatusLateWithinLimit), resp.Status)
	assert.False(t, resp.NeedsExplanation)
}

func TestAttendanceService_ClockIn_LateNeedsExplanation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	now := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)

	resp, err := svc.ClockIn(ctx, "EMP-001")
	require.NoError(t, err)

	assert.Equal(t, 60, resp.LateMinutes)
	assert.Equal(t, string(attendance.StatusLateNeedsExplanation), resp.Status)
	assert.True(t, resp.NeedsExplanation)
	assert.InDelta(t, 0.125, resp.EquivalentLeaveDays, 0.0001)
}

func TestAttendanceService_ClockIn_ThresholdBoundary(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Exactly 30 minutes late stays within the limit.
	now := time.Date(2026, 8, 25, 8, 30, 0, 0, time.UTC)
	svc, _ := newTestService(now)

	resp, err := svc.ClockIn(ctx, "EMP-001")
	require.NoError(t, err)

	assert.Equal(t, 30, resp.LateMinutes)
	assert.Equal(t, string(attendance.StatusLateWithinLimit), resp.Status)
	assert.False(t, resp.NeedsExplanation)
}

func TestAttendanceService_ClockIn_PartialMinuteFloors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// 14 minutes 59 seconds late counts as 14 minutes.
	now := time.Date(2026, 8, 25, 8, 14, 59, 0, time.UTC)
	svc, _ := newTestService(now)

	resp, err := svc.ClockIn(ctx, "EMP-001")
	require.NoError(t, err)

	assert.Equal(t, 14, resp.LateMinutes)
}

func TestAttendanceService_ClockIn_Sunday(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)

	_, err := svc.ClockIn(ctx, "EMP-001")
	assert.ErrorIs(t, err, attendance.ErrNonWorkingDay)
}

func TestAttendanceService_ClockIn_Twice(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	now := time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)

	_, err := svc.ClockIn(ctx, "EMP-001")
	require.NoError(t, err)

	_, err = svc.ClockIn(ctx, "EMP-001")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestAttendanceService_ClockIn_UnknownStaff(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	now := time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)

	_, err := svc.ClockIn(ctx, "EMP-999")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

// ===== CLOCK OUT =====

func TestAttendanceService_ClockOut_AfterHours(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	clockIn := time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC)
	svc, repo := newTestService(clockIn)

	_, err := svc.ClockIn(ctx, "EMP-001")
	require.NoError(t, err)

	dept := "Engineering"
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP-001": {ID: "emp-1", StaffID: "EMP-001", FullName: "Ade Putra", Department: &dept},
	}}
	later := NewAttendanceService(clock.Fixed{T: time.Date(2026, 8, 25, 17, 30, 0, 0, time.UTC)}, repo, empRepo)

	resp, err := later.ClockOut(ctx, "EMP-001")
	require.NoError(t, err)

	require.NotNil(t, resp.HoursWorked)
	assert.InDelta(t, 9.5, *resp.HoursWorked, 0.001)
	assert.Equal(t, string(attendance.StatusCheckedOut), resp.Status)
	assert.False(t, resp.NeedsExplanation)
	require.NotNil(t, resp.ClockOutTime)
	assert.Equal(t, "2026-08-25 17:30:00", *resp.ClockOutTime)
}

func TestAttendanceService_ClockOut_Early(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	clockIn := time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC)
	svc, repo := newTestService(clockIn)

	_, err := svc.ClockIn(ctx, "EMP-001")
	require.NoError(t, err)

	dept := "Engineering"
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP-001": {ID: "emp-1", StaffID: "EMP-001", FullName: "Ade Putra", Department: &dept},
	}}
	later := NewAttendanceService(clock.Fixed{T: time.Date(2026, 8, 25, 15, 0, 0, 0, time.UTC)}, repo, empRepo)

	resp, err := later.ClockOut(ctx, "EMP-001")
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusLeftEarly), resp.Status)
	assert.True(t, resp.NeedsExplanation)
	require.NotNil(t, resp.HoursWorked)
	assert.InDelta(t, 7.0, *resp.HoursWorked, 0.001)
}

func TestAttendanceService_ClockOut_LateFlagPersists(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Very late clock-in sets needs_explanation; a full-day clock-out must
	// not clear it.
	clockIn := time.Date(2026, 8, 25, 9, 30, 0, 0, time.UTC)
	svc, repo := newTestService(clockIn)

	_, err := svc.ClockIn(ctx, "EMP-001")
	require.NoError(t, err)

	dept := "Engineering"
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP-001": {ID: "emp-1", StaffID: "EMP-001", FullName: "Ade Putra", Department: &dept},
	}}
	later := NewAttendanceService(clock.Fixed{T: time.Date(2026, 8, 25, 17, 0, 0, 0, time.UTC)}, repo, empRepo)

	resp, err := later.ClockOut(ctx, "EMP-001")
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusCheckedOut), resp.Status)
	assert.True(t, resp.NeedsExplanation)
	assert.Equal(t, 90, resp.LateMinutes)
}

func TestAttendanceService_ClockOut_WithoutClockIn(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	now := time.Date(2026, 8, 25, 17, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)

	_, err := svc.ClockOut(ctx, "EMP-001")
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestAttendanceService_ClockOut_Twice(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	clockIn := time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC)
	svc, repo := newTestService(clockIn)

	_, err := svc.ClockIn(ctx, "EMP-001")
	require.NoError(t, err)

	dept := "Engineering"
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP-001": {ID: "emp-1", StaffID: "EMP-001", FullName: "Ade Putra", Department: &dept},
	}}
	later := NewAttendanceService(clock.Fixed{T: time.Date(2026, 8, 25, 17, 30, 0, 0, time.UTC)}, repo, empRepo)

	_, err = later.ClockOut(ctx, "EMP-001")
	require.NoError(t, err)

	_, err = later.ClockOut(ctx, "EMP-001")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestAttendanceService_ClockOut_RecordDateStoredInUTC(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// The date column comes back from the database as midnight UTC. The
	// left-early evaluation must use the clock's zone, not the stored
	// date's: a 17:30 local clock-out is after hours everywhere.
	eat := time.FixedZone("EAT", 3*60*60)
	clockIn := time.Date(2026, 8, 25, 8, 0, 0, 0, eat)
	utcDate := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	repo := newFakeAttendanceRepo()
	repo.records[attendanceKey("emp-1", utcDate)] = &attendance.Attendance{
		ID:         "att-1",
		EmployeeID: "emp-1",
		Date:       utcDate,
		ClockIn:    &clockIn,
		Status:     attendance.StatusOnTime,
	}

	dept := "Engineering"
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP-001": {ID: "emp-1", StaffID: "EMP-001", FullName: "Ade Putra", Department: &dept},
	}}
	svc := NewAttendanceService(clock.Fixed{T: time.Date(2026, 8, 25, 17, 30, 0, 0, eat)}, repo, empRepo)

	resp, err := svc.ClockOut(ctx, "EMP-001")
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusCheckedOut), resp.Status)
	assert.False(t, resp.NeedsExplanation)
	require.NotNil(t, resp.HoursWorked)
	assert.InDelta(t, 9.5, *resp.HoursWorked, 0.001)
}

func TestAttendanceService_ClockOut_SaturdaySchedule(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Saturday ends at 13:00; clocking out at 13:00 is not early.
	clockIn := time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC)
	svc, repo := newTestService(clockIn)

	_, err := svc.ClockIn(ctx, "EMP-001")
	require.NoError(t, err)

	dept := "Engineering"
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP-001": {ID: "emp-1", StaffID: "EMP-001", FullName: "Ade Putra", Department: &dept},
	}}
	later := NewAttendanceService(clock.Fixed{T: time.Date(2026, 8, 29, 13, 0, 0, 0, time.UTC)}, repo, empRepo)

	resp, err := later.ClockOut(ctx, "EMP-001")
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusCheckedOut), resp.Status)
	assert.False(t, resp.NeedsExplanation)
	require.NotNil(t, resp.HoursWorked)
	assert.InDelta(t, 5.0, *resp.HoursWorked, 0.001)
}

// ===== LISTING =====

func TestAttendanceService_GetMyAttendance_Pagination(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	now := time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)

	_, err := svc.ClockIn(ctx, "EMP-001")
	require.NoError(t, err)

	resp, err := svc.GetMyAttendance(ctx, "emp-1", attendance.MyAttendanceFilter{})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.TotalCount)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.Limit)
	assert.Equal(t, 1, resp.TotalPages)
	require.Len(t, resp.Attendances, 1)
	assert.Equal(t, "emp-1", resp.Attendances[0].EmployeeID)
}
