package dashboard

import "context"

// AttendanceTally groups one day's attendance records by derived status.
type AttendanceTally struct {
	CheckedIn int64
	OnTime    int64
	Late      int64
	LeftEarly int64
}

type SummaryResponse struct {
	Date                 string `json:"date"`
	CheckedIn            int64  `json:"checked_in"`
	OnTime               int64  `json:"on_time"`
	Late                 int64  `json:"late"`
	LeftEarly            int64  `json:"left_early"`
	PendingLeaveRequests int64  `json:"pending_leave_requests"`
	OnLeaveToday         int64  `json:"on_leave_today"`
}

type DashboardRepository interface {
	GetAttendanceTally(ctx context.Context, date string) (AttendanceTally, error)
	CountPendingLeaveRequests(ctx context.Context) (int64, error)
	CountEmployeesOnLeave(ctx context.Context, date string) (int64, error)
}

type DashboardService interface {
	// Summary returns today's attendance tallies and leave workload.
	Summary(ctx context.Context) (SummaryResponse, error)
}
