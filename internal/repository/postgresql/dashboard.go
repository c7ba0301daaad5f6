package postgresql

import (
	"context"
	"fmt"

	"github.com/smartpay/smartpay-backend-go/internal/domain/dashboard"
	"github.com/smartpay/smartpay-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

// GetAttendanceTally returns one day's attendance grouped by status in a
// single query.
func (r *dashboardRepository) GetAttendanceTally(ctx context.Context, date string) (dashboard.AttendanceTally, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) AS checked_in,
			COALESCE(SUM(CASE WHEN late_minutes = 0 THEN 1 ELSE 0 END), 0) AS on_time,
			COALESCE(SUM(CASE WHEN late_minutes > 0 THEN 1 ELSE 0 END), 0) AS late,
			COALESCE(SUM(CASE WHEN status = 'left_early' THEN 1 ELSE 0 END), 0) AS left_early
		FROM attendances
		WHERE date = $1
	`

	var tally dashboard.AttendanceTally
	err := q.QueryRow(ctx, query, date).Scan(
		&tally.CheckedIn, &tally.OnTime, &tally.Late, &tally.LeftEarly,
	)
	if err != nil {
		return dashboard.AttendanceTally{}, fmt.Errorf("failed to get attendance tally: %w", err)
	}

	return tally, nil
}

func (r *dashboardRepository) CountPendingLeaveRequests(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = 'pending'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending leave requests: %w", err)
	}

	return count, nil
}

func (r *dashboardRepository) CountEmployeesOnLeave(ctx context.Context, date string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(DISTINCT employee_id)
		FROM leave_requests
		WHERE status = 'approved' AND start_date <= $1 AND end_date >= $1
	`

	var count int64
	if err := q.QueryRow(ctx, query, date).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees on leave: %w", err)
	}

	return count, nil
}
