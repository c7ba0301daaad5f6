package dashboard

import (
	"context"
	"fmt"

	"github.com/smartpay/smartpay-backend-go/internal/domain/dashboard"
	"github.com/smartpay/smartpay-backend-go/internal/pkg/clock"
)

type DashboardServiceImpl struct {
	clock clock.Clock
	dashboard.DashboardRepository
}

func NewDashboardService(clk clock.Clock, repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{clock: clk, DashboardRepository: repo}
}

// Summary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Summary(ctx context.Context) (dashboard.SummaryResponse, error) {
	today := s.clock.Now().Format("2006-01-02")

	tally, err := s.DashboardRepository.GetAttendanceTally(ctx, today)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to get attendance tally: %w", err)
	}

	pending, err := s.DashboardRepository.CountPendingLeaveRequests(ctx)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to count pending leave requests: %w", err)
	}

	onLeave, err := s.DashboardRepository.CountEmployeesOnLeave(ctx, today)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to count employees on leave: %w", err)
	}

	return dashboard.SummaryResponse{
		Date:                 today,
		CheckedIn:            tally.CheckedIn,
		OnTime:               tally.OnTime,
		Late:                 tally.Late,
		LeftEarly:            tally.LeftEarly,
		PendingLeaveRequests: pending,
		OnLeaveToday:         onLeave,
	}, nil
}
