package leave

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/smartpay/smartpay-backend-go/internal/domain/employee"
	"github.com/smartpay/smartpay-backend-go/internal/domain/leave"
	"github.com/smartpay/smartpay-backend-go/internal/pkg/clock"
	"github.com/smartpay/smartpay-backend-go/internal/pkg/database"
)

type LeaveServiceImpl struct {
	txm   database.TxManager
	clock clock.Clock
	leave.LeaveRequestRepository
	leave.LeaveBalanceRepository
	employee.EmployeeRepository
}

func NewLeaveService(
	txm database.TxManager,
	clk clock.Clock,
	requestRepo leave.LeaveRequestRepository,
	balanceRepo leave.LeaveBalanceRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		txm:                    txm,
		clock:                  clk,
		LeaveRequestRepository: requestRepo,
		LeaveBalanceRepository: balanceRepo,
		EmployeeRepository:     employeeRepo,
	}
}

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, employeeID string, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	if endDate.Before(startDate) {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDateRange
	}

	request := leave.Request{
		EmployeeID:  emp.ID,
		LeaveType:   leave.Type(req.LeaveType),
		StartDate:   startDate,
		EndDate:     endDate,
		Reason:      req.Reason,
		Status:      leave.RequestStatusPending,
		SubmittedAt: s.clock.Now(),
	}

	created, err := s.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	created.EmployeeName = &emp.FullName
	return mapRequestToResponse(created), nil
}

// Approve implements leave.LeaveService. The status flip and the ledger
// deduction commit in one transaction: neither applies without the other.
func (s *LeaveServiceImpl) Approve(ctx context.Context, requestID string, decidedBy string) (leave.LeaveRequestResponse, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if request.Status != leave.RequestStatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrAlreadyProcessed
	}
	if request.EndDate.Before(request.StartDate) {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDateRange
	}

	totalDays := daysInclusive(request.StartDate, request.EndDate)
	resumption := nextWorkingResumption(request.EndDate)
	now := s.clock.Now()

	request.Status = leave.RequestStatusApproved
	request.ApprovedAt = &now
	request.RejectedAt = nil
	request.ResumptionDate = &resumption
	request.TotalDays = totalDays
	request.DecidedBy = &decidedBy

	err = s.txm.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.LeaveRequestRepository.UpdateDecision(txCtx, request); err != nil {
			return err
		}
		return s.LeaveBalanceRepository.Deduct(txCtx, request.EmployeeID, request.LeaveType, totalDays)
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return mapRequestToResponse(request), nil
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, requestID string, decidedBy string) (leave.LeaveRequestResponse, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if request.Status != leave.RequestStatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrAlreadyProcessed
	}

	now := s.clock.Now()
	request.Status = leave.RequestStatusRejected
	request.RejectedAt = &now
	request.ApprovedAt = nil
	request.ResumptionDate = nil
	request.TotalDays = 0
	request.DecidedBy = &decidedBy

	if err := s.LeaveRequestRepository.UpdateDecision(ctx, request); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return mapRequestToResponse(request), nil
}

// GetBalance implements leave.LeaveService.
func (s *LeaveServiceImpl) GetBalance(ctx context.Context, employeeID string) (leave.BalanceResponse, error) {
	balance, err := s.LeaveBalanceRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	return leave.BalanceResponse{
		EmployeeID:     balance.EmployeeID,
		RegularLeave:   balance.RegularLeave,
		OffDays:        balance.OffDays,
		SickLeaveTaken: balance.SickLeaveTaken,
	}, nil
}

// ListRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListRequests(ctx context.Context, filter leave.RequestFilter) (leave.ListLeaveRequestsResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveRequestsResponse{}, err
	}

	requests, total, err := s.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveRequestsResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return buildListResponse(requests, total, filter.Page, filter.Limit), nil
}

// GetMyRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) GetMyRequests(ctx context.Context, employeeID string, filter leave.RequestFilter) (leave.ListLeaveRequestsResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveRequestsResponse{}, err
	}

	requests, total, err := s.LeaveRequestRepository.GetByEmployeeID(ctx, employeeID, filter)
	if err != nil {
		return leave.ListLeaveRequestsResponse{}, fmt.Errorf("failed to get leave requests: %w", err)
	}

	return buildListResponse(requests, total, filter.Page, filter.Limit), nil
}

// daysInclusive counts calendar days covered by the request, both ends
// included.
func daysInclusive(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// nextWorkingResumption is the first day back after the leave ends. Only a
// Sunday is skipped; Saturdays are working days.
func nextWorkingResumption(endDate time.Time) time.Time {
	resumption := endDate.AddDate(0, 0, 1)
	if resumption.Weekday() == time.Sunday {
		resumption = resumption.AddDate(0, 0, 1)
	}
	return resumption
}

func buildListResponse(requests []leave.Request, total int64, page, limit int) leave.ListLeaveRequestsResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, mapRequestToResponse(req))
	}

	return leave.ListLeaveRequestsResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		Requests:   responses,
	}
}

func mapRequestToResponse(req leave.Request) leave.LeaveRequestResponse {
	var employeeName string
	if req.EmployeeName != nil {
		employeeName = *req.EmployeeName
	}

	return leave.LeaveRequestResponse{
		ID:             req.ID,
		EmployeeID:     req.EmployeeID,
		EmployeeName:   employeeName,
		LeaveType:      string(req.LeaveType),
		StartDate:      req.StartDate.Format("2006-01-02"),
		EndDate:        req.EndDate.Format("2006-01-02"),
		Reason:         req.Reason,
		Status:         string(req.Status),
		ApprovedAt:     timePtrToString(req.ApprovedAt),
		RejectedAt:     timePtrToString(req.RejectedAt),
		ResumptionDate: datePtrToString(req.ResumptionDate),
		TotalDays:      req.TotalDays,
		SubmittedAt:    req.SubmittedAt.Format("2006-01-02 15:04:05"),
	}
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func datePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02")
	return &format
}
