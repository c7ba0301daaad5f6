package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/smartpay/smartpay-backend-go/internal/domain/leave"
	"github.com/smartpay/smartpay-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	request.ID = uuid.NewString()

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type, start_date, end_date, reason,
			status, total_days, submitted_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.ID,
		request.EmployeeID,
		request.LeaveType,
		request.StartDate,
		request.EndDate,
		request.Reason,
		request.Status,
		request.TotalDays,
		request.SubmittedAt,
	).Scan(&request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date, lr.reason,
			   lr.status, lr.approved_at, lr.rejected_at, lr.resumption_date, lr.total_days,
			   lr.decided_by, lr.submitted_at, lr.created_at, lr.updated_at,
			   e.full_name AS employee_name
		FROM leave_requests lr
		LEFT JOIN employees e ON e.id = lr.employee_id
		WHERE lr.id = $1
	`

	var req leave.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate, &req.Reason,
		&req.Status, &req.ApprovedAt, &req.RejectedAt, &req.ResumptionDate, &req.TotalDays,
		&req.DecidedBy, &req.SubmittedAt, &req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	return req, nil
}

// UpdateDecision implements leave.LeaveRequestRepository. The status guard
// in the WHERE clause makes a second concurrent decision lose cleanly
// instead of overwriting a terminal state.
func (r *leaveRequestRepository) UpdateDecision(ctx context.Context, request leave.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, approved_at = $3, rejected_at = $4, resumption_date = $5,
			total_days = $6, decided_by = $7, updated_at = NOW()
		WHERE id = $1 AND status = $8
	`

	tag, err := q.Exec(ctx, query,
		request.ID,
		request.Status,
		request.ApprovedAt,
		request.RejectedAt,
		request.ResumptionDate,
		request.TotalDays,
		request.DecidedBy,
		leave.RequestStatusPending,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave request decision: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrAlreadyProcessed
	}

	return nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) List(ctx context.Context, filter leave.RequestFilter) ([]leave.Request, int64, error) {
	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND lr.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND lr.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	return r.queryList(ctx, baseWhere, args, argIdx, filter.Page, filter.Limit)
}

// GetByEmployeeID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByEmployeeID(ctx context.Context, employeeID string, filter leave.RequestFilter) ([]leave.Request, int64, error) {
	baseWhere := "lr.employee_id = $1"
	args := []interface{}{employeeID}
	argIdx := 2

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND lr.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	return r.queryList(ctx, baseWhere, args, argIdx, filter.Page, filter.Limit)
}

func (r *leaveRequestRepository) queryList(ctx context.Context, baseWhere string, args []interface{}, argIdx, page, limit int) ([]leave.Request, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	countQuery := "SELECT COUNT(*) FROM leave_requests lr WHERE " + baseWhere
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date, lr.reason,
			   lr.status, lr.approved_at, lr.rejected_at, lr.resumption_date, lr.total_days,
			   lr.decided_by, lr.submitted_at, lr.created_at, lr.updated_at,
			   e.full_name AS employee_name
		FROM leave_requests lr
		LEFT JOIN employees e ON e.id = lr.employee_id
		WHERE %s
		ORDER BY lr.submitted_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		var req leave.Request
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate, &req.Reason,
			&req.Status, &req.ApprovedAt, &req.RejectedAt, &req.ResumptionDate, &req.TotalDays,
			&req.DecidedBy, &req.SubmittedAt, &req.CreatedAt, &req.UpdatedAt,
			&req.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return requests, total, nil
}
