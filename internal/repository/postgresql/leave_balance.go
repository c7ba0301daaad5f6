package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/smartpay/smartpay-backend-go/internal/domain/leave"
	"github.com/smartpay/smartpay-backend-go/internal/pkg/database"
)

type leaveBalanceRepository struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepository{db: db}
}

// GetByEmployeeID implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepository) GetByEmployeeID(ctx context.Context, employeeID string) (leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, regular_leave, off_days, sick_leave_taken,
			   created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1
	`

	var b leave.Balance
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&b.ID, &b.EmployeeID, &b.RegularLeave, &b.OffDays, &b.SickLeaveTaken,
		&b.CreatedAt, &b.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Balance{}, leave.ErrBalanceNotFound
		}
		return leave.Balance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	return b, nil
}

// Deduct implements leave.LeaveBalanceRepository. GREATEST keeps the
// entitlement counters from going negative no matter how the deductions
// interleave; sick leave is tracked as consumption and only grows.
func (r *leaveBalanceRepository) Deduct(ctx context.Context, employeeID string, leaveType leave.Type, days int) error {
	q := GetQuerier(ctx, r.db)

	var query string
	switch leaveType {
	case leave.TypeRegular:
		query = `
			UPDATE leave_balances
			SET regular_leave = GREATEST(regular_leave - $2, 0), updated_at = NOW()
			WHERE employee_id = $1
		`
	case leave.TypeOff:
		query = `
			UPDATE leave_balances
			SET off_days = GREATEST(off_days - $2, 0), updated_at = NOW()
			WHERE employee_id = $1
		`
	case leave.TypeSick:
		query = `
			UPDATE leave_balances
			SET sick_leave_taken = sick_leave_taken + $2, updated_at = NOW()
			WHERE employee_id = $1
		`
	default:
		return leave.ErrUnknownLeaveType
	}

	tag, err := q.Exec(ctx, query, employeeID, days)
	if err != nil {
		return fmt.Errorf("failed to deduct leave balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrBalanceNotFound
	}

	return nil
}
