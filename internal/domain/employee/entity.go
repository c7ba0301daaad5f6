package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartpay/smartpay-backend-go/internal/domain/user"
)

// Employee is owned by the HR system; this service reads it and never
// writes it.
type Employee struct {
	ID         string
	StaffID    string
	FullName   string
	Email      string
	Department *string
	JobTitle   *string
	Role       user.Role
	BaseSalary *decimal.Decimal
	DateJoined time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
