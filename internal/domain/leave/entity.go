package leave

import "time"

// Type is the canonical leave-type vocabulary. The legacy portal also shows
// display names ("Annual Leave", "Off Day", "Sick Leave"); those are
// presentation text, not part of this enum.
type Type string

const (
	TypeRegular Type = "regular"
	TypeOff     Type = "off"
	TypeSick    Type = "sick"
)

func (t Type) Valid() bool {
	return t == TypeRegular || t == TypeOff || t == TypeSick
}

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// Request is a leave request. It is created pending and mutated exactly
// once, by a decision, into a terminal state.
type Request struct {
	ID         string
	EmployeeID string
	LeaveType  Type
	StartDate  time.Time
	EndDate    time.Time
	Reason     string

	Status         RequestStatus
	ApprovedAt     *time.Time
	RejectedAt     *time.Time
	ResumptionDate *time.Time
	TotalDays      int
	DecidedBy      *string

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined for responses
	EmployeeName *string
}

// Entitlement defaults applied when a balance row is first created.
const (
	DefaultRegularLeave = 21
	DefaultOffDays      = 7
)

// Balance is the per-employee leave ledger: remaining entitlement for
// regular and off leave, consumed days for sick leave.
type Balance struct {
	ID             string
	EmployeeID     string
	RegularLeave   int
	OffDays        int
	SickLeaveTaken int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Deduct applies one approved request's days to the ledger. Regular and off
// balances clamp at zero; overdraw is absorbed, not reported. Sick leave is
// a consumption counter and only grows.
func (b Balance) Deduct(t Type, days int) Balance {
	switch t {
	case TypeRegular:
		b.RegularLeave = max(b.RegularLeave-days, 0)
	case TypeOff:
		b.OffDays = max(b.OffDays-days, 0)
	case TypeSick:
		b.SickLeaveTaken += days
	}
	return b
}
