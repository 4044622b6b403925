package overtime

import "time"

type OvertimeStatus string

const (
	OvertimeStatusPending  OvertimeStatus = "pending"
	OvertimeStatusApproved OvertimeStatus = "approved"
	OvertimeStatusRejected OvertimeStatus = "rejected"
)

// CanTransitionTo encodes the overtime lifecycle: a single pending →
// approved/rejected transition, terminal thereafter.
func (s OvertimeStatus) CanTransitionTo(next OvertimeStatus) bool {
	if s != OvertimeStatusPending {
		return false
	}
	return next == OvertimeStatusApproved || next == OvertimeStatusRejected
}

// OvertimeRecord is a request for extra paid hours on one civil day.
// Rate is a multiplier over the employee's base hourly pay.
type OvertimeRecord struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	Hours      float64
	Rate       float64
	Reason     string
	Status     OvertimeStatus
	ApprovedBy *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined field, populated by admin list queries.
	EmployeeName *string
}
