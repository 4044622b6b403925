package leave

import "time"

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

// CanTransitionTo encodes the leave lifecycle: pending is the only
// non-terminal state, and it may move once to approved or rejected.
func (s LeaveRequestStatus) CanTransitionTo(next LeaveRequestStatus) bool {
	if s != LeaveRequestStatusPending {
		return false
	}
	return next == LeaveRequestStatusApproved || next == LeaveRequestStatusRejected
}

// Terminal reports whether the status admits no further transitions.
func (s LeaveRequestStatus) Terminal() bool {
	return s == LeaveRequestStatusApproved || s == LeaveRequestStatusRejected
}

type LeaveRequest struct {
	ID         int64
	EmployeeID int64
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Type       string
	Status     LeaveRequestStatus
	DecidedBy  *int64
	DecidedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined field, populated by admin list queries.
	EmployeeName *string
}
