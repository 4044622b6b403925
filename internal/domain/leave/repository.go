package leave

import "context"

// LeaveRequestRepository defines data access methods for leave requests.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	// GetByID returns ErrLeaveRequestNotFound on a miss.
	GetByID(ctx context.Context, id int64) (LeaveRequest, error)

	// UpdateStatus transitions a pending request to a terminal status,
	// recording the decider. The store applies the transition only when the
	// current status is still pending, so two concurrent decisions cannot
	// both win; the loser gets ErrLeaveRequestAlreadyProcessed.
	UpdateStatus(ctx context.Context, id int64, status LeaveRequestStatus, deciderID int64) (LeaveRequest, error)

	// ListByEmployee retrieves an employee's requests, newest first.
	ListByEmployee(ctx context.Context, employeeID int64) ([]LeaveRequest, error)

	// List retrieves requests with filters and pagination.
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)

	// CountPendingByEmployee counts requests still awaiting a decision.
	CountPendingByEmployee(ctx context.Context, employeeID int64) (int64, error)
}
