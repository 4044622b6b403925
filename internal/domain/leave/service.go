package leave

import "context"

type LeaveService interface {
	// CreateLeaveRequest files a request for the authenticated employee;
	// it enters the ledger in the pending state.
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)

	// UpdateLeaveRequestStatus moves a pending request to approved or
	// rejected. Terminal requests reject further transitions.
	UpdateLeaveRequestStatus(ctx context.Context, req UpdateLeaveStatusRequest) (LeaveRequestResponse, error)

	GetMyLeaveRequests(ctx context.Context) ([]LeaveRequestResponse, error)
	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter) (ListLeaveRequestResponse, error)
}
