package overtime

import "context"

type OvertimeService interface {
	// SubmitOvertimeRequest files a pending request for the authenticated
	// employee.
	SubmitOvertimeRequest(ctx context.Context, req SubmitOvertimeRequest) (OvertimeResponse, error)

	// UpdateOvertimeStatus moves a pending request to approved or rejected,
	// recording the acting admin's id.
	UpdateOvertimeStatus(ctx context.Context, req UpdateOvertimeStatusRequest) (OvertimeResponse, error)

	GetMyOvertime(ctx context.Context) ([]OvertimeResponse, error)
	ListOvertime(ctx context.Context, filter OvertimeFilter) (ListOvertimeResponse, error)
}
