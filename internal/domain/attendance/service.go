package attendance

import "context"

type AttendanceService interface {
	// CheckIn opens today's session for the authenticated employee.
	CheckIn(ctx context.Context) (AttendanceResponse, error)

	// CheckOut closes today's open session for the authenticated employee.
	CheckOut(ctx context.Context) (AttendanceResponse, error)

	// OverrideCheckIn and OverrideCheckOut are admin edits that overwrite one
	// timestamp on today's record, creating the record if necessary.
	OverrideCheckIn(ctx context.Context, req OverrideRequest) (AttendanceResponse, error)
	OverrideCheckOut(ctx context.Context, req OverrideRequest) (AttendanceResponse, error)

	GetMyAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
	DeleteAttendance(ctx context.Context, id int64) error
}
