package overtime

import (
	"context"
	"time"
)

// OvertimeRepository defines data access methods for overtime requests.
type OvertimeRepository interface {
	Create(ctx context.Context, record OvertimeRecord) (OvertimeRecord, error)

	// GetByID returns ErrOvertimeRequestNotFound on a miss.
	GetByID(ctx context.Context, id int64) (OvertimeRecord, error)

	// UpdateStatus transitions a pending request to a terminal status,
	// recording the approving admin. Applied only while the request is still
	// pending; otherwise ErrOvertimeRequestAlreadyProcessed.
	UpdateStatus(ctx context.Context, id int64, status OvertimeStatus, approverID int64) (OvertimeRecord, error)

	// ListByEmployee retrieves an employee's requests, newest first.
	ListByEmployee(ctx context.Context, employeeID int64) ([]OvertimeRecord, error)

	// List retrieves requests with filters and pagination.
	List(ctx context.Context, filter OvertimeFilter) ([]OvertimeRecord, int64, error)

	// ListApprovedInRange retrieves approved records with date in
	// [from, to), used by the attendance-based payroll calculator.
	ListApprovedInRange(ctx context.Context, employeeID int64, from, to time.Time) ([]OvertimeRecord, error)

	// CountPendingByEmployee counts requests still awaiting a decision.
	CountPendingByEmployee(ctx context.Context, employeeID int64) (int64, error)
}
