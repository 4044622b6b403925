package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// The store owns id allocation and enforces the (employee_id, date)
// uniqueness constraint; Create returns ErrDuplicateRecord on a violation.
type AttendanceRepository interface {
	Create(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)

	// GetByID returns ErrAttendanceNotFound on a miss.
	GetByID(ctx context.Context, id int64) (AttendanceRecord, error)

	// GetByEmployeeAndDate retrieves the record for one employee-day.
	// Returns (nil, nil) when no record exists; used for the double
	// check-in guard and by the admin override paths.
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*AttendanceRecord, error)

	// Update persists timestamp changes to an existing record. Returns
	// ErrAttendanceNotFound when the id no longer resolves.
	Update(ctx context.Context, record AttendanceRecord) error

	// Delete removes a record; returns ErrAttendanceNotFound on a miss.
	Delete(ctx context.Context, id int64) error

	// ListByEmployee retrieves an employee's records with date >= since,
	// newest first.
	ListByEmployee(ctx context.Context, employeeID int64, since time.Time) ([]AttendanceRecord, error)

	// List retrieves records with filters and pagination.
	List(ctx context.Context, filter AttendanceFilter) ([]AttendanceRecord, int64, error)

	// ListOpenBefore retrieves records still open with date < day.
	// Used by the stale-session watchdog.
	ListOpenBefore(ctx context.Context, day time.Time) ([]AttendanceRecord, error)
}
