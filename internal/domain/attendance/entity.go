package attendance

import "time"

// AttendanceRecord is one employee-day on the ledger. Date is a civil day
// (midnight UTC of the day in the ledger timezone); CheckIn and CheckOut are
// absolute UTC instants. At most one record exists per (EmployeeID, Date).
//
// Admin overrides can produce a record with CheckOut set and CheckIn nil.
// The data model accepts that state deliberately; it mirrors the override
// semantics of the system this ledger replaces.
type AttendanceRecord struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined field, populated by admin list queries.
	EmployeeName *string
}

// Open reports whether the record is an unfinished session: checked in,
// not yet checked out.
func (r AttendanceRecord) Open() bool {
	return r.CheckIn != nil && r.CheckOut == nil
}

// Complete reports whether both timestamps are set.
func (r AttendanceRecord) Complete() bool {
	return r.CheckIn != nil && r.CheckOut != nil
}

// WorkDuration returns the worked time for a complete record, zero otherwise.
func (r AttendanceRecord) WorkDuration() time.Duration {
	if !r.Complete() {
		return 0
	}
	return r.CheckOut.Sub(*r.CheckIn)
}
