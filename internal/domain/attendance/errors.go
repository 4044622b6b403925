package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn   = errors.New("you have already checked in today")
	ErrNoActiveCheckIn    = errors.New("no active check-in found for today")
	ErrAttendanceNotFound = errors.New("attendance record not found")

	// ErrDuplicateRecord is surfaced by repositories when an insert would
	// violate the one-record-per-employee-per-day constraint.
	ErrDuplicateRecord = errors.New("attendance record already exists for this employee and date")
)
