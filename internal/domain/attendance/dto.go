package attendance

import (
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/pkg/validator"
)

// OverrideRequest is an admin edit of one attendance timestamp. It bypasses
// the check-in/check-out state machine.
type OverrideRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Time       string `json:"time"` // RFC 3339 instant

	// Parsed form of Time, populated by Validate.
	Instant time.Time `json:"-"`
}

func (r *OverrideRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	t, ok := validator.IsValidDateTime(r.Time)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be an RFC 3339 timestamp",
		})
	}
	r.Instant = t.UTC()

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceFilter struct {
	EmployeeID *int64
	Date       *string
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	for field, v := range map[string]*string{"date": f.Date, "start_date": f.StartDate, "end_date": f.EndDate} {
		if v != nil && *v != "" {
			if _, ok := validator.IsValidDate(*v); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: "must be a YYYY-MM-DD date",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	CheckIn      *string `json:"check_in"`
	CheckOut     *string `json:"check_out"`
	WorkingHours *float64 `json:"working_hours,omitempty"`
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	Attendances []AttendanceResponse `json:"attendances"`
}
