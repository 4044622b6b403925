package leave

import (
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	StartDate string `json:"start_date"` // RFC 3339 instant
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
	Type      string `json:"type,omitempty"`

	// Parsed forms, populated by Validate.
	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

var leaveTypes = []string{"annual", "sick", "personal", "unpaid"}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDateTime(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be an RFC 3339 timestamp",
		})
	}
	end, okEnd := validator.IsValidDateTime(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be an RFC 3339 timestamp",
		})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}
	// Type is optional; annual is the default kind.
	if r.Type == "" {
		r.Type = "annual"
	}
	if !validator.IsInSlice(r.Type, leaveTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of annual, sick, personal, unpaid",
		})
	}

	r.Start = start.UTC()
	r.End = end.UTC()

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeaveStatusRequest struct {
	ID     int64  `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateLeaveStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{string(LeaveRequestStatusApproved), string(LeaveRequestStatusRejected)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be 'approved' or 'rejected'",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestFilter struct {
	EmployeeID *int64
	Status     *string
	Page       int
	Limit      int
}

type LeaveRequestResponse struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Reason       string  `json:"reason"`
	Type         string  `json:"type"`
	Status       string  `json:"status"`
	DecidedBy    *int64  `json:"decided_by,omitempty"`
	DecidedAt    *string `json:"decided_at,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type ListLeaveRequestResponse struct {
	TotalCount int64                  `json:"total_count"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	Requests   []LeaveRequestResponse `json:"requests"`
}
