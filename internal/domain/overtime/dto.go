package overtime

import (
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/pkg/validator"
)

type SubmitOvertimeRequest struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Hours  float64 `json:"hours"`
	Rate   float64 `json:"rate"`
	Reason string  `json:"reason"`

	// Parsed form of Date, populated by Validate.
	Day time.Time `json:"-"`
}

func (r *SubmitOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	day, ok := validator.IsValidDate(r.Date)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a YYYY-MM-DD date",
		})
	}
	r.Day = day

	if r.Hours <= 0 || r.Hours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must be between 0 and 24",
		})
	}
	if r.Rate < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "rate",
			Message: "rate must be at least 1.0",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateOvertimeStatusRequest struct {
	ID     int64  `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateOvertimeStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{string(OvertimeStatusApproved), string(OvertimeStatusRejected)}) {
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

type OvertimeFilter struct {
	EmployeeID *int64
	Status     *string
	Page       int
	Limit      int
}

type OvertimeResponse struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	Hours        float64 `json:"hours"`
	Rate         float64 `json:"rate"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	ApprovedBy   *int64  `json:"approved_by,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type ListOvertimeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	Requests   []OvertimeResponse `json:"requests"`
}
