package response

import (
	"errors"
	"net/http"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/auth"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/employee"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/leave"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/overtime"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/payroll"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminRequired):
		Forbidden(w, "Admin access required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrRegistrationCodeNotFound):
		NotFound(w, "Registration code not found")
	case errors.Is(err, employee.ErrRegistrationCodeUsed):
		Conflict(w, "Registration code has already been used")
	case errors.Is(err, employee.ErrRegistrationCodeExpired):
		BadRequest(w, "Registration code has expired", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "You have already checked in today")
	case errors.Is(err, attendance.ErrNoActiveCheckIn):
		BadRequest(w, "No active check-in found for today", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, "Attendance record already exists for this employee and date")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidStatus):
		BadRequest(w, "Invalid leave request status", nil)

	// Overtime domain errors
	case errors.Is(err, overtime.ErrOvertimeRequestNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, overtime.ErrOvertimeRequestAlreadyProcessed):
		Conflict(w, "Overtime request already processed")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollRecordAlreadyExists):
		Conflict(w, "Payroll record already exists for this period")
	case errors.Is(err, payroll.ErrInvalidStatusTransition):
		Conflict(w, "Invalid payroll status transition")
	case errors.Is(err, payroll.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
