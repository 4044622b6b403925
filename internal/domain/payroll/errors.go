package payroll

import "errors"

// Payroll domain errors
var (
	ErrPayrollRecordNotFound      = errors.New("payroll record not found")
	ErrPayrollRecordAlreadyExists = errors.New("payroll record already exists for this period")
	ErrInvalidStatusTransition    = errors.New("invalid payroll status transition")
	ErrEmployeeNotFound           = errors.New("employee not found")
)
