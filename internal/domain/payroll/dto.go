package payroll

import (
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ProcessPayrollRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Month      string `json:"month"`
	Year       int    `json:"year"`
}

func (r *ProcessPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsValidMonthName(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be a full English month name"})
	}
	if r.Year < 2000 || r.Year > 2200 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollFilter struct {
	EmployeeID *int64
	Month      *string
	Year       *int
	Status     *string
	Page       int
	Limit      int
}

type PayrollResponse struct {
	ID            int64           `json:"id"`
	EmployeeID    int64           `json:"employee_id"`
	EmployeeName  *string         `json:"employee_name,omitempty"`
	Month         string          `json:"month"`
	Year          int             `json:"year"`
	BaseSalary    decimal.Decimal `json:"base_salary"`
	OvertimePay   decimal.Decimal `json:"overtime_pay"`
	Bonus         decimal.Decimal `json:"bonus"`
	Deductions    decimal.Decimal `json:"deductions"`
	NetSalary     decimal.Decimal `json:"net_salary"`
	Status        string          `json:"status"`
	ProcessedDate *string         `json:"processed_date,omitempty"`
	PaymentDate   *string         `json:"payment_date,omitempty"`
}

type ListPayrollResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Records    []PayrollResponse `json:"records"`
}
