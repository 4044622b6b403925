package payroll

import "context"

type PayrollService interface {
	// ProcessPayroll creates the processed record for one employee-period,
	// using the configured salary calculator. One record per period.
	ProcessPayroll(ctx context.Context, req ProcessPayrollRequest) (PayrollResponse, error)

	// MarkPayrollAsPaid transitions processed → paid. Calling it on a record
	// that is already paid is a no-op returning the record unchanged.
	MarkPayrollAsPaid(ctx context.Context, id int64) (PayrollResponse, error)

	GetMyPayroll(ctx context.Context) ([]PayrollResponse, error)
	ListPayroll(ctx context.Context, filter PayrollFilter) (ListPayrollResponse, error)
}
