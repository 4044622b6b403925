package payroll

import "context"

// PayrollRepository defines data access methods for payroll records.
// The store enforces one record per (employee_id, month, year); Create
// returns ErrPayrollRecordAlreadyExists on a violation.
type PayrollRepository interface {
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)

	// GetByID returns ErrPayrollRecordNotFound on a miss.
	GetByID(ctx context.Context, id int64) (PayrollRecord, error)

	// MarkPaid transitions processed → paid, stamping the payment time and
	// the acting admin. Applied only while the record is still processed, so
	// a concurrent double payment cannot both win; callers distinguish the
	// already-paid case via GetByID.
	MarkPaid(ctx context.Context, id int64, paidBy int64) (PayrollRecord, error)

	// ListByEmployee retrieves an employee's records, newest period first.
	ListByEmployee(ctx context.Context, employeeID int64) ([]PayrollRecord, error)

	// List retrieves records with filters and pagination.
	List(ctx context.Context, filter PayrollFilter) ([]PayrollRecord, int64, error)
}

// SalaryCalculator produces the pay breakdown for one employee-period.
// The strategy is pluggable: the fixed calculator reproduces the source
// system's hardcoded figures, while the attendance calculator derives pay
// from the attendance and overtime ledgers.
type SalaryCalculator interface {
	Calculate(ctx context.Context, employeeID int64, month string, year int) (SalaryBreakdown, error)
}
