package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/payroll"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// Create implements payroll.PayrollRepository. The UNIQUE
// (employee_id, month, year) constraint backs the one-record-per-period
// invariant.
func (r *payrollRepository) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records
			(employee_id, month, year, base_salary, overtime_pay, bonus, deductions, net_salary, status, processed_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.Month,
		record.Year,
		record.BaseSalary,
		record.OvertimePay,
		record.Bonus,
		record.Deductions,
		record.NetSalary,
		record.Status,
		record.ProcessedDate,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return record, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetByID(ctx context.Context, id int64) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.month, p.year, p.base_salary, p.overtime_pay,
		       p.bonus, p.deductions, p.net_salary, p.status, p.processed_date,
		       p.payment_date, p.paid_by, p.created_at, p.updated_at,
		       e.name AS employee_name
		FROM payroll_records p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	var rec payroll.PayrollRecord
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Month, &rec.Year, &rec.BaseSalary,
		&rec.OvertimePay, &rec.Bonus, &rec.Deductions, &rec.NetSalary,
		&rec.Status, &rec.ProcessedDate, &rec.PaymentDate, &rec.PaidBy,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

// MarkPaid implements payroll.PayrollRepository. The WHERE clause guards
// the processed precondition; a no-row result means the record is missing
// or no longer processed, which the caller resolves via GetByID.
func (r *payrollRepository) MarkPaid(ctx context.Context, id int64, paidBy int64) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET status = 'paid', payment_date = $2, paid_by = $3, updated_at = $2
		WHERE id = $1 AND status = 'processed'
		RETURNING id, employee_id, month, year, base_salary, overtime_pay,
		          bonus, deductions, net_salary, status, processed_date,
		          payment_date, paid_by, created_at, updated_at
	`

	var rec payroll.PayrollRecord
	err := q.QueryRow(ctx, query, id, time.Now().UTC(), paidBy).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Month, &rec.Year, &rec.BaseSalary,
		&rec.OvertimePay, &rec.Bonus, &rec.Deductions, &rec.NetSalary,
		&rec.Status, &rec.ProcessedDate, &rec.PaymentDate, &rec.PaidBy,
		&rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return r.GetByID(ctx, id)
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to mark payroll record paid: %w", err)
	}

	return rec, nil
}

// ListByEmployee implements payroll.PayrollRepository.
func (r *payrollRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month, year, base_salary, overtime_pay,
		       bonus, deductions, net_salary, status, processed_date,
		       payment_date, paid_by, created_at, updated_at
		FROM payroll_records
		WHERE employee_id = $1
		ORDER BY year DESC, created_at DESC, id DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records by employee: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		var rec payroll.PayrollRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Month, &rec.Year, &rec.BaseSalary,
			&rec.OvertimePay, &rec.Bonus, &rec.Deductions, &rec.NetSalary,
			&rec.Status, &rec.ProcessedDate, &rec.PaymentDate, &rec.PaidBy,
			&rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		baseWhere += fmt.Sprintf(" AND p.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Month != nil && *filter.Month != "" {
		baseWhere += fmt.Sprintf(" AND p.month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		baseWhere += fmt.Sprintf(" AND p.year = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND p.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM payroll_records p WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT p.id, p.employee_id, p.month, p.year, p.base_salary, p.overtime_pay,
		       p.bonus, p.deductions, p.net_salary, p.status, p.processed_date,
		       p.payment_date, p.paid_by, p.created_at, p.updated_at,
		       e.name AS employee_name
		FROM payroll_records p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE %s
		ORDER BY p.year DESC, p.created_at DESC, p.id DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit, offset := limitOffset(filter.Page, filter.Limit)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		var rec payroll.PayrollRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Month, &rec.Year, &rec.BaseSalary,
			&rec.OvertimePay, &rec.Bonus, &rec.Deductions, &rec.NetSalary,
			&rec.Status, &rec.ProcessedDate, &rec.PaymentDate, &rec.PaidBy,
			&rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, nil
}
