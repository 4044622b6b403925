package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/overtime"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepository{db: db}
}

// Create implements overtime.OvertimeRepository.
func (r *overtimeRepository) Create(ctx context.Context, record overtime.OvertimeRecord) (overtime.OvertimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_records (employee_id, date, hours, rate, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.Date,
		record.Hours,
		record.Rate,
		record.Reason,
		record.Status,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return overtime.OvertimeRecord{}, fmt.Errorf("failed to create overtime record: %w", err)
	}

	return record, nil
}

// GetByID implements overtime.OvertimeRepository.
func (r *overtimeRepository) GetByID(ctx context.Context, id int64) (overtime.OvertimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT o.id, o.employee_id, o.date, o.hours, o.rate, o.reason, o.status,
		       o.approved_by, o.created_at, o.updated_at,
		       e.name AS employee_name
		FROM overtime_records o
		LEFT JOIN employees e ON e.id = o.employee_id
		WHERE o.id = $1
	`

	var rec overtime.OvertimeRecord
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Hours, &rec.Rate,
		&rec.Reason, &rec.Status, &rec.ApprovedBy,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.OvertimeRecord{}, overtime.ErrOvertimeRequestNotFound
		}
		return overtime.OvertimeRecord{}, fmt.Errorf("failed to get overtime record: %w", err)
	}

	return rec, nil
}

// UpdateStatus implements overtime.OvertimeRepository. Same guarded
// transition as leave requests: the pending precondition lives in the
// WHERE clause.
func (r *overtimeRepository) UpdateStatus(ctx context.Context, id int64, status overtime.OvertimeStatus, approverID int64) (overtime.OvertimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE overtime_records
		SET status = $2, approved_by = $3, updated_at = $4
		WHERE id = $1 AND status = 'pending'
		RETURNING id, employee_id, date, hours, rate, reason, status,
		          approved_by, created_at, updated_at
	`

	var rec overtime.OvertimeRecord
	err := q.QueryRow(ctx, query, id, status, approverID, time.Now().UTC()).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Hours, &rec.Rate,
		&rec.Reason, &rec.Status, &rec.ApprovedBy,
		&rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return overtime.OvertimeRecord{}, getErr
			}
			return overtime.OvertimeRecord{}, overtime.ErrOvertimeRequestAlreadyProcessed
		}
		return overtime.OvertimeRecord{}, fmt.Errorf("failed to update overtime status: %w", err)
	}

	return rec, nil
}

// ListByEmployee implements overtime.OvertimeRepository.
func (r *overtimeRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]overtime.OvertimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, hours, rate, reason, status,
		       approved_by, created_at, updated_at
		FROM overtime_records
		WHERE employee_id = $1
		ORDER BY date DESC, id DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime records by employee: %w", err)
	}
	defer rows.Close()

	return scanOvertimeRows(rows)
}

// List implements overtime.OvertimeRepository.
func (r *overtimeRepository) List(ctx context.Context, filter overtime.OvertimeFilter) ([]overtime.OvertimeRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		baseWhere += fmt.Sprintf(" AND o.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND o.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM overtime_records o WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count overtime records: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT o.id, o.employee_id, o.date, o.hours, o.rate, o.reason, o.status,
		       o.approved_by, o.created_at, o.updated_at,
		       e.name AS employee_name
		FROM overtime_records o
		LEFT JOIN employees e ON e.id = o.employee_id
		WHERE %s
		ORDER BY o.date DESC, o.id DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit, offset := limitOffset(filter.Page, filter.Limit)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query overtime records: %w", err)
	}
	defer rows.Close()

	var records []overtime.OvertimeRecord
	for rows.Next() {
		var rec overtime.OvertimeRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Hours, &rec.Rate,
			&rec.Reason, &rec.Status, &rec.ApprovedBy,
			&rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan overtime record: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, nil
}

// ListApprovedInRange implements overtime.OvertimeRepository.
func (r *overtimeRepository) ListApprovedInRange(ctx context.Context, employeeID int64, from, to time.Time) ([]overtime.OvertimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, hours, rate, reason, status,
		       approved_by, created_at, updated_at
		FROM overtime_records
		WHERE employee_id = $1 AND status = 'approved' AND date >= $2 AND date < $3
		ORDER BY date, id
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved overtime records: %w", err)
	}
	defer rows.Close()

	return scanOvertimeRows(rows)
}

// CountPendingByEmployee implements overtime.OvertimeRepository.
func (r *overtimeRepository) CountPendingByEmployee(ctx context.Context, employeeID int64) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	query := `SELECT COUNT(*) FROM overtime_records WHERE employee_id = $1 AND status = 'pending'`
	if err := q.QueryRow(ctx, query, employeeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending overtime records: %w", err)
	}

	return count, nil
}

func scanOvertimeRows(rows pgx.Rows) ([]overtime.OvertimeRecord, error) {
	var records []overtime.OvertimeRecord
	for rows.Next() {
		var rec overtime.OvertimeRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Hours, &rec.Rate,
			&rec.Reason, &rec.Status, &rec.ApprovedBy,
			&rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
