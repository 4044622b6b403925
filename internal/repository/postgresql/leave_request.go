package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/leave"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (employee_id, start_date, end_date, reason, type, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID,
		request.StartDate,
		request.EndDate,
		request.Reason,
		request.Type,
		request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.employee_id, l.start_date, l.end_date, l.reason, l.type, l.status,
		       l.decided_by, l.decided_at, l.created_at, l.updated_at,
		       e.name AS employee_name
		FROM leave_requests l
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate, &req.Reason,
		&req.Type, &req.Status, &req.DecidedBy, &req.DecidedAt,
		&req.CreatedAt, &req.UpdatedAt, &req.EmployeeName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// UpdateStatus implements leave.LeaveRequestRepository. The WHERE clause
// guards the pending precondition so concurrent decisions cannot both
// win; the row's prior state decides which error the loser sees.
func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id int64, status leave.LeaveRequestStatus, deciderID int64) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, decided_by = $3, decided_at = $4, updated_at = $4
		WHERE id = $1 AND status = 'pending'
		RETURNING id, employee_id, start_date, end_date, reason, type, status,
		          decided_by, decided_at, created_at, updated_at
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id, status, deciderID, time.Now().UTC()).Scan(
		&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate, &req.Reason,
		&req.Type, &req.Status, &req.DecidedBy, &req.DecidedAt,
		&req.CreatedAt, &req.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Distinguish a missing row from one already decided.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return leave.LeaveRequest{}, getErr
			}
			return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request status: %w", err)
	}

	return req, nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_date, end_date, reason, type, status,
		       decided_by, decided_at, created_at, updated_at
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests by employee: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate, &req.Reason,
			&req.Type, &req.Status, &req.DecidedBy, &req.DecidedAt,
			&req.CreatedAt, &req.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		baseWhere += fmt.Sprintf(" AND l.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND l.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM leave_requests l WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT l.id, l.employee_id, l.start_date, l.end_date, l.reason, l.type, l.status,
		       l.decided_by, l.decided_at, l.created_at, l.updated_at,
		       e.name AS employee_name
		FROM leave_requests l
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE %s
		ORDER BY l.created_at DESC, l.id DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit, offset := limitOffset(filter.Page, filter.Limit)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate, &req.Reason,
			&req.Type, &req.Status, &req.DecidedBy, &req.DecidedAt,
			&req.CreatedAt, &req.UpdatedAt, &req.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, total, nil
}

// CountPendingByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) CountPendingByEmployee(ctx context.Context, employeeID int64) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	query := `SELECT COUNT(*) FROM leave_requests WHERE employee_id = $1 AND status = 'pending'`
	if err := q.QueryRow(ctx, query, employeeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending leave requests: %w", err)
	}

	return count, nil
}
