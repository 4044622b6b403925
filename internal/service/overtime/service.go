package overtime

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/overtime"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/dates"
	"github.com/go-chi/jwtauth/v5"
)

type OvertimeServiceImpl struct {
	overtime.OvertimeRepository
}

func NewOvertimeService(overtimeRepo overtime.OvertimeRepository) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		OvertimeRepository: overtimeRepo,
	}
}

func employeeIDFromContext(ctx context.Context) (int64, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	raw, ok := claims["employee_id"].(string)
	if !ok || raw == "" {
		return 0, fmt.Errorf("employee_id claim is missing or invalid")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("employee_id claim is not numeric: %w", err)
	}
	return id, nil
}

func toResponse(rec overtime.OvertimeRecord) overtime.OvertimeResponse {
	return overtime.OvertimeResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		Date:         dates.Format(rec.Date),
		Hours:        rec.Hours,
		Rate:         rec.Rate,
		Reason:       rec.Reason,
		Status:       string(rec.Status),
		ApprovedBy:   rec.ApprovedBy,
		CreatedAt:    rec.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// SubmitOvertimeRequest implements overtime.OvertimeService.
func (o *OvertimeServiceImpl) SubmitOvertimeRequest(ctx context.Context, req overtime.SubmitOvertimeRequest) (overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	created, err := o.OvertimeRepository.Create(ctx, overtime.OvertimeRecord{
		EmployeeID: employeeID,
		Date:       req.Day,
		Hours:      req.Hours,
		Rate:       req.Rate,
		Reason:     req.Reason,
		Status:     overtime.OvertimeStatusPending,
	})
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to create overtime record: %w", err)
	}
	return toResponse(created), nil
}

// UpdateOvertimeStatus implements overtime.OvertimeService.
func (o *OvertimeServiceImpl) UpdateOvertimeStatus(ctx context.Context, req overtime.UpdateOvertimeStatusRequest) (overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	adminID, err := employeeIDFromContext(ctx)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	updated, err := o.OvertimeRepository.UpdateStatus(ctx, req.ID, overtime.OvertimeStatus(req.Status), adminID)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	return toResponse(updated), nil
}

// GetMyOvertime implements overtime.OvertimeService.
func (o *OvertimeServiceImpl) GetMyOvertime(ctx context.Context) ([]overtime.OvertimeResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := o.OvertimeRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime records: %w", err)
	}

	responses := make([]overtime.OvertimeResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}
	return responses, nil
}

// ListOvertime implements overtime.OvertimeService.
func (o *OvertimeServiceImpl) ListOvertime(ctx context.Context, filter overtime.OvertimeFilter) (overtime.ListOvertimeResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	records, total, err := o.OvertimeRepository.List(ctx, filter)
	if err != nil {
		return overtime.ListOvertimeResponse{}, fmt.Errorf("failed to list overtime records: %w", err)
	}

	responses := make([]overtime.OvertimeResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}

	return overtime.ListOvertimeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Requests:   responses,
	}, nil
}
