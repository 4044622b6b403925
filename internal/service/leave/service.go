package leave

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/leave"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/dates"
	"github.com/go-chi/jwtauth/v5"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	loc *time.Location
}

func NewLeaveService(leaveRepo leave.LeaveRequestRepository, loc *time.Location) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRepo,
		loc:                    loc,
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

func toResponse(req leave.LeaveRequest) leave.LeaveRequestResponse {
	resp := leave.LeaveRequestResponse{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		StartDate:    dates.Format(req.StartDate),
		EndDate:      dates.Format(req.EndDate),
		Reason:       req.Reason,
		Type:         req.Type,
		Status:       string(req.Status),
		DecidedBy:    req.DecidedBy,
		CreatedAt:    req.CreatedAt.UTC().Format(time.RFC3339),
	}
	if req.DecidedAt != nil {
		decided := req.DecidedAt.UTC().Format(time.RFC3339)
		resp.DecidedAt = &decided
	}
	return resp
}

// CreateLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	created, err := l.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID: employeeID,
		StartDate:  dates.Day(req.Start, l.loc),
		EndDate:    dates.Day(req.End, l.loc),
		Reason:     req.Reason,
		Type:       req.Type,
		Status:     leave.LeaveRequestStatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return toResponse(created), nil
}

// UpdateLeaveRequestStatus implements leave.LeaveService.
func (l *LeaveServiceImpl) UpdateLeaveRequestStatus(ctx context.Context, req leave.UpdateLeaveStatusRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	adminID, err := employeeIDFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	updated, err := l.LeaveRequestRepository.UpdateStatus(ctx, req.ID, leave.LeaveRequestStatus(req.Status), adminID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return toResponse(updated), nil
}

// GetMyLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) GetMyLeaveRequests(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := l.LeaveRequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toResponse(req))
	}
	return responses, nil
}

// ListLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	requests, total, err := l.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toResponse(req))
	}

	return leave.ListLeaveRequestResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Requests:   responses,
	}, nil
}
