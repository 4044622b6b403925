package attendance

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/employee"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/dates"
	"github.com/go-chi/jwtauth/v5"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	loc *time.Location
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		loc:                  loc,
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

func instantPtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func toResponse(rec attendance.AttendanceRecord) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		Date:         dates.Format(rec.Date),
		CheckIn:      instantPtrToString(rec.CheckIn),
		CheckOut:     instantPtrToString(rec.CheckOut),
	}
	if rec.Complete() {
		hours := rec.WorkDuration().Hours()
		resp.WorkingHours = &hours
	}
	return resp
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now().UTC()
	today := dates.Day(now, a.loc)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}

	if existing != nil {
		if existing.CheckIn != nil {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
		}
		// An override left a checkout-only record for today; claim it.
		existing.CheckIn = &now
		if err := a.AttendanceRepository.Update(ctx, *existing); err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
		}
		return toResponse(*existing), nil
	}

	created, err := a.AttendanceRepository.Create(ctx, attendance.AttendanceRecord{
		EmployeeID: employeeID,
		Date:       today,
		CheckIn:    &now,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now().UTC()
	today := dates.Day(now, a.loc)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}
	if existing == nil || !existing.Open() {
		return attendance.AttendanceResponse{}, attendance.ErrNoActiveCheckIn
	}

	existing.CheckOut = &now
	if err := a.AttendanceRepository.Update(ctx, *existing); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}
	return toResponse(*existing), nil
}

// OverrideCheckIn implements attendance.AttendanceService. Overrides
// overwrite the timestamp unconditionally; they exist to fix records, not
// to enforce the check-in state machine.
func (a *AttendanceServiceImpl) OverrideCheckIn(ctx context.Context, req attendance.OverrideRequest) (attendance.AttendanceResponse, error) {
	return a.override(ctx, req, func(rec *attendance.AttendanceRecord, t time.Time) {
		rec.CheckIn = &t
	})
}

// OverrideCheckOut implements attendance.AttendanceService. With no
// record for today it synthesizes one with only checkOut set; that state
// is accepted deliberately.
func (a *AttendanceServiceImpl) OverrideCheckOut(ctx context.Context, req attendance.OverrideRequest) (attendance.AttendanceResponse, error) {
	return a.override(ctx, req, func(rec *attendance.AttendanceRecord, t time.Time) {
		rec.CheckOut = &t
	})
}

func (a *AttendanceServiceImpl) override(ctx context.Context, req attendance.OverrideRequest, apply func(*attendance.AttendanceRecord, time.Time)) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	today := dates.Day(time.Now().UTC(), a.loc)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}

	if existing != nil {
		apply(existing, req.Instant)
		if err := a.AttendanceRepository.Update(ctx, *existing); err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
		}
		return toResponse(*existing), nil
	}

	rec := attendance.AttendanceRecord{
		EmployeeID: req.EmployeeID,
		Date:       today,
	}
	apply(&rec, req.Instant)

	created, err := a.AttendanceRepository.Create(ctx, rec)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toResponse(created), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	filter.EmployeeID = &employeeID
	return a.list(ctx, filter)
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	return a.list(ctx, filter)
}

func (a *AttendanceServiceImpl) list(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		Attendances: responses,
	}, nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id int64) error {
	return a.AttendanceRepository.Delete(ctx, id)
}
