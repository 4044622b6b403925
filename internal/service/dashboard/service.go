package dashboard

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/dashboard"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/employee"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/leave"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/overtime"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/payroll"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/dates"
	"github.com/go-chi/jwtauth/v5"
)

type DashboardServiceImpl struct {
	attendance.AttendanceRepository
	leave.LeaveRequestRepository
	overtime.OvertimeRepository
	payroll.PayrollRepository
	employee.EmployeeRepository
	loc *time.Location
}

func NewDashboardService(
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	overtimeRepo overtime.OvertimeRepository,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		AttendanceRepository:   attendanceRepo,
		LeaveRequestRepository: leaveRepo,
		OvertimeRepository:     overtimeRepo,
		PayrollRepository:      payrollRepo,
		EmployeeRepository:     employeeRepo,
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

// weeklyHours sums checkOut − checkIn over the trailing seven days'
// complete records.
func weeklyHours(records []attendance.AttendanceRecord) float64 {
	var total float64
	for _, rec := range records {
		total += rec.WorkDuration().Hours()
	}
	return total
}

// GetEmployeeOverview implements dashboard.DashboardService.
func (d *DashboardServiceImpl) GetEmployeeOverview(ctx context.Context) (dashboard.EmployeeOverviewResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return dashboard.EmployeeOverviewResponse{}, err
	}

	today := dates.Day(time.Now().UTC(), d.loc)

	todayRec, err := d.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return dashboard.EmployeeOverviewResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}

	weekAgo := dates.AddDays(today, -6)
	weekRecords, err := d.AttendanceRepository.ListByEmployee(ctx, employeeID, weekAgo)
	if err != nil {
		return dashboard.EmployeeOverviewResponse{}, fmt.Errorf("failed to list weekly attendance: %w", err)
	}

	pendingLeave, err := d.LeaveRequestRepository.CountPendingByEmployee(ctx, employeeID)
	if err != nil {
		return dashboard.EmployeeOverviewResponse{}, fmt.Errorf("failed to count pending leave requests: %w", err)
	}

	pendingOvertime, err := d.OvertimeRepository.CountPendingByEmployee(ctx, employeeID)
	if err != nil {
		return dashboard.EmployeeOverviewResponse{}, fmt.Errorf("failed to count pending overtime requests: %w", err)
	}

	resp := dashboard.EmployeeOverviewResponse{
		EmployeeID:      employeeID,
		PresentToday:    todayRec != nil && todayRec.Open(),
		CheckedOutToday: todayRec != nil && todayRec.CheckOut != nil,
		WeeklyHours:     weeklyHours(weekRecords),
		PendingLeave:    pendingLeave,
		PendingOvertime: pendingOvertime,
	}

	payrolls, err := d.PayrollRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return dashboard.EmployeeOverviewResponse{}, fmt.Errorf("failed to list payroll records: %w", err)
	}
	if len(payrolls) > 0 {
		latest := payrolls[0]
		summary := fmt.Sprintf("%s %d (%s)", latest.Month, latest.Year, latest.Status)
		resp.LastPayroll = &summary
	}

	return resp, nil
}

// GetAdminOverview implements dashboard.DashboardService.
func (d *DashboardServiceImpl) GetAdminOverview(ctx context.Context) (dashboard.AdminOverviewResponse, error) {
	employees, err := d.EmployeeRepository.List(ctx)
	if err != nil {
		return dashboard.AdminOverviewResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	today := dates.Day(time.Now().UTC(), d.loc)
	weekAgo := dates.AddDays(today, -6)

	resp := dashboard.AdminOverviewResponse{
		TotalEmployees: len(employees),
		Employees:      make([]dashboard.EmployeeOverviewEntry, 0, len(employees)),
	}

	for _, emp := range employees {
		todayRec, err := d.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, today)
		if err != nil {
			return dashboard.AdminOverviewResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
		}

		weekRecords, err := d.AttendanceRepository.ListByEmployee(ctx, emp.ID, weekAgo)
		if err != nil {
			return dashboard.AdminOverviewResponse{}, fmt.Errorf("failed to list weekly attendance: %w", err)
		}

		pendingLeave, err := d.LeaveRequestRepository.CountPendingByEmployee(ctx, emp.ID)
		if err != nil {
			return dashboard.AdminOverviewResponse{}, fmt.Errorf("failed to count pending leave requests: %w", err)
		}

		pendingOvertime, err := d.OvertimeRepository.CountPendingByEmployee(ctx, emp.ID)
		if err != nil {
			return dashboard.AdminOverviewResponse{}, fmt.Errorf("failed to count pending overtime requests: %w", err)
		}

		present := todayRec != nil && todayRec.Open()
		if present {
			resp.PresentToday++
		}
		resp.PendingLeave += pendingLeave
		resp.PendingOvertime += pendingOvertime

		resp.Employees = append(resp.Employees, dashboard.EmployeeOverviewEntry{
			EmployeeID:   emp.ID,
			Name:         emp.Name,
			Department:   emp.Department,
			PresentToday: present,
			WeeklyHours:  weeklyHours(weekRecords),
			PendingCount: pendingLeave + pendingOvertime,
		})
	}

	return resp, nil
}
