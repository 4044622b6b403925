package dashboard

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/dashboard"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/employee"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/leave"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/dates"
	"github.com/attendly-hq/attendly-backend-go/internal/repository/jsonstore"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc         dashboard.DashboardService
	employees   employee.EmployeeRepository
	attendances attendance.AttendanceRepository
	leaves      leave.LeaveRequestRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := jsonstore.New(t.TempDir())
	require.NoError(t, err)

	f := &fixture{
		employees:   jsonstore.NewEmployeeRepository(store),
		attendances: jsonstore.NewAttendanceRepository(store),
		leaves:      jsonstore.NewLeaveRequestRepository(store),
	}
	f.svc = NewDashboardService(
		f.attendances,
		f.leaves,
		jsonstore.NewOvertimeRepository(store),
		jsonstore.NewPayrollRepository(store),
		f.employees,
		time.UTC,
	)
	return f
}

func authedContext(t *testing.T, employeeID int64) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"employee_id": strconv.FormatInt(employeeID, 10),
		"role":        "employee",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestEmployeeOverviewReflectsLedgerState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	emp, err := f.employees.Create(ctx, employee.Employee{
		Name:       "Citra Lestari",
		Email:      "citra@attendly.dev",
		Role:       employee.RoleEmployee,
		Department: "Design",
	})
	require.NoError(t, err)

	// An open session today plus a complete one two days ago.
	today := dates.Day(time.Now().UTC(), time.UTC)
	now := time.Now().UTC()
	_, err = f.attendances.Create(ctx, attendance.AttendanceRecord{
		EmployeeID: emp.ID,
		Date:       today,
		CheckIn:    &now,
	})
	require.NoError(t, err)

	past := dates.AddDays(today, -2)
	checkIn := past.Add(9 * time.Hour)
	checkOut := checkIn.Add(8 * time.Hour)
	_, err = f.attendances.Create(ctx, attendance.AttendanceRecord{
		EmployeeID: emp.ID,
		Date:       past,
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
	})
	require.NoError(t, err)

	_, err = f.leaves.Create(ctx, leave.LeaveRequest{
		EmployeeID: emp.ID,
		StartDate:  dates.AddDays(today, 7),
		EndDate:    dates.AddDays(today, 9),
		Reason:     "holiday",
		Type:       "annual",
		Status:     leave.LeaveRequestStatusPending,
	})
	require.NoError(t, err)

	overview, err := f.svc.GetEmployeeOverview(authedContext(t, emp.ID))
	require.NoError(t, err)

	assert.True(t, overview.PresentToday)
	assert.False(t, overview.CheckedOutToday)
	assert.InDelta(t, 8.0, overview.WeeklyHours, 0.01)
	assert.Equal(t, int64(1), overview.PendingLeave)
	assert.Equal(t, int64(0), overview.PendingOvertime)
	assert.Nil(t, overview.LastPayroll)
}

func TestEmployeeOverviewAfterCheckOutIsNotPresent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	emp, err := f.employees.Create(ctx, employee.Employee{
		Name:       "Dewi Anggraini",
		Email:      "dewi@attendly.dev",
		Role:       employee.RoleEmployee,
		Department: "Finance",
	})
	require.NoError(t, err)

	// A complete session today: present-today must drop once check-out lands,
	// matching the admin overview's presence rule.
	today := dates.Day(time.Now().UTC(), time.UTC)
	checkIn := today.Add(9 * time.Hour)
	checkOut := checkIn.Add(8 * time.Hour)
	_, err = f.attendances.Create(ctx, attendance.AttendanceRecord{
		EmployeeID: emp.ID,
		Date:       today,
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
	})
	require.NoError(t, err)

	overview, err := f.svc.GetEmployeeOverview(authedContext(t, emp.ID))
	require.NoError(t, err)

	assert.False(t, overview.PresentToday)
	assert.True(t, overview.CheckedOutToday)
	assert.InDelta(t, 8.0, overview.WeeklyHours, 0.01)
}

func TestAdminOverviewAggregatesAcrossEmployees(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var staff []employee.Employee
	for _, name := range []string{"Ana", "Bima", "Cahyo"} {
		emp, err := f.employees.Create(ctx, employee.Employee{
			Name:       name,
			Email:      name + "@attendly.dev",
			Role:       employee.RoleEmployee,
			Department: "Support",
		})
		require.NoError(t, err)
		staff = append(staff, emp)
	}

	today := dates.Day(time.Now().UTC(), time.UTC)
	now := time.Now().UTC()
	_, err := f.attendances.Create(ctx, attendance.AttendanceRecord{
		EmployeeID: staff[0].ID,
		Date:       today,
		CheckIn:    &now,
	})
	require.NoError(t, err)

	_, err = f.leaves.Create(ctx, leave.LeaveRequest{
		EmployeeID: staff[1].ID,
		StartDate:  today,
		EndDate:    today,
		Reason:     "sick",
		Type:       "sick",
		Status:     leave.LeaveRequestStatusPending,
	})
	require.NoError(t, err)

	overview, err := f.svc.GetAdminOverview(authedContext(t, 1))
	require.NoError(t, err)

	assert.Equal(t, 3, overview.TotalEmployees)
	assert.Equal(t, 1, overview.PresentToday)
	assert.Equal(t, int64(1), overview.PendingLeave)
	require.Len(t, overview.Employees, 3)

	byName := make(map[string]dashboard.EmployeeOverviewEntry)
	for _, entry := range overview.Employees {
		byName[entry.Name] = entry
	}
	assert.True(t, byName["Ana"].PresentToday)
	assert.False(t, byName["Bima"].PresentToday)
	assert.Equal(t, int64(1), byName["Bima"].PendingCount)
}
