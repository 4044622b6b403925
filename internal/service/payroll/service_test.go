package payroll

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/employee"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/overtime"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/payroll"
	"github.com/attendly-hq/attendly-backend-go/internal/repository/jsonstore"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc           payroll.PayrollService
	employeeRepo  employee.EmployeeRepository
	payrollRepo   payroll.PayrollRepository
	attendanceRep attendance.AttendanceRepository
	overtimeRepo  overtime.OvertimeRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := jsonstore.New(t.TempDir())
	require.NoError(t, err)

	f := &fixture{
		employeeRepo:  jsonstore.NewEmployeeRepository(store),
		payrollRepo:   jsonstore.NewPayrollRepository(store),
		attendanceRep: jsonstore.NewAttendanceRepository(store),
		overtimeRepo:  jsonstore.NewOvertimeRepository(store),
	}
	f.svc = NewPayrollService(f.payrollRepo, f.employeeRepo, NewFixedSalaryCalculator())
	return f
}

func (f *fixture) seedEmployee(t *testing.T) employee.Employee {
	t.Helper()
	emp, err := f.employeeRepo.Create(context.Background(), employee.Employee{
		Name:       "Sari Wulandari",
		Email:      "sari@attendly.dev",
		Role:       employee.RoleEmployee,
		Department: "Engineering",
	})
	require.NoError(t, err)
	return emp
}

func authedContext(t *testing.T, employeeID int64, role string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"employee_id": strconv.FormatInt(employeeID, 10),
		"role":        role,
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestProcessPayrollUsesFixedFigures(t *testing.T) {
	f := newFixture(t)
	emp := f.seedEmployee(t)

	resp, err := f.svc.ProcessPayroll(context.Background(), payroll.ProcessPayrollRequest{
		EmployeeID: emp.ID,
		Month:      "March",
		Year:       2025,
	})
	require.NoError(t, err)

	assert.True(t, resp.BaseSalary.Equal(decimal.NewFromInt(5000)))
	assert.True(t, resp.OvertimePay.Equal(decimal.NewFromInt(500)))
	assert.True(t, resp.Bonus.Equal(decimal.NewFromInt(100)))
	assert.True(t, resp.Deductions.Equal(decimal.NewFromInt(200)))
	assert.True(t, resp.NetSalary.Equal(decimal.NewFromInt(5400)))
	assert.Equal(t, string(payroll.PayrollStatusProcessed), resp.Status)
	assert.NotNil(t, resp.ProcessedDate)
}

func TestProcessPayrollRejectsUnknownEmployee(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ProcessPayroll(context.Background(), payroll.ProcessPayrollRequest{
		EmployeeID: 4242,
		Month:      "March",
		Year:       2025,
	})
	assert.ErrorIs(t, err, payroll.ErrEmployeeNotFound)
}

func TestProcessPayrollRejectsDuplicatePeriod(t *testing.T) {
	f := newFixture(t)
	emp := f.seedEmployee(t)

	req := payroll.ProcessPayrollRequest{EmployeeID: emp.ID, Month: "March", Year: 2025}
	_, err := f.svc.ProcessPayroll(context.Background(), req)
	require.NoError(t, err)

	_, err = f.svc.ProcessPayroll(context.Background(), req)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordAlreadyExists)
}

func TestMarkPayrollAsPaidIsIdempotent(t *testing.T) {
	f := newFixture(t)
	emp := f.seedEmployee(t)
	ctx := authedContext(t, 1, "admin")

	processed, err := f.svc.ProcessPayroll(context.Background(), payroll.ProcessPayrollRequest{
		EmployeeID: emp.ID,
		Month:      "March",
		Year:       2025,
	})
	require.NoError(t, err)

	paid, err := f.svc.MarkPayrollAsPaid(ctx, processed.ID)
	require.NoError(t, err)
	assert.Equal(t, string(payroll.PayrollStatusPaid), paid.Status)
	require.NotNil(t, paid.PaymentDate)

	// Paying again changes nothing.
	again, err := f.svc.MarkPayrollAsPaid(ctx, processed.ID)
	require.NoError(t, err)
	assert.Equal(t, string(payroll.PayrollStatusPaid), again.Status)
	assert.Equal(t, *paid.PaymentDate, *again.PaymentDate)
}

func TestMarkPayrollAsPaidUnknownRecord(t *testing.T) {
	f := newFixture(t)
	ctx := authedContext(t, 1, "admin")

	_, err := f.svc.MarkPayrollAsPaid(ctx, 999)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
}

func TestAttendanceCalculatorDerivesPayFromLedgers(t *testing.T) {
	f := newFixture(t)
	emp := f.seedEmployee(t)
	ctx := context.Background()

	checkIn := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(8 * time.Hour)
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	_, err := f.attendanceRep.Create(ctx, attendance.AttendanceRecord{
		EmployeeID: emp.ID,
		Date:       day,
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
	})
	require.NoError(t, err)

	otDay := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	_, err = f.overtimeRepo.Create(ctx, overtime.OvertimeRecord{
		EmployeeID: emp.ID,
		Date:       otDay,
		Hours:      2,
		Rate:       1.5,
		Status:     overtime.OvertimeStatusApproved,
	})
	require.NoError(t, err)

	calc := NewAttendanceSalaryCalculator(f.attendanceRep, f.overtimeRepo, decimal.NewFromInt(100))
	breakdown, err := calc.Calculate(ctx, emp.ID, "March", 2025)
	require.NoError(t, err)

	// 8 hours at 100/hour base, 2 hours at 1.5x on top.
	assert.True(t, breakdown.BaseSalary.Equal(decimal.NewFromInt(800)), "base = %s", breakdown.BaseSalary)
	assert.True(t, breakdown.OvertimePay.Equal(decimal.NewFromInt(300)), "overtime = %s", breakdown.OvertimePay)
	assert.True(t, breakdown.Net().Equal(decimal.NewFromInt(1000)), "net = %s", breakdown.Net())
}

func TestAttendanceCalculatorIgnoresOtherPeriods(t *testing.T) {
	f := newFixture(t)
	emp := f.seedEmployee(t)
	ctx := context.Background()

	otDay := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	_, err := f.overtimeRepo.Create(ctx, overtime.OvertimeRecord{
		EmployeeID: emp.ID,
		Date:       otDay,
		Hours:      2,
		Rate:       1.5,
		Status:     overtime.OvertimeStatusApproved,
	})
	require.NoError(t, err)

	calc := NewAttendanceSalaryCalculator(f.attendanceRep, f.overtimeRepo, decimal.NewFromInt(100))
	breakdown, err := calc.Calculate(ctx, emp.ID, "March", 2025)
	require.NoError(t, err)
	assert.True(t, breakdown.OvertimePay.IsZero())
}
