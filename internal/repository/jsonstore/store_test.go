package jsonstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/employee"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/leave"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/overtime"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/payroll"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/dates"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(t.TempDir())
	require.NoError(t, err)
	return store
}

func day(s string) time.Time {
	d, err := dates.Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAttendanceCreateAllocatesMonotonicIDs(t *testing.T) {
	store := newTestStore(t)
	repo := NewAttendanceRepository(store)
	ctx := context.Background()

	first, err := repo.Create(ctx, attendance.AttendanceRecord{EmployeeID: 1, Date: day("2025-03-01")})
	require.NoError(t, err)
	second, err := repo.Create(ctx, attendance.AttendanceRecord{EmployeeID: 1, Date: day("2025-03-02")})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	// Deleting the highest record must not release its id.
	require.NoError(t, repo.Delete(ctx, second.ID))
	third, err := repo.Create(ctx, attendance.AttendanceRecord{EmployeeID: 1, Date: day("2025-03-03")})
	require.NoError(t, err)
	assert.Equal(t, int64(3), third.ID)
}

func TestAttendanceCreateRejectsDuplicateEmployeeDay(t *testing.T) {
	store := newTestStore(t)
	repo := NewAttendanceRepository(store)
	ctx := context.Background()

	_, err := repo.Create(ctx, attendance.AttendanceRecord{EmployeeID: 7, Date: day("2025-03-01")})
	require.NoError(t, err)

	_, err = repo.Create(ctx, attendance.AttendanceRecord{EmployeeID: 7, Date: day("2025-03-01")})
	assert.ErrorIs(t, err, attendance.ErrDuplicateRecord)

	// Another employee on the same day is fine.
	_, err = repo.Create(ctx, attendance.AttendanceRecord{EmployeeID: 8, Date: day("2025-03-01")})
	assert.NoError(t, err)
}

func TestAttendanceGetByEmployeeAndDateMissIsNil(t *testing.T) {
	store := newTestStore(t)
	repo := NewAttendanceRepository(store)

	rec, err := repo.GetByEmployeeAndDate(context.Background(), 1, day("2025-03-01"))
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestAttendanceRoundTripIsByteStable(t *testing.T) {
	store := newTestStore(t)
	repo := NewAttendanceRepository(store)
	ctx := context.Background()

	checkIn := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, attendance.AttendanceRecord{
		EmployeeID: 1,
		Date:       day("2025-03-01"),
		CheckIn:    &checkIn,
	})
	require.NoError(t, err)

	path := filepath.Join(store.dir, keyAttendance+".json")
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	// Reading back and rewriting an unchanged collection must reproduce
	// the file exactly.
	var docs []attendanceDoc
	require.NoError(t, readCollection(store, keyAttendance, &docs))
	require.NoError(t, writeCollection(store, keyAttendance, docs))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAttendanceListOpenBefore(t *testing.T) {
	store := newTestStore(t)
	repo := NewAttendanceRepository(store)
	ctx := context.Background()

	checkIn := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(8 * time.Hour)

	_, err := repo.Create(ctx, attendance.AttendanceRecord{EmployeeID: 1, Date: day("2025-03-01"), CheckIn: &checkIn})
	require.NoError(t, err)
	_, err = repo.Create(ctx, attendance.AttendanceRecord{EmployeeID: 2, Date: day("2025-03-01"), CheckIn: &checkIn, CheckOut: &checkOut})
	require.NoError(t, err)
	_, err = repo.Create(ctx, attendance.AttendanceRecord{EmployeeID: 3, Date: day("2025-03-02"), CheckIn: &checkIn})
	require.NoError(t, err)

	open, err := repo.ListOpenBefore(ctx, day("2025-03-02"))
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, int64(1), open[0].EmployeeID)
}

func TestLeaveUpdateStatusIsSingleShot(t *testing.T) {
	store := newTestStore(t)
	repo := NewLeaveRequestRepository(store)
	ctx := context.Background()

	req, err := repo.Create(ctx, leave.LeaveRequest{
		EmployeeID: 1,
		StartDate:  day("2025-04-01"),
		EndDate:    day("2025-04-03"),
		Reason:     "family trip",
		Type:       "annual",
		Status:     leave.LeaveRequestStatusPending,
	})
	require.NoError(t, err)

	decided, err := repo.UpdateStatus(ctx, req.ID, leave.LeaveRequestStatusApproved, 99)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusApproved, decided.Status)
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, int64(99), *decided.DecidedBy)
	assert.NotNil(t, decided.DecidedAt)

	_, err = repo.UpdateStatus(ctx, req.ID, leave.LeaveRequestStatusRejected, 99)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	_, err = repo.UpdateStatus(ctx, 424242, leave.LeaveRequestStatusApproved, 99)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestPayrollCreateRejectsDuplicatePeriod(t *testing.T) {
	store := newTestStore(t)
	repo := NewPayrollRepository(store)
	ctx := context.Background()

	rec := payroll.PayrollRecord{
		EmployeeID: 1,
		Month:      "March",
		Year:       2025,
		BaseSalary: decimal.NewFromInt(5000),
		NetSalary:  decimal.NewFromInt(5400),
		Status:     payroll.PayrollStatusProcessed,
	}
	_, err := repo.Create(ctx, rec)
	require.NoError(t, err)

	_, err = repo.Create(ctx, rec)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordAlreadyExists)

	rec.Month = "April"
	_, err = repo.Create(ctx, rec)
	assert.NoError(t, err)
}

func TestPayrollMarkPaidIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	repo := NewPayrollRepository(store)
	ctx := context.Background()

	created, err := repo.Create(ctx, payroll.PayrollRecord{
		EmployeeID: 1,
		Month:      "March",
		Year:       2025,
		BaseSalary: decimal.NewFromInt(5000),
		NetSalary:  decimal.NewFromInt(5400),
		Status:     payroll.PayrollStatusProcessed,
	})
	require.NoError(t, err)

	paid, err := repo.MarkPaid(ctx, created.ID, 99)
	require.NoError(t, err)
	assert.Equal(t, payroll.PayrollStatusPaid, paid.Status)
	require.NotNil(t, paid.PaymentDate)
	firstPayment := *paid.PaymentDate

	again, err := repo.MarkPaid(ctx, created.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, payroll.PayrollStatusPaid, again.Status)
	require.NotNil(t, again.PaymentDate)
	assert.True(t, firstPayment.Equal(*again.PaymentDate))
	require.NotNil(t, again.PaidBy)
	assert.Equal(t, int64(99), *again.PaidBy)
}

func TestOvertimeListApprovedInRange(t *testing.T) {
	store := newTestStore(t)
	repo := NewOvertimeRepository(store)
	ctx := context.Background()

	seed := []overtime.OvertimeRecord{
		{EmployeeID: 1, Date: day("2025-03-05"), Hours: 2, Rate: 1.5, Status: overtime.OvertimeStatusApproved},
		{EmployeeID: 1, Date: day("2025-03-10"), Hours: 3, Rate: 1.5, Status: overtime.OvertimeStatusPending},
		{EmployeeID: 1, Date: day("2025-04-01"), Hours: 4, Rate: 1.5, Status: overtime.OvertimeStatusApproved},
		{EmployeeID: 2, Date: day("2025-03-06"), Hours: 5, Rate: 2, Status: overtime.OvertimeStatusApproved},
	}
	for _, rec := range seed {
		_, err := repo.Create(ctx, rec)
		require.NoError(t, err)
	}

	got, err := repo.ListApprovedInRange(ctx, 1, day("2025-03-01"), day("2025-04-01"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2.0, got[0].Hours)
}

func TestRegistrationCodeMarkUsedOnce(t *testing.T) {
	store := newTestStore(t)
	repo := NewRegistrationCodeRepository(store)
	ctx := context.Background()

	_, err := repo.Create(ctx, employee.RegistrationCode{
		Code:       "WELCOME-123",
		ExpiryDate: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	require.NoError(t, repo.MarkUsed(ctx, "WELCOME-123"))
	assert.ErrorIs(t, repo.MarkUsed(ctx, "WELCOME-123"), employee.ErrRegistrationCodeUsed)
	assert.ErrorIs(t, repo.MarkUsed(ctx, "NOPE"), employee.ErrRegistrationCodeNotFound)
}

func TestEmployeeEmailUniqueness(t *testing.T) {
	store := newTestStore(t)
	repo := NewEmployeeRepository(store)
	ctx := context.Background()

	_, err := repo.Create(ctx, employee.Employee{
		Name:       "Dina Putri",
		Email:      "dina@attendly.dev",
		Role:       employee.RoleEmployee,
		Department: "Engineering",
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, employee.Employee{
		Name:       "Impostor",
		Email:      "DINA@attendly.dev",
		Role:       employee.RoleEmployee,
		Department: "Engineering",
	})
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestEmployeeNameJoinOnList(t *testing.T) {
	store := newTestStore(t)
	employees := NewEmployeeRepository(store)
	attendances := NewAttendanceRepository(store)
	ctx := context.Background()

	emp, err := employees.Create(ctx, employee.Employee{
		Name:       "Budi Santoso",
		Email:      "budi@attendly.dev",
		Role:       employee.RoleEmployee,
		Department: "Finance",
	})
	require.NoError(t, err)

	_, err = attendances.Create(ctx, attendance.AttendanceRecord{EmployeeID: emp.ID, Date: day("2025-03-01")})
	require.NoError(t, err)

	records, total, err := attendances.List(ctx, attendance.AttendanceFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].EmployeeName)
	assert.Equal(t, "Budi Santoso", *records[0].EmployeeName)
}
