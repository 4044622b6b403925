package attendance

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/employee"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/dates"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAttendanceRepo is a map-backed stand-in enforcing the same
// uniqueness rule as the real stores.
type fakeAttendanceRepo struct {
	records map[int64]attendance.AttendanceRecord
	nextID  int64
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[int64]attendance.AttendanceRecord), nextID: 1}
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, rec attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	for _, existing := range f.records {
		if existing.EmployeeID == rec.EmployeeID && existing.Date.Equal(rec.Date) {
			return attendance.AttendanceRecord{}, attendance.ErrDuplicateRecord
		}
	}
	rec.ID = f.nextID
	f.nextID++
	f.records[rec.ID] = rec
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id int64) (attendance.AttendanceRecord, error) {
	rec, ok := f.records[id]
	if !ok {
		return attendance.AttendanceRecord{}, attendance.ErrAttendanceNotFound
	}
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.AttendanceRecord, error) {
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && rec.Date.Equal(date) {
			out := rec
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, rec attendance.AttendanceRecord) error {
	if _, ok := f.records[rec.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	f.records[rec.ID] = rec
	return nil
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.records[id]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	delete(f.records, id)
	return nil
}

func (f *fakeAttendanceRepo) ListByEmployee(ctx context.Context, employeeID int64, since time.Time) ([]attendance.AttendanceRecord, error) {
	var out []attendance.AttendanceRecord
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && !rec.Date.Before(since) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceRecord, int64, error) {
	var out []attendance.AttendanceRecord
	for _, rec := range f.records {
		if filter.EmployeeID != nil && rec.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, rec)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) ListOpenBefore(ctx context.Context, day time.Time) ([]attendance.AttendanceRecord, error) {
	var out []attendance.AttendanceRecord
	for _, rec := range f.records {
		if rec.Open() && rec.Date.Before(day) {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[int64]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, nil
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

func newService(repo *fakeAttendanceRepo, employees *fakeEmployeeRepo) attendance.AttendanceService {
	if employees == nil {
		employees = &fakeEmployeeRepo{employees: map[int64]employee.Employee{
			42: {ID: 42, Name: "Test Employee"},
		}}
	}
	return NewAttendanceService(repo, employees, time.UTC)
}

func TestCheckInThenCheckOutYieldsOneCompleteRecord(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newService(repo, nil)
	ctx := authedContext(t, 42, "employee")

	checkedIn, err := svc.CheckIn(ctx)
	require.NoError(t, err)
	require.NotNil(t, checkedIn.CheckIn)
	assert.Nil(t, checkedIn.CheckOut)

	checkedOut, err := svc.CheckOut(ctx)
	require.NoError(t, err)
	require.NotNil(t, checkedOut.CheckIn)
	require.NotNil(t, checkedOut.CheckOut)

	require.Len(t, repo.records, 1)
	for _, rec := range repo.records {
		require.True(t, rec.Complete())
		assert.False(t, rec.CheckOut.Before(*rec.CheckIn))
	}
}

func TestCheckInTwiceFails(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newService(repo, nil)
	ctx := authedContext(t, 42, "employee")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckOutWithoutCheckInFails(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newService(repo, nil)
	ctx := authedContext(t, 42, "employee")

	_, err := svc.CheckOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrNoActiveCheckIn)
}

func TestCheckOutTwiceFails(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newService(repo, nil)
	ctx := authedContext(t, 42, "employee")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)
	_, err = svc.CheckOut(ctx)
	require.NoError(t, err)

	_, err = svc.CheckOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrNoActiveCheckIn)
}

// An override on an employee with no record for today synthesizes one
// with only checkOut set. checkIn stays null; the state is accepted as-is
// rather than repaired.
func TestOverrideCheckOutSynthesizesCheckOutOnlyRecord(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newService(repo, nil)
	ctx := authedContext(t, 1, "admin")

	overrideTime := time.Now().UTC().Add(-2 * time.Hour).Format(time.RFC3339)
	resp, err := svc.OverrideCheckOut(ctx, attendance.OverrideRequest{
		EmployeeID: 42,
		Time:       overrideTime,
	})
	require.NoError(t, err)

	assert.Nil(t, resp.CheckIn)
	require.NotNil(t, resp.CheckOut)

	require.Len(t, repo.records, 1)
	for _, rec := range repo.records {
		assert.Nil(t, rec.CheckIn)
		assert.NotNil(t, rec.CheckOut)
	}
}

func TestOverrideCheckInOverwritesExistingTimestamp(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newService(repo, nil)

	_, err := svc.CheckIn(authedContext(t, 42, "employee"))
	require.NoError(t, err)

	forced := time.Date(2025, 3, 1, 6, 30, 0, 0, time.UTC)
	resp, err := svc.OverrideCheckIn(authedContext(t, 1, "admin"), attendance.OverrideRequest{
		EmployeeID: 42,
		Time:       forced.Format(time.RFC3339),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.CheckIn)
	assert.Equal(t, forced.Format(time.RFC3339), *resp.CheckIn)
	require.Len(t, repo.records, 1)
}

func TestOverrideRejectsUnknownEmployee(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newService(repo, nil)

	_, err := svc.OverrideCheckIn(authedContext(t, 1, "admin"), attendance.OverrideRequest{
		EmployeeID: 9999,
		Time:       time.Now().UTC().Format(time.RFC3339),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCheckInAfterCheckOutOnlyOverrideClaimsRecord(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newService(repo, nil)

	_, err := svc.OverrideCheckOut(authedContext(t, 1, "admin"), attendance.OverrideRequest{
		EmployeeID: 42,
		Time:       time.Now().UTC().Format(time.RFC3339),
	})
	require.NoError(t, err)

	resp, err := svc.CheckIn(authedContext(t, 42, "employee"))
	require.NoError(t, err)
	require.NotNil(t, resp.CheckIn)
	require.NotNil(t, resp.CheckOut)
	require.Len(t, repo.records, 1)
}

func TestGetMyAttendanceScopesToCaller(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newService(repo, nil)

	today := dates.Day(time.Now().UTC(), time.UTC)
	now := time.Now().UTC()
	_, err := repo.Create(context.Background(), attendance.AttendanceRecord{EmployeeID: 42, Date: today, CheckIn: &now})
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), attendance.AttendanceRecord{EmployeeID: 7, Date: today, CheckIn: &now})
	require.NoError(t, err)

	resp, err := svc.GetMyAttendance(authedContext(t, 42, "employee"), attendance.AttendanceFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.TotalCount)
	require.Len(t, resp.Attendances, 1)
	assert.Equal(t, int64(42), resp.Attendances[0].EmployeeID)
}
