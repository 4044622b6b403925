package leave

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/leave"
	"github.com/attendly-hq/attendly-backend-go/internal/repository/jsonstore"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) leave.LeaveService {
	t.Helper()
	store, err := jsonstore.New(t.TempDir())
	require.NoError(t, err)
	return NewLeaveService(jsonstore.NewLeaveRequestRepository(store), time.UTC)
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

func TestCreateLeaveRequestDefaultsToAnnualAndPending(t *testing.T) {
	svc := newService(t)
	ctx := authedContext(t, 42, "employee")

	resp, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
		StartDate: "2025-06-02T00:00:00Z",
		EndDate:   "2025-06-04T00:00:00Z",
		Reason:    "family event",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.EmployeeID)
	assert.Equal(t, "annual", resp.Type)
	assert.Equal(t, string(leave.LeaveRequestStatusPending), resp.Status)
	assert.Equal(t, "2025-06-02", resp.StartDate)
	assert.Equal(t, "2025-06-04", resp.EndDate)
}

func TestCreateLeaveRequestRejectsReversedRange(t *testing.T) {
	svc := newService(t)
	ctx := authedContext(t, 42, "employee")

	_, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
		StartDate: "2025-06-04T00:00:00Z",
		EndDate:   "2025-06-02T00:00:00Z",
		Reason:    "backwards",
	})
	assert.Error(t, err)
}

func TestUpdateLeaveRequestStatusIsTerminal(t *testing.T) {
	svc := newService(t)

	created, err := svc.CreateLeaveRequest(authedContext(t, 42, "employee"), leave.CreateLeaveRequestRequest{
		StartDate: "2025-06-02T00:00:00Z",
		EndDate:   "2025-06-04T00:00:00Z",
		Reason:    "family event",
	})
	require.NoError(t, err)

	adminCtx := authedContext(t, 1, "admin")
	approved, err := svc.UpdateLeaveRequestStatus(adminCtx, leave.UpdateLeaveStatusRequest{
		ID:     created.ID,
		Status: "approved",
	})
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)
	require.NotNil(t, approved.DecidedBy)
	assert.Equal(t, int64(1), *approved.DecidedBy)

	// The decision is final, in either direction.
	_, err = svc.UpdateLeaveRequestStatus(adminCtx, leave.UpdateLeaveStatusRequest{
		ID:     created.ID,
		Status: "rejected",
	})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	_, err = svc.UpdateLeaveRequestStatus(adminCtx, leave.UpdateLeaveStatusRequest{
		ID:     created.ID,
		Status: "approved",
	})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestUpdateLeaveRequestStatusRejectsBadStatus(t *testing.T) {
	svc := newService(t)
	adminCtx := authedContext(t, 1, "admin")

	_, err := svc.UpdateLeaveRequestStatus(adminCtx, leave.UpdateLeaveStatusRequest{
		ID:     1,
		Status: "pending",
	})
	assert.Error(t, err)
}

func TestGetMyLeaveRequestsScopesToCaller(t *testing.T) {
	svc := newService(t)

	_, err := svc.CreateLeaveRequest(authedContext(t, 42, "employee"), leave.CreateLeaveRequestRequest{
		StartDate: "2025-06-02T00:00:00Z",
		EndDate:   "2025-06-04T00:00:00Z",
		Reason:    "mine",
	})
	require.NoError(t, err)
	_, err = svc.CreateLeaveRequest(authedContext(t, 7, "employee"), leave.CreateLeaveRequestRequest{
		StartDate: "2025-06-02T00:00:00Z",
		EndDate:   "2025-06-04T00:00:00Z",
		Reason:    "someone else's",
	})
	require.NoError(t, err)

	mine, err := svc.GetMyLeaveRequests(authedContext(t, 42, "employee"))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "mine", mine[0].Reason)
}
