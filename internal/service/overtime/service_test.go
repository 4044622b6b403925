package overtime

import (
	"context"
	"strconv"
	"testing"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/overtime"
	"github.com/attendly-hq/attendly-backend-go/internal/repository/jsonstore"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) overtime.OvertimeService {
	t.Helper()
	store, err := jsonstore.New(t.TempDir())
	require.NoError(t, err)
	return NewOvertimeService(jsonstore.NewOvertimeRepository(store))
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

func TestSubmitOvertimeRequestStartsPending(t *testing.T) {
	svc := newService(t)

	resp, err := svc.SubmitOvertimeRequest(authedContext(t, 42, "employee"), overtime.SubmitOvertimeRequest{
		Date:   "2025-03-05",
		Hours:  2.5,
		Rate:   1.5,
		Reason: "release night",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.EmployeeID)
	assert.Equal(t, string(overtime.OvertimeStatusPending), resp.Status)
	assert.Equal(t, "2025-03-05", resp.Date)
	assert.Nil(t, resp.ApprovedBy)
}

func TestSubmitOvertimeRequestValidatesBounds(t *testing.T) {
	svc := newService(t)
	ctx := authedContext(t, 42, "employee")

	cases := []overtime.SubmitOvertimeRequest{
		{Date: "2025-03-05", Hours: 0, Rate: 1.5, Reason: "zero hours"},
		{Date: "2025-03-05", Hours: 25, Rate: 1.5, Reason: "too many hours"},
		{Date: "2025-03-05", Hours: 2, Rate: 0.5, Reason: "below minimum rate"},
		{Date: "not-a-date", Hours: 2, Rate: 1.5, Reason: "bad date"},
		{Date: "2025-03-05", Hours: 2, Rate: 1.5, Reason: "   "},
	}
	for _, req := range cases {
		_, err := svc.SubmitOvertimeRequest(ctx, req)
		assert.Error(t, err, "request %+v should fail validation", req)
	}
}

func TestUpdateOvertimeStatusRecordsApprover(t *testing.T) {
	svc := newService(t)

	created, err := svc.SubmitOvertimeRequest(authedContext(t, 42, "employee"), overtime.SubmitOvertimeRequest{
		Date:   "2025-03-05",
		Hours:  2,
		Rate:   1.5,
		Reason: "release night",
	})
	require.NoError(t, err)

	approved, err := svc.UpdateOvertimeStatus(authedContext(t, 1, "admin"), overtime.UpdateOvertimeStatusRequest{
		ID:     created.ID,
		Status: "approved",
	})
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, int64(1), *approved.ApprovedBy)

	_, err = svc.UpdateOvertimeStatus(authedContext(t, 1, "admin"), overtime.UpdateOvertimeStatusRequest{
		ID:     created.ID,
		Status: "rejected",
	})
	assert.ErrorIs(t, err, overtime.ErrOvertimeRequestAlreadyProcessed)
}

func TestUpdateOvertimeStatusUnknownRequest(t *testing.T) {
	svc := newService(t)

	_, err := svc.UpdateOvertimeStatus(authedContext(t, 1, "admin"), overtime.UpdateOvertimeStatusRequest{
		ID:     999,
		Status: "approved",
	})
	assert.ErrorIs(t, err, overtime.ErrOvertimeRequestNotFound)
}
