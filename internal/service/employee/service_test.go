package employee

import (
	"context"
	"testing"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/employee"
	"github.com/attendly-hq/attendly-backend-go/internal/repository/jsonstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (employee.EmployeeService, employee.RegistrationCodeRepository) {
	t.Helper()
	store, err := jsonstore.New(t.TempDir())
	require.NoError(t, err)
	codeRepo := jsonstore.NewRegistrationCodeRepository(store)
	svc := NewEmployeeService(jsonstore.NewEmployeeRepository(store), codeRepo, store)
	return svc, codeRepo
}

func seedCode(t *testing.T, repo employee.RegistrationCodeRepository, code string, expiry time.Time) {
	t.Helper()
	_, err := repo.Create(context.Background(), employee.RegistrationCode{
		Code:       code,
		ExpiryDate: expiry,
	})
	require.NoError(t, err)
}

func registration(code string) employee.RegisterEmployeeRequest {
	return employee.RegisterEmployeeRequest{
		Name:             "Rina Maheswari",
		Email:            "rina@attendly.dev",
		Password:         "correct-horse",
		Department:       "Engineering",
		Role:             "employee",
		RegistrationCode: code,
	}
}

func TestRegisterConsumesCode(t *testing.T) {
	svc, codes := newService(t)
	ctx := context.Background()
	seedCode(t, codes, "CODE-1", time.Now().Add(24*time.Hour))

	resp, err := svc.Register(ctx, registration("CODE-1"))
	require.NoError(t, err)
	assert.Equal(t, "rina@attendly.dev", resp.Email)
	assert.Equal(t, "employee", resp.Role)
	assert.NotZero(t, resp.ID)

	stored, err := codes.GetByCode(ctx, "CODE-1")
	require.NoError(t, err)
	assert.True(t, stored.IsUsed)

	// A consumed code cannot register a second account.
	second := registration("CODE-1")
	second.Email = "other@attendly.dev"
	_, err = svc.Register(ctx, second)
	assert.ErrorIs(t, err, employee.ErrRegistrationCodeUsed)
}

// staleCodeReads serves every GetByCode from a pre-claim snapshot, the view
// a registration racing another one would observe before either claims the
// code.
type staleCodeReads struct {
	employee.RegistrationCodeRepository
}

func (r staleCodeReads) GetByCode(ctx context.Context, code string) (employee.RegistrationCode, error) {
	c, err := r.RegistrationCodeRepository.GetByCode(ctx, code)
	if err != nil {
		return c, err
	}
	c.IsUsed = false
	return c, nil
}

func TestRegisterLosingCodeRaceLeavesNoEmployee(t *testing.T) {
	store, err := jsonstore.New(t.TempDir())
	require.NoError(t, err)
	codeRepo := jsonstore.NewRegistrationCodeRepository(store)
	empRepo := jsonstore.NewEmployeeRepository(store)
	svc := NewEmployeeService(empRepo, staleCodeReads{codeRepo}, store)
	ctx := context.Background()
	seedCode(t, codeRepo, "CODE-1", time.Now().Add(24*time.Hour))

	_, err = svc.Register(ctx, registration("CODE-1"))
	require.NoError(t, err)

	// Both registrations saw the code unused; the claim decides the winner.
	second := registration("CODE-1")
	second.Email = "other@attendly.dev"
	_, err = svc.Register(ctx, second)
	require.ErrorIs(t, err, employee.ErrRegistrationCodeUsed)

	// The loser must not leave a half-registered account behind.
	_, err = empRepo.GetByEmail(ctx, "other@attendly.dev")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestRegisterDuplicateEmailDoesNotBurnCode(t *testing.T) {
	svc, codes := newService(t)
	ctx := context.Background()
	seedCode(t, codes, "CODE-1", time.Now().Add(24*time.Hour))
	seedCode(t, codes, "CODE-2", time.Now().Add(24*time.Hour))

	_, err := svc.Register(ctx, registration("CODE-1"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registration("CODE-2"))
	require.ErrorIs(t, err, employee.ErrEmailExists)

	// The rejected registration keeps its invite redeemable.
	stored, err := codes.GetByCode(ctx, "CODE-2")
	require.NoError(t, err)
	assert.False(t, stored.IsUsed)
}

func TestRegisterRejectsExpiredCode(t *testing.T) {
	svc, codes := newService(t)
	seedCode(t, codes, "OLD-CODE", time.Now().Add(-time.Hour))

	_, err := svc.Register(context.Background(), registration("OLD-CODE"))
	assert.ErrorIs(t, err, employee.ErrRegistrationCodeExpired)
}

func TestRegisterRejectsUnknownCode(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Register(context.Background(), registration("NOPE"))
	assert.ErrorIs(t, err, employee.ErrRegistrationCodeNotFound)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, codes := newService(t)
	ctx := context.Background()
	seedCode(t, codes, "CODE-1", time.Now().Add(24*time.Hour))
	seedCode(t, codes, "CODE-2", time.Now().Add(24*time.Hour))

	_, err := svc.Register(ctx, registration("CODE-1"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registration("CODE-2"))
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestRegisterValidatesRequest(t *testing.T) {
	svc, _ := newService(t)

	req := registration("CODE-1")
	req.Password = "short"
	_, err := svc.Register(context.Background(), req)
	assert.Error(t, err)
}

func TestCreateRegistrationCode(t *testing.T) {
	svc, codes := newService(t)

	resp, err := svc.CreateRegistrationCode(context.Background(), employee.CreateRegistrationCodeRequest{ExpiryDays: 7})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Code)
	assert.False(t, resp.IsUsed)

	stored, err := codes.GetByCode(context.Background(), resp.Code)
	require.NoError(t, err)
	assert.True(t, stored.Valid(time.Now().UTC()))
}
