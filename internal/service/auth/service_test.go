package auth

import (
	"context"
	"testing"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/auth"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/employee"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/jwt"
	"github.com/attendly-hq/attendly-backend-go/internal/repository/jsonstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newService(t *testing.T) (auth.AuthService, employee.EmployeeRepository) {
	t.Helper()
	store, err := jsonstore.New(t.TempDir())
	require.NoError(t, err)
	repo := jsonstore.NewEmployeeRepository(store)
	svc := NewAuthService(repo, jwt.NewJWTService("test-secret", "15m"))
	return svc, repo
}

func seedEmployee(t *testing.T, repo employee.EmployeeRepository, password string) employee.Employee {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	emp, err := repo.Create(context.Background(), employee.Employee{
		Name:         "Agus Pratama",
		Email:        "agus@attendly.dev",
		PasswordHash: string(hash),
		Role:         employee.RoleAdmin,
		Department:   "Operations",
	})
	require.NoError(t, err)
	return emp
}

func TestLoginReturnsTokenAndProfile(t *testing.T) {
	svc, repo := newService(t)
	emp := seedEmployee(t, repo, "hunter2hunter2")

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "agus@attendly.dev",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotZero(t, resp.ExpiresAt)
	assert.Equal(t, emp.ID, resp.Employee.ID)
	assert.Equal(t, "admin", resp.Employee.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, repo := newService(t)
	seedEmployee(t, repo, "hunter2hunter2")

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "agus@attendly.dev",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ghost@attendly.dev",
		Password: "whatever123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginValidatesRequest(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "not-an-email", Password: ""})
	assert.Error(t, err)
}
