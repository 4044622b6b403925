package employee

import "context"

type EmployeeService interface {
	Register(ctx context.Context, req RegisterEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id int64) (EmployeeResponse, error)
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)
	CreateRegistrationCode(ctx context.Context, req CreateRegistrationCodeRequest) (RegistrationCodeResponse, error)
}
