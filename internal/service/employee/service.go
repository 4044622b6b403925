package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/employee"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	employee.RegistrationCodeRepository
	tx employee.Transactor
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	codeRepo employee.RegistrationCodeRepository,
	tx employee.Transactor,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository:         employeeRepo,
		RegistrationCodeRepository: codeRepo,
		tx:                         tx,
	}
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         emp.ID,
		Name:       emp.Name,
		Email:      emp.Email,
		Role:       string(emp.Role),
		Department: emp.Department,
		AvatarURL:  emp.AvatarURL,
		CreatedAt:  emp.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// Register implements employee.EmployeeService. Redemption runs inside the
// transactor with the code claimed before the employee row is written:
// MarkUsed is single-shot at the repository level, so of two racing
// registrations on one code exactly one gets past the claim, and the loser
// leaves nothing behind.
func (e *EmployeeServiceImpl) Register(ctx context.Context, req employee.RegisterEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	// bcrypt is deliberately slow; hash before entering the transaction.
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	email := strings.ToLower(req.Email)

	var created employee.Employee
	err = e.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		code, err := e.RegistrationCodeRepository.GetByCode(ctx, req.RegistrationCode)
		if err != nil {
			return err
		}
		if code.IsUsed {
			return employee.ErrRegistrationCodeUsed
		}
		if !code.Valid(time.Now().UTC()) {
			return employee.ErrRegistrationCodeExpired
		}

		// Taken emails fail before the code is claimed, so a rejected
		// registration does not burn the invite.
		if _, err := e.EmployeeRepository.GetByEmail(ctx, email); err == nil {
			return employee.ErrEmailExists
		} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return err
		}

		if err := e.RegistrationCodeRepository.MarkUsed(ctx, req.RegistrationCode); err != nil {
			return err
		}

		created, err = e.EmployeeRepository.Create(ctx, employee.Employee{
			Name:         req.Name,
			Email:        email,
			PasswordHash: string(hash),
			Role:         employee.Role(req.Role),
			Department:   req.Department,
			AvatarURL:    req.AvatarURL,
		})
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetEmployee(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (e *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := e.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}
	return responses, nil
}

// CreateRegistrationCode implements employee.EmployeeService.
func (e *EmployeeServiceImpl) CreateRegistrationCode(ctx context.Context, req employee.CreateRegistrationCodeRequest) (employee.RegistrationCodeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.RegistrationCodeResponse{}, err
	}

	code := employee.RegistrationCode{
		Code:       uuid.NewString(),
		ExpiryDate: time.Now().UTC().AddDate(0, 0, req.ExpiryDays),
	}

	created, err := e.RegistrationCodeRepository.Create(ctx, code)
	if err != nil {
		return employee.RegistrationCodeResponse{}, fmt.Errorf("failed to create registration code: %w", err)
	}

	return employee.RegistrationCodeResponse{
		Code:       created.Code,
		ExpiryDate: created.ExpiryDate.UTC().Format(time.RFC3339),
		IsUsed:     created.IsUsed,
	}, nil
}
