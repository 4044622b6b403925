package employee

import (
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/validator"
)

type RegisterEmployeeRequest struct {
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Password         string  `json:"password"`
	Department       string  `json:"department"`
	Role             string  `json:"role"`
	AvatarURL        *string `json:"avatar_url,omitempty"`
	RegistrationCode string  `json:"registration_code"`
}

func (r *RegisterEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 8 characters"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}
	if !validator.IsInSlice(r.Role, []string{string(RoleAdmin), string(RoleEmployee)}) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be 'admin' or 'employee'"})
	}
	if validator.IsEmpty(r.RegistrationCode) {
		errs = append(errs, validator.ValidationError{Field: "registration_code", Message: "registration_code is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Department string  `json:"department"`
	AvatarURL  *string `json:"avatar_url,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

type CreateRegistrationCodeRequest struct {
	ExpiryDays int `json:"expiry_days"`
}

func (r *CreateRegistrationCodeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ExpiryDays < 1 {
		errs = append(errs, validator.ValidationError{Field: "expiry_days", Message: "expiry_days must be at least 1"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RegistrationCodeResponse struct {
	Code       string `json:"code"`
	ExpiryDate string `json:"expiry_date"`
	IsUsed     bool   `json:"is_used"`
}
