package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already registered")

	ErrRegistrationCodeNotFound = errors.New("registration code not found")
	ErrRegistrationCodeUsed     = errors.New("registration code has already been used")
	ErrRegistrationCodeExpired  = errors.New("registration code has expired")
)
