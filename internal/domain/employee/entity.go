package employee

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

type Employee struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Department   string
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RegistrationCode is a single-use invite consumed during registration.
type RegistrationCode struct {
	Code       string
	ExpiryDate time.Time
	IsUsed     bool
	CreatedAt  time.Time
}

// Valid reports whether the code can still be redeemed at instant now.
func (c RegistrationCode) Valid(now time.Time) bool {
	return !c.IsUsed && c.ExpiryDate.After(now)
}
