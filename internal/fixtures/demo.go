package fixtures

import (
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/employee"
)

func strPtr(s string) *string { return &s }

// DemoAccount pairs a seed employee with its plaintext demo password. The
// password is hashed at seed time, never stored.
type DemoAccount struct {
	Employee employee.Employee
	Password string
}

// DemoAccounts returns the two demo logins shipped for local evaluation.
func DemoAccounts() []DemoAccount {
	return []DemoAccount{
		{
			Employee: employee.Employee{
				Name:       "Alex Johnson",
				Email:      "employee@example.com",
				Role:       employee.RoleEmployee,
				Department: "Engineering",
			},
			Password: "password123",
		},
		{
			Employee: employee.Employee{
				Name:       "Emma Williams",
				Email:      "admin@example.com",
				Role:       employee.RoleAdmin,
				Department: "HR",
				AvatarURL:  strPtr("https://i.pravatar.cc/150?img=2"),
			},
			Password: "password123",
		},
	}
}

// DemoRegistrationCodes returns invite codes usable against the demo data.
func DemoRegistrationCodes(now time.Time) []employee.RegistrationCode {
	return []employee.RegistrationCode{
		{
			Code:       "WELCOME-2024",
			ExpiryDate: now.AddDate(0, 0, 30),
			CreatedAt:  now,
		},
	}
}
