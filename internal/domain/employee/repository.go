package employee

import "context"

// EmployeeRepository defines data access methods for the employee collection.
type EmployeeRepository interface {
	// Create inserts a new employee and returns it with its assigned id.
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee; returns ErrEmployeeNotFound on a miss.
	GetByID(ctx context.Context, id int64) (Employee, error)

	// GetByEmail retrieves an employee by email; returns ErrEmployeeNotFound
	// on a miss.
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// List retrieves all employees ordered by id.
	List(ctx context.Context) ([]Employee, error)
}

// Transactor runs fn atomically where the backing store supports it. The
// PostgreSQL driver wraps fn in a database transaction that repositories
// join through the context; the file store runs fn as-is and relies on the
// caller ordering its single-shot claim first.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// RegistrationCodeRepository defines data access for single-use invite codes.
type RegistrationCodeRepository interface {
	Create(ctx context.Context, code RegistrationCode) (RegistrationCode, error)

	// GetByCode returns ErrRegistrationCodeNotFound on a miss.
	GetByCode(ctx context.Context, code string) (RegistrationCode, error)

	// MarkUsed consumes a code. Returns ErrRegistrationCodeUsed if the code
	// was already consumed, so concurrent redemption cannot succeed twice.
	MarkUsed(ctx context.Context, code string) error
}
