package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/employee"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type registrationCodeRepository struct {
	db *database.DB
}

func NewRegistrationCodeRepository(db *database.DB) employee.RegistrationCodeRepository {
	return &registrationCodeRepository{db: db}
}

// Create implements employee.RegistrationCodeRepository.
func (r *registrationCodeRepository) Create(ctx context.Context, code employee.RegistrationCode) (employee.RegistrationCode, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO registration_codes (code, expiry_date, is_used)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, code.Code, code.ExpiryDate, code.IsUsed).Scan(&code.CreatedAt)
	if err != nil {
		return employee.RegistrationCode{}, fmt.Errorf("failed to create registration code: %w", err)
	}

	return code, nil
}

// GetByCode implements employee.RegistrationCodeRepository.
func (r *registrationCodeRepository) GetByCode(ctx context.Context, codeValue string) (employee.RegistrationCode, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT code, expiry_date, is_used, created_at
		FROM registration_codes
		WHERE code = $1
	`

	var code employee.RegistrationCode
	err := q.QueryRow(ctx, query, codeValue).Scan(&code.Code, &code.ExpiryDate, &code.IsUsed, &code.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.RegistrationCode{}, employee.ErrRegistrationCodeNotFound
		}
		return employee.RegistrationCode{}, fmt.Errorf("failed to get registration code: %w", err)
	}

	return code, nil
}

// MarkUsed implements employee.RegistrationCodeRepository. The guard on
// is_used makes concurrent redemption race-safe: only one caller sees the
// row flip.
func (r *registrationCodeRepository) MarkUsed(ctx context.Context, codeValue string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE registration_codes
		SET is_used = TRUE
		WHERE code = $1 AND is_used = FALSE
		RETURNING code
	`

	var updated string
	if err := q.QueryRow(ctx, query, codeValue).Scan(&updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByCode(ctx, codeValue); getErr != nil {
				return getErr
			}
			return employee.ErrRegistrationCodeUsed
		}
		return fmt.Errorf("failed to mark registration code used: %w", err)
	}

	return nil
}
