package jsonstore

import (
	"context"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/employee"
)

type registrationCodeDoc struct {
	Code       string `json:"code"`
	ExpiryDate string `json:"expiryDate"`
	IsUsed     bool   `json:"isUsed"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

func codeToDoc(code employee.RegistrationCode) registrationCodeDoc {
	return registrationCodeDoc{
		Code:       code.Code,
		ExpiryDate: instant(code.ExpiryDate),
		IsUsed:     code.IsUsed,
		CreatedAt:  instant(code.CreatedAt),
	}
}

func codeFromDoc(doc registrationCodeDoc) employee.RegistrationCode {
	return employee.RegistrationCode{
		Code:       doc.Code,
		ExpiryDate: parseInstantOrZero(doc.ExpiryDate),
		IsUsed:     doc.IsUsed,
		CreatedAt:  parseInstantOrZero(doc.CreatedAt),
	}
}

type registrationCodeRepository struct {
	store *Store
}

func NewRegistrationCodeRepository(store *Store) employee.RegistrationCodeRepository {
	return &registrationCodeRepository{store: store}
}

func (r *registrationCodeRepository) load() ([]registrationCodeDoc, error) {
	var docs []registrationCodeDoc
	if err := readCollection(r.store, keyRegistrationCodes, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Create implements employee.RegistrationCodeRepository.
func (r *registrationCodeRepository) Create(ctx context.Context, code employee.RegistrationCode) (employee.RegistrationCode, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return employee.RegistrationCode{}, err
	}

	code.CreatedAt = time.Now().UTC()
	docs = append(docs, codeToDoc(code))
	if err := writeCollection(r.store, keyRegistrationCodes, docs); err != nil {
		return employee.RegistrationCode{}, err
	}
	return code, nil
}

// GetByCode implements employee.RegistrationCodeRepository.
func (r *registrationCodeRepository) GetByCode(ctx context.Context, code string) (employee.RegistrationCode, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return employee.RegistrationCode{}, err
	}
	for _, doc := range docs {
		if doc.Code == code {
			return codeFromDoc(doc), nil
		}
	}
	return employee.RegistrationCode{}, employee.ErrRegistrationCodeNotFound
}

// MarkUsed implements employee.RegistrationCodeRepository. The check and
// the write happen under the store mutex, so two redemptions cannot both
// succeed.
func (r *registrationCodeRepository) MarkUsed(ctx context.Context, code string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return err
	}
	for i, doc := range docs {
		if doc.Code != code {
			continue
		}
		if doc.IsUsed {
			return employee.ErrRegistrationCodeUsed
		}
		docs[i].IsUsed = true
		return writeCollection(r.store, keyRegistrationCodes, docs)
	}
	return employee.ErrRegistrationCodeNotFound
}
