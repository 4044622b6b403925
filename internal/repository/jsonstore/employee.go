package jsonstore

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/employee"
)

// userDoc is the persisted shape. The password field holds the bcrypt
// hash; the original layout stored it under the same key.
type userDoc struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Role       string  `json:"role"`
	Department string  `json:"department"`
	AvatarURL  *string `json:"avatarUrl,omitempty"`
	CreatedAt  string  `json:"createdAt,omitempty"`
	UpdatedAt  string  `json:"updatedAt,omitempty"`
}

func userToDoc(emp employee.Employee) userDoc {
	return userDoc{
		ID:         emp.ID,
		Name:       emp.Name,
		Email:      emp.Email,
		Password:   emp.PasswordHash,
		Role:       string(emp.Role),
		Department: emp.Department,
		AvatarURL:  emp.AvatarURL,
		CreatedAt:  instant(emp.CreatedAt),
		UpdatedAt:  instant(emp.UpdatedAt),
	}
}

func userFromDoc(doc userDoc) employee.Employee {
	return employee.Employee{
		ID:           doc.ID,
		Name:         doc.Name,
		Email:        doc.Email,
		PasswordHash: doc.Password,
		Role:         employee.Role(doc.Role),
		Department:   doc.Department,
		AvatarURL:    doc.AvatarURL,
		CreatedAt:    parseInstantOrZero(doc.CreatedAt),
		UpdatedAt:    parseInstantOrZero(doc.UpdatedAt),
	}
}

// lookupEmployeeName resolves an employee id to a display name for list
// joins. Callers must hold the store mutex. A resolution failure yields
// nil rather than an error; the join is cosmetic.
func lookupEmployeeName(s *Store, employeeID int64) *string {
	var docs []userDoc
	if err := readCollection(s, keyUsers, &docs); err != nil {
		return nil
	}
	for _, doc := range docs {
		if doc.ID == employeeID {
			name := doc.Name
			return &name
		}
	}
	return nil
}

type employeeRepository struct {
	store *Store
}

func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepository{store: store}
}

func (r *employeeRepository) load() ([]userDoc, error) {
	var docs []userDoc
	if err := readCollection(r.store, keyUsers, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Create implements employee.EmployeeRepository. Email comparison is
// case-insensitive.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return employee.Employee{}, err
	}

	ids := make([]int64, 0, len(docs))
	for _, doc := range docs {
		if strings.EqualFold(doc.Email, emp.Email) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		ids = append(ids, doc.ID)
	}

	now := time.Now().UTC()
	emp.ID = r.store.allocID(keyUsers, ids)
	emp.CreatedAt = now
	emp.UpdatedAt = now

	docs = append(docs, userToDoc(emp))
	if err := writeCollection(r.store, keyUsers, docs); err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return employee.Employee{}, err
	}
	for _, doc := range docs {
		if doc.ID == id {
			return userFromDoc(doc), nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return employee.Employee{}, err
	}
	for _, doc := range docs {
		if strings.EqualFold(doc.Email, email) {
			return userFromDoc(doc), nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return nil, err
	}
	employees := make([]employee.Employee, 0, len(docs))
	for _, doc := range docs {
		employees = append(employees, userFromDoc(doc))
	}
	sort.Slice(employees, func(i, j int) bool {
		return employees[i].ID < employees[j].ID
	})
	return employees, nil
}
