package jsonstore

import (
	"context"
	"sort"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

type payrollDoc struct {
	ID            int64           `json:"id"`
	EmployeeID    int64           `json:"employeeId"`
	Month         string          `json:"month"`
	Year          int             `json:"year"`
	BaseSalary    decimal.Decimal `json:"baseSalary"`
	OvertimePay   decimal.Decimal `json:"overtimePay"`
	Bonus         decimal.Decimal `json:"bonus"`
	Deductions    decimal.Decimal `json:"deductions"`
	NetSalary     decimal.Decimal `json:"netSalary"`
	Status        string          `json:"status"`
	ProcessedDate *string         `json:"processedDate,omitempty"`
	PaymentDate   *string         `json:"paymentDate,omitempty"`
	PaidBy        *int64          `json:"paidBy,omitempty"`
	CreatedAt     string          `json:"createdAt,omitempty"`
	UpdatedAt     string          `json:"updatedAt,omitempty"`
}

func payrollToDoc(rec payroll.PayrollRecord) payrollDoc {
	return payrollDoc{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		Month:         rec.Month,
		Year:          rec.Year,
		BaseSalary:    rec.BaseSalary,
		OvertimePay:   rec.OvertimePay,
		Bonus:         rec.Bonus,
		Deductions:    rec.Deductions,
		NetSalary:     rec.NetSalary,
		Status:        string(rec.Status),
		ProcessedDate: instantPtr(rec.ProcessedDate),
		PaymentDate:   instantPtr(rec.PaymentDate),
		PaidBy:        rec.PaidBy,
		CreatedAt:     instant(rec.CreatedAt),
		UpdatedAt:     instant(rec.UpdatedAt),
	}
}

func payrollFromDoc(doc payrollDoc) (payroll.PayrollRecord, error) {
	processed, err := parseInstantPtr(doc.ProcessedDate)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	payment, err := parseInstantPtr(doc.PaymentDate)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	return payroll.PayrollRecord{
		ID:            doc.ID,
		EmployeeID:    doc.EmployeeID,
		Month:         doc.Month,
		Year:          doc.Year,
		BaseSalary:    doc.BaseSalary,
		OvertimePay:   doc.OvertimePay,
		Bonus:         doc.Bonus,
		Deductions:    doc.Deductions,
		NetSalary:     doc.NetSalary,
		Status:        payroll.PayrollStatus(doc.Status),
		ProcessedDate: processed,
		PaymentDate:   payment,
		PaidBy:        doc.PaidBy,
		CreatedAt:     parseInstantOrZero(doc.CreatedAt),
		UpdatedAt:     parseInstantOrZero(doc.UpdatedAt),
	}, nil
}

type payrollRepository struct {
	store *Store
}

func NewPayrollRepository(store *Store) payroll.PayrollRepository {
	return &payrollRepository{store: store}
}

func (r *payrollRepository) load() ([]payrollDoc, error) {
	var docs []payrollDoc
	if err := readCollection(r.store, keyPayroll, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Create implements payroll.PayrollRepository. One record per
// (employee, month, year); a duplicate period yields
// ErrPayrollRecordAlreadyExists.
func (r *payrollRepository) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	ids := make([]int64, 0, len(docs))
	for _, doc := range docs {
		if doc.EmployeeID == record.EmployeeID && doc.Month == record.Month && doc.Year == record.Year {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
		}
		ids = append(ids, doc.ID)
	}

	now := time.Now().UTC()
	record.ID = r.store.allocID(keyPayroll, ids)
	record.CreatedAt = now
	record.UpdatedAt = now

	docs = append(docs, payrollToDoc(record))
	if err := writeCollection(r.store, keyPayroll, docs); err != nil {
		return payroll.PayrollRecord{}, err
	}
	return record, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetByID(ctx context.Context, id int64) (payroll.PayrollRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	for _, doc := range docs {
		if doc.ID == id {
			rec, err := payrollFromDoc(doc)
			if err != nil {
				return payroll.PayrollRecord{}, err
			}
			rec.EmployeeName = lookupEmployeeName(r.store, doc.EmployeeID)
			return rec, nil
		}
	}
	return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
}

// MarkPaid implements payroll.PayrollRepository. Only a processed record
// is transitioned; anything else is returned unchanged for the caller to
// inspect, mirroring the guarded UPDATE of the PostgreSQL backing.
func (r *payrollRepository) MarkPaid(ctx context.Context, id int64, paidBy int64) (payroll.PayrollRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	for i, doc := range docs {
		if doc.ID != id {
			continue
		}
		if payroll.PayrollStatus(doc.Status) != payroll.PayrollStatusProcessed {
			return payrollFromDoc(doc)
		}

		now := time.Now().UTC()
		nowStr := instant(now)
		docs[i].Status = string(payroll.PayrollStatusPaid)
		docs[i].PaymentDate = &nowStr
		docs[i].PaidBy = &paidBy
		docs[i].UpdatedAt = nowStr

		if err := writeCollection(r.store, keyPayroll, docs); err != nil {
			return payroll.PayrollRecord{}, err
		}
		return payrollFromDoc(docs[i])
	}
	return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
}

// ListByEmployee implements payroll.PayrollRepository.
func (r *payrollRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]payroll.PayrollRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return nil, err
	}
	var records []payroll.PayrollRecord
	for _, doc := range docs {
		if doc.EmployeeID != employeeID {
			continue
		}
		rec, err := payrollFromDoc(doc)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	sortPayrollNewestFirst(records)
	return records, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return nil, 0, err
	}

	var matched []payroll.PayrollRecord
	for _, doc := range docs {
		if filter.EmployeeID != nil && doc.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Month != nil && *filter.Month != "" && doc.Month != *filter.Month {
			continue
		}
		if filter.Year != nil && doc.Year != *filter.Year {
			continue
		}
		if filter.Status != nil && *filter.Status != "" && doc.Status != *filter.Status {
			continue
		}
		rec, err := payrollFromDoc(doc)
		if err != nil {
			return nil, 0, err
		}
		rec.EmployeeName = lookupEmployeeName(r.store, doc.EmployeeID)
		matched = append(matched, rec)
	}

	sortPayrollNewestFirst(matched)
	total := int64(len(matched))
	page := paginate(matched, filter.Page, filter.Limit)
	return page, total, nil
}

func sortPayrollNewestFirst(records []payroll.PayrollRecord) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].Year != records[j].Year {
			return records[i].Year > records[j].Year
		}
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		return records[i].ID > records[j].ID
	})
}
