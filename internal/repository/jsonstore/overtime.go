package jsonstore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/overtime"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/dates"
)

type overtimeDoc struct {
	ID         int64   `json:"id"`
	EmployeeID int64   `json:"employeeId"`
	Date       string  `json:"date"`
	Hours      float64 `json:"hours"`
	Rate       float64 `json:"rate"`
	Reason     string  `json:"reason"`
	Status     string  `json:"status"`
	ApprovedBy *int64  `json:"approvedBy,omitempty"`
	CreatedAt  string  `json:"createdAt,omitempty"`
	UpdatedAt  string  `json:"updatedAt,omitempty"`
}

func overtimeToDoc(rec overtime.OvertimeRecord) overtimeDoc {
	return overtimeDoc{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Date:       dates.Format(rec.Date),
		Hours:      rec.Hours,
		Rate:       rec.Rate,
		Reason:     rec.Reason,
		Status:     string(rec.Status),
		ApprovedBy: rec.ApprovedBy,
		CreatedAt:  instant(rec.CreatedAt),
		UpdatedAt:  instant(rec.UpdatedAt),
	}
}

func overtimeFromDoc(doc overtimeDoc) (overtime.OvertimeRecord, error) {
	day, err := dates.Parse(doc.Date)
	if err != nil {
		return overtime.OvertimeRecord{}, fmt.Errorf("record %d has malformed date %q: %w", doc.ID, doc.Date, err)
	}
	return overtime.OvertimeRecord{
		ID:         doc.ID,
		EmployeeID: doc.EmployeeID,
		Date:       day,
		Hours:      doc.Hours,
		Rate:       doc.Rate,
		Reason:     doc.Reason,
		Status:     overtime.OvertimeStatus(doc.Status),
		ApprovedBy: doc.ApprovedBy,
		CreatedAt:  parseInstantOrZero(doc.CreatedAt),
		UpdatedAt:  parseInstantOrZero(doc.UpdatedAt),
	}, nil
}

type overtimeRepository struct {
	store *Store
}

func NewOvertimeRepository(store *Store) overtime.OvertimeRepository {
	return &overtimeRepository{store: store}
}

func (r *overtimeRepository) load() ([]overtimeDoc, error) {
	var docs []overtimeDoc
	if err := readCollection(r.store, keyOvertime, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Create implements overtime.OvertimeRepository.
func (r *overtimeRepository) Create(ctx context.Context, record overtime.OvertimeRecord) (overtime.OvertimeRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return overtime.OvertimeRecord{}, err
	}

	ids := make([]int64, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID)
	}

	now := time.Now().UTC()
	record.ID = r.store.allocID(keyOvertime, ids)
	record.CreatedAt = now
	record.UpdatedAt = now

	docs = append(docs, overtimeToDoc(record))
	if err := writeCollection(r.store, keyOvertime, docs); err != nil {
		return overtime.OvertimeRecord{}, err
	}
	return record, nil
}

// GetByID implements overtime.OvertimeRepository.
func (r *overtimeRepository) GetByID(ctx context.Context, id int64) (overtime.OvertimeRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return overtime.OvertimeRecord{}, err
	}
	for _, doc := range docs {
		if doc.ID == id {
			rec, err := overtimeFromDoc(doc)
			if err != nil {
				return overtime.OvertimeRecord{}, err
			}
			rec.EmployeeName = lookupEmployeeName(r.store, doc.EmployeeID)
			return rec, nil
		}
	}
	return overtime.OvertimeRecord{}, overtime.ErrOvertimeRequestNotFound
}

// UpdateStatus implements overtime.OvertimeRepository.
func (r *overtimeRepository) UpdateStatus(ctx context.Context, id int64, status overtime.OvertimeStatus, approverID int64) (overtime.OvertimeRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return overtime.OvertimeRecord{}, err
	}
	for i, doc := range docs {
		if doc.ID != id {
			continue
		}
		if overtime.OvertimeStatus(doc.Status) != overtime.OvertimeStatusPending {
			return overtime.OvertimeRecord{}, overtime.ErrOvertimeRequestAlreadyProcessed
		}

		docs[i].Status = string(status)
		docs[i].ApprovedBy = &approverID
		docs[i].UpdatedAt = instant(time.Now().UTC())

		if err := writeCollection(r.store, keyOvertime, docs); err != nil {
			return overtime.OvertimeRecord{}, err
		}
		return overtimeFromDoc(docs[i])
	}
	return overtime.OvertimeRecord{}, overtime.ErrOvertimeRequestNotFound
}

// ListByEmployee implements overtime.OvertimeRepository.
func (r *overtimeRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]overtime.OvertimeRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return nil, err
	}
	var records []overtime.OvertimeRecord
	for _, doc := range docs {
		if doc.EmployeeID != employeeID {
			continue
		}
		rec, err := overtimeFromDoc(doc)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.After(records[j].Date)
		}
		return records[i].ID > records[j].ID
	})
	return records, nil
}

// List implements overtime.OvertimeRepository.
func (r *overtimeRepository) List(ctx context.Context, filter overtime.OvertimeFilter) ([]overtime.OvertimeRecord, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return nil, 0, err
	}

	var matched []overtime.OvertimeRecord
	for _, doc := range docs {
		if filter.EmployeeID != nil && doc.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && *filter.Status != "" && doc.Status != *filter.Status {
			continue
		}
		rec, err := overtimeFromDoc(doc)
		if err != nil {
			return nil, 0, err
		}
		rec.EmployeeName = lookupEmployeeName(r.store, doc.EmployeeID)
		matched = append(matched, rec)
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.After(matched[j].Date)
		}
		return matched[i].ID > matched[j].ID
	})

	total := int64(len(matched))
	page := paginate(matched, filter.Page, filter.Limit)
	return page, total, nil
}

// ListApprovedInRange implements overtime.OvertimeRepository.
func (r *overtimeRepository) ListApprovedInRange(ctx context.Context, employeeID int64, from, to time.Time) ([]overtime.OvertimeRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return nil, err
	}
	fromDay := dates.Format(from)
	toDay := dates.Format(to)
	var records []overtime.OvertimeRecord
	for _, doc := range docs {
		if doc.EmployeeID != employeeID {
			continue
		}
		if overtime.OvertimeStatus(doc.Status) != overtime.OvertimeStatusApproved {
			continue
		}
		if doc.Date < fromDay || doc.Date >= toDay {
			continue
		}
		rec, err := overtimeFromDoc(doc)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.Before(records[j].Date)
		}
		return records[i].ID < records[j].ID
	})
	return records, nil
}

// CountPendingByEmployee implements overtime.OvertimeRepository.
func (r *overtimeRepository) CountPendingByEmployee(ctx context.Context, employeeID int64) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return 0, err
	}
	var count int64
	for _, doc := range docs {
		if doc.EmployeeID == employeeID && overtime.OvertimeStatus(doc.Status) == overtime.OvertimeStatusPending {
			count++
		}
	}
	return count, nil
}
