package jsonstore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/dates"
)

// attendanceDoc is the persisted shape. Field names match the original
// collection layout; createdAt and updatedAt are additions that old dumps
// simply omit.
type attendanceDoc struct {
	ID         int64   `json:"id"`
	EmployeeID int64   `json:"employeeId"`
	Date       string  `json:"date"`
	CheckIn    *string `json:"checkIn"`
	CheckOut   *string `json:"checkOut"`
	CreatedAt  string  `json:"createdAt,omitempty"`
	UpdatedAt  string  `json:"updatedAt,omitempty"`
}

func attendanceToDoc(rec attendance.AttendanceRecord) attendanceDoc {
	return attendanceDoc{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Date:       dates.Format(rec.Date),
		CheckIn:    instantPtr(rec.CheckIn),
		CheckOut:   instantPtr(rec.CheckOut),
		CreatedAt:  instant(rec.CreatedAt),
		UpdatedAt:  instant(rec.UpdatedAt),
	}
}

func attendanceFromDoc(doc attendanceDoc) (attendance.AttendanceRecord, error) {
	day, err := dates.Parse(doc.Date)
	if err != nil {
		return attendance.AttendanceRecord{}, fmt.Errorf("record %d has malformed date %q: %w", doc.ID, doc.Date, err)
	}
	checkIn, err := parseInstantPtr(doc.CheckIn)
	if err != nil {
		return attendance.AttendanceRecord{}, fmt.Errorf("record %d has malformed checkIn: %w", doc.ID, err)
	}
	checkOut, err := parseInstantPtr(doc.CheckOut)
	if err != nil {
		return attendance.AttendanceRecord{}, fmt.Errorf("record %d has malformed checkOut: %w", doc.ID, err)
	}
	return attendance.AttendanceRecord{
		ID:         doc.ID,
		EmployeeID: doc.EmployeeID,
		Date:       day,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		CreatedAt:  parseInstantOrZero(doc.CreatedAt),
		UpdatedAt:  parseInstantOrZero(doc.UpdatedAt),
	}, nil
}

type attendanceRepository struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepository{store: store}
}

func (r *attendanceRepository) load() ([]attendanceDoc, error) {
	var docs []attendanceDoc
	if err := readCollection(r.store, keyAttendance, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return attendance.AttendanceRecord{}, err
	}

	day := dates.Format(record.Date)
	ids := make([]int64, 0, len(docs))
	for _, doc := range docs {
		if doc.EmployeeID == record.EmployeeID && doc.Date == day {
			return attendance.AttendanceRecord{}, attendance.ErrDuplicateRecord
		}
		ids = append(ids, doc.ID)
	}

	now := time.Now().UTC()
	record.ID = r.store.allocID(keyAttendance, ids)
	record.CreatedAt = now
	record.UpdatedAt = now

	docs = append(docs, attendanceToDoc(record))
	if err := writeCollection(r.store, keyAttendance, docs); err != nil {
		return attendance.AttendanceRecord{}, err
	}
	return record, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id int64) (attendance.AttendanceRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return attendance.AttendanceRecord{}, err
	}
	for _, doc := range docs {
		if doc.ID == id {
			rec, err := attendanceFromDoc(doc)
			if err != nil {
				return attendance.AttendanceRecord{}, err
			}
			rec.EmployeeName = lookupEmployeeName(r.store, doc.EmployeeID)
			return rec, nil
		}
	}
	return attendance.AttendanceRecord{}, attendance.ErrAttendanceNotFound
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.AttendanceRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return nil, err
	}
	day := dates.Format(date)
	for _, doc := range docs {
		if doc.EmployeeID == employeeID && doc.Date == day {
			rec, err := attendanceFromDoc(doc)
			if err != nil {
				return nil, err
			}
			return &rec, nil
		}
	}
	return nil, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, record attendance.AttendanceRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return err
	}
	for i, doc := range docs {
		if doc.ID == record.ID {
			record.CreatedAt = parseInstantOrZero(doc.CreatedAt)
			record.UpdatedAt = time.Now().UTC()
			docs[i] = attendanceToDoc(record)
			return writeCollection(r.store, keyAttendance, docs)
		}
	}
	return attendance.ErrAttendanceNotFound
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepository) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return err
	}
	for i, doc := range docs {
		if doc.ID == id {
			docs = append(docs[:i], docs[i+1:]...)
			return writeCollection(r.store, keyAttendance, docs)
		}
	}
	return attendance.ErrAttendanceNotFound
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID int64, since time.Time) ([]attendance.AttendanceRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return nil, err
	}
	sinceDay := dates.Format(since)
	var records []attendance.AttendanceRecord
	for _, doc := range docs {
		if doc.EmployeeID != employeeID || doc.Date < sinceDay {
			continue
		}
		rec, err := attendanceFromDoc(doc)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
	return records, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceRecord, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return nil, 0, err
	}

	var matched []attendance.AttendanceRecord
	for _, doc := range docs {
		if filter.EmployeeID != nil && doc.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Date != nil && *filter.Date != "" && doc.Date != *filter.Date {
			continue
		}
		if filter.StartDate != nil && *filter.StartDate != "" && doc.Date < *filter.StartDate {
			continue
		}
		if filter.EndDate != nil && *filter.EndDate != "" && doc.Date > *filter.EndDate {
			continue
		}
		rec, err := attendanceFromDoc(doc)
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

// ListOpenBefore implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListOpenBefore(ctx context.Context, day time.Time) ([]attendance.AttendanceRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return nil, err
	}
	cutoff := dates.Format(day)
	var records []attendance.AttendanceRecord
	for _, doc := range docs {
		if doc.CheckIn == nil || doc.CheckOut != nil || doc.Date >= cutoff {
			continue
		}
		rec, err := attendanceFromDoc(doc)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records, nil
}
