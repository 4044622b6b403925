package jsonstore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/leave"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/dates"
)

type leaveRequestDoc struct {
	ID         int64   `json:"id"`
	EmployeeID int64   `json:"employeeId"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	Reason     string  `json:"reason"`
	Status     string  `json:"status"`
	Type       string  `json:"type"`
	DecidedBy  *int64  `json:"decidedBy,omitempty"`
	DecidedAt  *string `json:"decidedAt,omitempty"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt,omitempty"`
}

func leaveToDoc(req leave.LeaveRequest) leaveRequestDoc {
	return leaveRequestDoc{
		ID:         req.ID,
		EmployeeID: req.EmployeeID,
		StartDate:  dates.Format(req.StartDate),
		EndDate:    dates.Format(req.EndDate),
		Reason:     req.Reason,
		Status:     string(req.Status),
		Type:       req.Type,
		DecidedBy:  req.DecidedBy,
		DecidedAt:  instantPtr(req.DecidedAt),
		CreatedAt:  instant(req.CreatedAt),
		UpdatedAt:  instant(req.UpdatedAt),
	}
}

func leaveFromDoc(doc leaveRequestDoc) (leave.LeaveRequest, error) {
	start, err := dates.Parse(doc.StartDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("request %d has malformed startDate %q: %w", doc.ID, doc.StartDate, err)
	}
	end, err := dates.Parse(doc.EndDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("request %d has malformed endDate %q: %w", doc.ID, doc.EndDate, err)
	}
	decidedAt, err := parseInstantPtr(doc.DecidedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("request %d has malformed decidedAt: %w", doc.ID, err)
	}
	return leave.LeaveRequest{
		ID:         doc.ID,
		EmployeeID: doc.EmployeeID,
		StartDate:  start,
		EndDate:    end,
		Reason:     doc.Reason,
		Status:     leave.LeaveRequestStatus(doc.Status),
		Type:       doc.Type,
		DecidedBy:  doc.DecidedBy,
		DecidedAt:  decidedAt,
		CreatedAt:  parseInstantOrZero(doc.CreatedAt),
		UpdatedAt:  parseInstantOrZero(doc.UpdatedAt),
	}, nil
}

type leaveRequestRepository struct {
	store *Store
}

func NewLeaveRequestRepository(store *Store) leave.LeaveRequestRepository {
	return &leaveRequestRepository{store: store}
}

func (r *leaveRequestRepository) load() ([]leaveRequestDoc, error) {
	var docs []leaveRequestDoc
	if err := readCollection(r.store, keyLeaveRequests, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	ids := make([]int64, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID)
	}

	now := time.Now().UTC()
	request.ID = r.store.allocID(keyLeaveRequests, ids)
	request.CreatedAt = now
	request.UpdatedAt = now

	docs = append(docs, leaveToDoc(request))
	if err := writeCollection(r.store, keyLeaveRequests, docs); err != nil {
		return leave.LeaveRequest{}, err
	}
	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	for _, doc := range docs {
		if doc.ID == id {
			req, err := leaveFromDoc(doc)
			if err != nil {
				return leave.LeaveRequest{}, err
			}
			req.EmployeeName = lookupEmployeeName(r.store, doc.EmployeeID)
			return req, nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

// UpdateStatus implements leave.LeaveRequestRepository. The pending check
// and the write happen under the store mutex; a request that already left
// pending yields ErrLeaveRequestAlreadyProcessed.
func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id int64, status leave.LeaveRequestStatus, deciderID int64) (leave.LeaveRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	for i, doc := range docs {
		if doc.ID != id {
			continue
		}
		if leave.LeaveRequestStatus(doc.Status) != leave.LeaveRequestStatusPending {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
		}

		now := time.Now().UTC()
		nowStr := instant(now)
		docs[i].Status = string(status)
		docs[i].DecidedBy = &deciderID
		docs[i].DecidedAt = &nowStr
		docs[i].UpdatedAt = nowStr

		if err := writeCollection(r.store, keyLeaveRequests, docs); err != nil {
			return leave.LeaveRequest{}, err
		}
		return leaveFromDoc(docs[i])
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]leave.LeaveRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return nil, err
	}
	var requests []leave.LeaveRequest
	for _, doc := range docs {
		if doc.EmployeeID != employeeID {
			continue
		}
		req, err := leaveFromDoc(doc)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	sortLeaveNewestFirst(requests)
	return requests, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return nil, 0, err
	}

	var matched []leave.LeaveRequest
	for _, doc := range docs {
		if filter.EmployeeID != nil && doc.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && *filter.Status != "" && doc.Status != *filter.Status {
			continue
		}
		req, err := leaveFromDoc(doc)
		if err != nil {
			return nil, 0, err
		}
		req.EmployeeName = lookupEmployeeName(r.store, doc.EmployeeID)
		matched = append(matched, req)
	}

	sortLeaveNewestFirst(matched)
	total := int64(len(matched))
	page := paginate(matched, filter.Page, filter.Limit)
	return page, total, nil
}

// CountPendingByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) CountPendingByEmployee(ctx context.Context, employeeID int64) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return 0, err
	}
	var count int64
	for _, doc := range docs {
		if doc.EmployeeID == employeeID && leave.LeaveRequestStatus(doc.Status) == leave.LeaveRequestStatusPending {
			count++
		}
	}
	return count, nil
}

func sortLeaveNewestFirst(requests []leave.LeaveRequest) {
	sort.Slice(requests, func(i, j int) bool {
		if !requests[i].CreatedAt.Equal(requests[j].CreatedAt) {
			return requests[i].CreatedAt.After(requests[j].CreatedAt)
		}
		return requests[i].ID > requests[j].ID
	})
}
