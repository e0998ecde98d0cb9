package leave

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"
)

// memoryRepository backs degraded mode: single instance, not persistent.
// Same contract as the GORM repository, including the not-found sentinel.
type memoryRepository struct {
	mu      sync.RWMutex
	records []LeaveRequest
}

func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(ctx context.Context, l *LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	r.records = append(r.records, *l)
	return nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.records {
		if r.records[i].ID.String() == id {
			rec := r.records[i]
			return &rec, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryRepository) Find(ctx context.Context, filter ListLeavesFilter) ([]LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	out := make([]LeaveRequest, 0, len(r.records))
	for _, rec := range r.records {
		if filter.Email != "" && !strings.EqualFold(rec.EmployeeEmail, filter.Email) {
			continue
		}
		if filter.Status != "" && filter.Status != "all" && rec.Status != filter.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(rec.EmployeeName), search) &&
			!strings.Contains(strings.ToLower(rec.EmployeeEmail), search) {
			continue
		}
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memoryRepository) FindNonDeniedInMonth(ctx context.Context, email string, year int, month time.Month) ([]LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []LeaveRequest
	for _, rec := range r.records {
		if !strings.EqualFold(rec.EmployeeEmail, email) || rec.Status == StatusDenied {
			continue
		}
		if rec.FromDate.Year() != year || rec.FromDate.Month() != month {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *memoryRepository) Update(ctx context.Context, l *LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID == l.ID {
			r.records[i] = *l
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memoryRepository) UpdateStatusByIDs(ctx context.Context, ids []string, status string) (int64, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}

	var matched, modified int64
	for i := range r.records {
		if _, ok := idSet[r.records[i].ID.String()]; !ok {
			continue
		}
		matched++
		if r.records[i].Status != status {
			r.records[i].Status = status
			modified++
		}
	}
	return matched, modified, nil
}

func (r *memoryRepository) ApprovePending(ctx context.Context, email string) (int64, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched, modified int64
	for i := range r.records {
		if r.records[i].Status != StatusPending {
			continue
		}
		if email != "" && !strings.EqualFold(r.records[i].EmployeeEmail, email) {
			continue
		}
		matched++
		r.records[i].Status = StatusApproved
		modified++
	}
	return matched, modified, nil
}
