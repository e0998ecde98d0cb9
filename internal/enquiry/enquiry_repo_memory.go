package enquiry

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"
)

type memoryRepository struct {
	mu      sync.RWMutex
	records []Enquiry
}

func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(ctx context.Context, e *Enquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	r.records = append(r.records, *e)
	return nil
}

func (r *memoryRepository) Find(ctx context.Context, search string) ([]Enquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(search)
	out := make([]Enquiry, 0, len(r.records))
	for _, rec := range r.records {
		if q != "" &&
			!strings.Contains(strings.ToLower(rec.Name), q) &&
			!strings.Contains(strings.ToLower(rec.Email), q) {
			continue
		}
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id string) (*Enquiry, error) {
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

func (r *memoryRepository) Update(ctx context.Context, e *Enquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID == e.ID {
			r.records[i] = *e
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}
