package quotation

import (
	"context"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"
)

type memoryRepository struct {
	mu      sync.RWMutex
	records []Quotation
}

func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(ctx context.Context, q *Quotation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now().UTC()
	}
	r.records = append(r.records, *q)
	return nil
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]Quotation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Quotation, len(r.records))
	copy(out, r.records)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id string) (*Quotation, error) {
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

func (r *memoryRepository) Update(ctx context.Context, q *Quotation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID == q.ID {
			r.records[i] = *q
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID.String() == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return nil
}
