package auth

import (
	"context"
	"sync"
	"time"
)

// memoryActivityRepository backs degraded mode; records are lost on restart.
type memoryActivityRepository struct {
	mu      sync.RWMutex
	records []LoginActivity
}

func NewMemoryActivityRepository() ActivityRepository {
	return &memoryActivityRepository{}
}

func (r *memoryActivityRepository) Record(ctx context.Context, activity *LoginActivity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now().UTC()
	}
	r.records = append(r.records, *activity)
	return nil
}

func (r *memoryActivityRepository) FindRecent(ctx context.Context, limit int) ([]LoginActivity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]LoginActivity, 0, limit)
	for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.records[i])
	}
	return out, nil
}
