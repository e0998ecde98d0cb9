package employee

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memoryRepository backs degraded mode. It starts with a small demo roster
// so the directory is browsable without a database.
type memoryRepository struct {
	mu      sync.RWMutex
	records []Employee
}

func NewMemoryRepository() Repository {
	return &memoryRepository{records: sampleEmployees()}
}

func sampleEmployees() []Employee {
	alice := time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC)
	bob := time.Date(2021, time.October, 15, 0, 0, 0, 0, time.UTC)
	return []Employee{
		{
			ID:          uuid.New(),
			EmpID:       "E001",
			Name:        "Alice Kumar",
			Email:       "alice@example.com",
			Designation: "Developer",
			JoinDate:    &alice,
			Status:      StatusActive,
			CreatedAt:   time.Now().UTC(),
		},
		{
			ID:          uuid.New(),
			EmpID:       "E002",
			Name:        "Bob Singh",
			Email:       "bob@example.com",
			Designation: "Designer",
			JoinDate:    &bob,
			Status:      StatusActive,
			CreatedAt:   time.Now().UTC().Add(-time.Minute),
		},
	}
}

func (r *memoryRepository) Create(ctx context.Context, empl *Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if empl.CreatedAt.IsZero() {
		empl.CreatedAt = time.Now().UTC()
	}
	r.records = append(r.records, *empl)
	return nil
}

func (r *memoryRepository) Find(ctx context.Context, search string) ([]Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(search)
	out := make([]Employee, 0, len(r.records))
	for _, rec := range r.records {
		if q != "" &&
			!strings.Contains(strings.ToLower(rec.Name), q) &&
			!strings.Contains(strings.ToLower(rec.Email), q) &&
			!strings.Contains(strings.ToLower(rec.EmpID), q) {
			continue
		}
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id string) (*Employee, error) {
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

func (r *memoryRepository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.records {
		if strings.EqualFold(r.records[i].Email, email) {
			rec := r.records[i]
			return &rec, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryRepository) Update(ctx context.Context, empl *Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID == empl.ID {
			r.records[i] = *empl
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}
