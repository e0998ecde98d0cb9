package salaryslip

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"
)

type memoryRepository struct {
	mu    sync.RWMutex
	slips []SalarySlip
}

func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(ctx context.Context, s *SalarySlip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	r.slips = append(r.slips, *s)
	return nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id string) (*SalarySlip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.slips {
		if r.slips[i].ID.String() == id {
			s := r.slips[i]
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryRepository) FindByEmail(ctx context.Context, email string) ([]SalarySlip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]SalarySlip, 0, len(r.slips))
	for _, s := range r.slips {
		if email != "" && !strings.EqualFold(s.Email, email) {
			continue
		}
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memoryRepository) UpdatePDFPath(ctx context.Context, id, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.slips {
		if r.slips[i].ID.String() == id {
			p := path
			r.slips[i].PDFPath = &p
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}
