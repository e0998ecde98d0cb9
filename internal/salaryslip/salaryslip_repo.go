package salaryslip

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salaryslip_repo.go -destination=mock/salaryslip_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, s *SalarySlip) error
	FindByID(ctx context.Context, id string) (*SalarySlip, error)
	FindByEmail(ctx context.Context, email string) ([]SalarySlip, error)
	UpdatePDFPath(ctx context.Context, id, path string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *SalarySlip) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*SalarySlip, error) {
	var s SalarySlip
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) ([]SalarySlip, error) {
	db := r.db.WithContext(ctx).Model(&SalarySlip{})
	if email != "" {
		db = db.Where("LOWER(email) = LOWER(?)", email)
	}

	var slips []SalarySlip
	err := db.Order("created_at DESC").Find(&slips).Error
	return slips, err
}

func (r *repository) UpdatePDFPath(ctx context.Context, id, path string) error {
	return r.db.WithContext(ctx).
		Model(&SalarySlip{}).
		Where("id = ?", id).
		Update("pdf_path", path).Error
}
