package employee

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, empl *Employee) error
	Find(ctx context.Context, search string) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	Update(ctx context.Context, empl *Employee) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) Find(ctx context.Context, search string) ([]Employee, error) {
	db := r.db.WithContext(ctx).Model(&Employee{})
	if search != "" {
		like := "%" + search + "%"
		db = db.Where("name ILIKE ? OR email ILIKE ? OR emp_id ILIKE ?", like, like, like)
	}

	var empls []Employee
	if err := db.Order("created_at DESC").Find(&empls).Error; err != nil {
		return nil, err
	}
	return empls, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	if err := r.db.WithContext(ctx).First(&empl, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var empl Employee
	if err := r.db.WithContext(ctx).First(&empl, "LOWER(email) = LOWER(?)", email).Error; err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}
