package enquiry

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=enquiry_repo.go -destination=mock/enquiry_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, e *Enquiry) error
	Find(ctx context.Context, search string) ([]Enquiry, error)
	FindByID(ctx context.Context, id string) (*Enquiry, error)
	Update(ctx context.Context, e *Enquiry) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Enquiry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) Find(ctx context.Context, search string) ([]Enquiry, error) {
	db := r.db.WithContext(ctx).Model(&Enquiry{})
	if search != "" {
		like := "%" + search + "%"
		db = db.Where("name ILIKE ? OR email ILIKE ?", like, like)
	}

	var enquiries []Enquiry
	if err := db.Order("created_at DESC").Find(&enquiries).Error; err != nil {
		return nil, err
	}
	return enquiries, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Enquiry, error) {
	var e Enquiry
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) Update(ctx context.Context, e *Enquiry) error {
	return r.db.WithContext(ctx).Save(e).Error
}
