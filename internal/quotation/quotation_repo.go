package quotation

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=quotation_repo.go -destination=mock/quotation_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, q *Quotation) error
	FindAll(ctx context.Context) ([]Quotation, error)
	FindByID(ctx context.Context, id string) (*Quotation, error)
	Update(ctx context.Context, q *Quotation) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, q *Quotation) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Quotation, error) {
	var quotations []Quotation
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&quotations).Error
	if err != nil {
		return nil, err
	}
	return quotations, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Quotation, error) {
	var q Quotation
	if err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *repository) Update(ctx context.Context, q *Quotation) error {
	return r.db.WithContext(ctx).Save(q).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Quotation{}, "id = ?", id).Error
}
