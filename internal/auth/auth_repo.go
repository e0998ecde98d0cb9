package auth

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type ActivityRepository interface {
	Record(ctx context.Context, activity *LoginActivity) error
	FindRecent(ctx context.Context, limit int) ([]LoginActivity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Record(ctx context.Context, activity *LoginActivity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) FindRecent(ctx context.Context, limit int) ([]LoginActivity, error) {
	var activities []LoginActivity
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}
