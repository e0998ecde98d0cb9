package leave

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	Find(ctx context.Context, filter ListLeavesFilter) ([]LeaveRequest, error)
	FindNonDeniedInMonth(ctx context.Context, email string, year int, month time.Month) ([]LeaveRequest, error)
	Update(ctx context.Context, l *LeaveRequest) error
	UpdateStatusByIDs(ctx context.Context, ids []string, status string) (matched, modified int64, err error)
	ApprovePending(ctx context.Context, email string) (matched, modified int64, err error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) Find(ctx context.Context, filter ListLeavesFilter) ([]LeaveRequest, error) {
	db := r.db.WithContext(ctx).Model(&LeaveRequest{})

	if filter.Email != "" {
		db = db.Where("employee_email = ?", filter.Email)
	}
	if filter.Status != "" && filter.Status != "all" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		db = db.Where("employee_name ILIKE ? OR employee_email ILIKE ?", like, like)
	}

	var leaves []LeaveRequest
	err := db.Order("created_at DESC").Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindNonDeniedInMonth(ctx context.Context, email string, year int, month time.Month) ([]LeaveRequest, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	var leaves []LeaveRequest
	err := r.db.WithContext(ctx).
		Where("employee_email = ?", email).
		Where("status <> ?", StatusDenied).
		Where("from_date >= ? AND from_date < ?", monthStart, nextMonth).
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) Update(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *repository) UpdateStatusByIDs(ctx context.Context, ids []string, status string) (int64, int64, error) {
	var matched int64
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("id IN ?", ids).
		Count(&matched).Error
	if err != nil {
		return 0, 0, err
	}

	// The status filter keeps modified a count of records that actually
	// changed, matching the document-store updateMany semantics.
	res := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("id IN ?", ids).
		Where("status <> ?", status).
		Update("status", status)
	if res.Error != nil {
		return 0, 0, res.Error
	}
	return matched, res.RowsAffected, nil
}

func (r *repository) ApprovePending(ctx context.Context, email string) (int64, int64, error) {
	var matched int64
	if err := r.pendingScope(ctx, email).Count(&matched).Error; err != nil {
		return 0, 0, err
	}
	if matched == 0 {
		return 0, 0, nil
	}

	res := r.pendingScope(ctx, email).Update("status", StatusApproved)
	if res.Error != nil {
		return 0, 0, res.Error
	}
	return matched, res.RowsAffected, nil
}

func (r *repository) pendingScope(ctx context.Context, email string) *gorm.DB {
	db := r.db.WithContext(ctx).Model(&LeaveRequest{}).Where("status = ?", StatusPending)
	if email != "" {
		db = db.Where("employee_email = ?", email)
	}
	return db
}
