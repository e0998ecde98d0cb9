package leave_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hr-backoffice/internal/leave"
	leaveerrors "hr-backoffice/internal/leave/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeLeaveRepository struct {
	createFn               func(ctx context.Context, l *leave.LeaveRequest) error
	findByIDFn             func(ctx context.Context, id string) (*leave.LeaveRequest, error)
	findFn                 func(ctx context.Context, filter leave.ListLeavesFilter) ([]leave.LeaveRequest, error)
	findNonDeniedInMonthFn func(ctx context.Context, email string, year int, month time.Month) ([]leave.LeaveRequest, error)
	updateFn               func(ctx context.Context, l *leave.LeaveRequest) error
	updateStatusByIDsFn    func(ctx context.Context, ids []string, status string) (int64, int64, error)
	approvePendingFn       func(ctx context.Context, email string) (int64, int64, error)
}

func (f *fakeLeaveRepository) Create(ctx context.Context, l *leave.LeaveRequest) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) FindByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepository) Find(ctx context.Context, filter leave.ListLeavesFilter) ([]leave.LeaveRequest, error) {
	if f.findFn != nil {
		return f.findFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindNonDeniedInMonth(ctx context.Context, email string, year int, month time.Month) ([]leave.LeaveRequest, error) {
	if f.findNonDeniedInMonthFn != nil {
		return f.findNonDeniedInMonthFn(ctx, email, year, month)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) Update(ctx context.Context, l *leave.LeaveRequest) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) UpdateStatusByIDs(ctx context.Context, ids []string, status string) (int64, int64, error) {
	if f.updateStatusByIDsFn != nil {
		return f.updateStatusByIDsFn(ctx, ids, status)
	}
	return 0, 0, nil
}

func (f *fakeLeaveRepository) ApprovePending(ctx context.Context, email string) (int64, int64, error) {
	if f.approvePendingFn != nil {
		return f.approvePendingFn(ctx, email)
	}
	return 0, 0, nil
}

func TestLeaveService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("computes days and quota snapshot", func(t *testing.T) {
		repo := &fakeLeaveRepository{}
		repo.findNonDeniedInMonthFn = func(ctx context.Context, email string, year int, month time.Month) ([]leave.LeaveRequest, error) {
			assert.Equal(t, "alice@example.com", email)
			now := time.Now().UTC()
			return []leave.LeaveRequest{
				{FromDate: now, ToDate: now, Days: 1, Status: leave.StatusApproved},
			}, nil
		}
		repo.createFn = func(ctx context.Context, l *leave.LeaveRequest) error {
			assert.Equal(t, leave.StatusPending, l.Status)
			assert.Equal(t, 3, l.Days)
			assert.Equal(t, 2, l.MonthlyQuota)
			assert.Equal(t, 1, l.LeavesTakenThisMonth)
			return nil
		}

		svc := leave.NewService(repo, nil, 2)
		resp, err := svc.Submit(ctx, leave.CreateLeaveRequest{
			EmployeeName:  "Alice Kumar",
			EmployeeEmail: "alice@example.com",
			FromDate:      "2026-03-10",
			ToDate:        "2026-03-12",
			LeaveType:     "casual",
			Reason:        "Family event",
		})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusPending, resp.Status)
		assert.Equal(t, 3, resp.Days)
		assert.Equal(t, 1, resp.LeavesLeft)
	})

	t.Run("exhausted balance does not block submission", func(t *testing.T) {
		now := time.Now().UTC()
		repo := &fakeLeaveRepository{
			findNonDeniedInMonthFn: func(ctx context.Context, email string, year int, month time.Month) ([]leave.LeaveRequest, error) {
				return []leave.LeaveRequest{
					{FromDate: now, ToDate: now, Days: 2, Status: leave.StatusApproved},
				}, nil
			},
		}

		svc := leave.NewService(repo, nil, 2)
		resp, err := svc.Submit(ctx, leave.CreateLeaveRequest{
			EmployeeName:  "Alice Kumar",
			EmployeeEmail: "alice@example.com",
			FromDate:      "2026-03-10",
			ToDate:        "2026-03-10",
		})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusPending, resp.Status)
		assert.Equal(t, 0, resp.LeavesLeft)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		svc := leave.NewService(&fakeLeaveRepository{}, nil, 2)
		_, err := svc.Submit(ctx, leave.CreateLeaveRequest{
			EmployeeEmail: "alice@example.com",
			FromDate:      "10-03-2026",
			ToDate:        "2026-03-12",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)
	})
}

func TestLeaveService_Resolve(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("approve", func(t *testing.T) {
		repo := &fakeLeaveRepository{
			findByIDFn: func(ctx context.Context, gotID string) (*leave.LeaveRequest, error) {
				assert.Equal(t, id.String(), gotID)
				return &leave.LeaveRequest{ID: id, Status: leave.StatusPending}, nil
			},
			updateFn: func(ctx context.Context, l *leave.LeaveRequest) error {
				assert.Equal(t, leave.StatusApproved, l.Status)
				return nil
			},
		}

		svc := leave.NewService(repo, nil, 2)
		resp, err := svc.Resolve(ctx, id.String(), leave.ActionApprove)

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
	})

	t.Run("denied record can be re-approved", func(t *testing.T) {
		repo := &fakeLeaveRepository{
			findByIDFn: func(ctx context.Context, gotID string) (*leave.LeaveRequest, error) {
				return &leave.LeaveRequest{ID: id, Status: leave.StatusDenied}, nil
			},
		}

		svc := leave.NewService(repo, nil, 2)
		resp, err := svc.Resolve(ctx, id.String(), leave.ActionApprove)

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeLeaveRepository{
			findByIDFn: func(ctx context.Context, gotID string) (*leave.LeaveRequest, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := leave.NewService(repo, nil, 2)
		_, err := svc.Resolve(ctx, uuid.NewString(), leave.ActionDeny)

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})

	t.Run("unknown action", func(t *testing.T) {
		svc := leave.NewService(&fakeLeaveRepository{}, nil, 2)
		_, err := svc.Resolve(ctx, id.String(), "escalate")

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidAction)
	})
}

func TestLeaveService_BulkResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown ids shrink the matched count", func(t *testing.T) {
		ids := []string{uuid.NewString(), uuid.NewString(), uuid.NewString()}
		repo := &fakeLeaveRepository{
			updateStatusByIDsFn: func(ctx context.Context, gotIDs []string, status string) (int64, int64, error) {
				assert.Equal(t, ids, gotIDs)
				assert.Equal(t, leave.StatusDenied, status)
				return 2, 2, nil
			},
		}

		svc := leave.NewService(repo, nil, 2)
		resp, err := svc.BulkResolve(ctx, ids, leave.ActionDeny)

		assert.NoError(t, err)
		assert.Equal(t, int64(2), resp.Matched)
		assert.Equal(t, int64(2), resp.Modified)
	})

	t.Run("already-resolved records match without modifying", func(t *testing.T) {
		repo := &fakeLeaveRepository{
			updateStatusByIDsFn: func(ctx context.Context, ids []string, status string) (int64, int64, error) {
				return 3, 1, nil
			},
		}

		svc := leave.NewService(repo, nil, 2)
		resp, err := svc.BulkResolve(ctx, []string{"a", "b", "c"}, leave.ActionApprove)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), resp.Matched)
		assert.Equal(t, int64(1), resp.Modified)
	})

	t.Run("invalid action", func(t *testing.T) {
		svc := leave.NewService(&fakeLeaveRepository{}, nil, 2)
		_, err := svc.BulkResolve(ctx, []string{"a"}, "purge")

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidAction)
	})

	t.Run("repository error surfaces", func(t *testing.T) {
		repoErr := errors.New("connection reset")
		repo := &fakeLeaveRepository{
			updateStatusByIDsFn: func(ctx context.Context, ids []string, status string) (int64, int64, error) {
				return 0, 0, repoErr
			},
		}

		svc := leave.NewService(repo, nil, 2)
		_, err := svc.BulkResolve(ctx, []string{"a"}, leave.ActionApprove)

		assert.ErrorIs(t, err, repoErr)
	})
}

func TestLeaveService_AutoApprovePending(t *testing.T) {
	ctx := context.Background()

	t.Run("zero matches is a success", func(t *testing.T) {
		repo := &fakeLeaveRepository{
			approvePendingFn: func(ctx context.Context, email string) (int64, int64, error) {
				return 0, 0, nil
			},
		}

		svc := leave.NewService(repo, nil, 2)
		resp, err := svc.AutoApprovePending(ctx, "")

		assert.NoError(t, err)
		assert.Equal(t, "No pending leaves matched", resp.Message)
		assert.Equal(t, int64(0), resp.Matched)
	})

	t.Run("scoped to one employee", func(t *testing.T) {
		repo := &fakeLeaveRepository{
			approvePendingFn: func(ctx context.Context, email string) (int64, int64, error) {
				assert.Equal(t, "bob@example.com", email)
				return 2, 2, nil
			},
		}

		svc := leave.NewService(repo, nil, 2)
		resp, err := svc.AutoApprovePending(ctx, "bob@example.com")

		assert.NoError(t, err)
		assert.Equal(t, "Auto-approve completed", resp.Message)
		assert.Equal(t, int64(2), resp.Matched)
		assert.Equal(t, int64(2), resp.Modified)
	})
}
