package leave

import (
	"context"
	"errors"
	"time"

	"hr-backoffice/internal/events"
	leaveerrors "hr-backoffice/internal/leave/errors"
	"hr-backoffice/internal/messaging/kafka"
	"hr-backoffice/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"

	ActionApprove = "approve"
	ActionDeny    = "deny"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	List(ctx context.Context, filter ListLeavesFilter) ([]LeaveResponse, error)
	Resolve(ctx context.Context, id, action string) (LeaveResponse, error)
	BulkResolve(ctx context.Context, ids []string, action string) (BulkActionResponse, error)
	AutoApprovePending(ctx context.Context, email string) (AutoApproveResponse, error)
}

type service struct {
	repo     Repository
	notifier kafka.Notifier
	quota    int
	logger   *zap.Logger
}

func NewService(repo Repository, notifier kafka.Notifier, quota int, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if quota <= 0 {
		quota = DefaultMonthlyQuota
	}
	if notifier == nil {
		notifier = kafka.NewNotifier(nil)
	}
	return &service{repo: repo, notifier: notifier, quota: quota, logger: l}
}

// Submit persists a new pending request. The quota snapshot is computed
// server-side and stored, but never enforced: a submission with zero days
// left still succeeds. Enforcement is a client concern today; the snapshot
// keeps the numbers available should that policy ever move server-side.
func (s *service) Submit(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("submit leave requested",
		zap.String("request_id", rid),
		zap.String("employee_email", req.EmployeeEmail),
		zap.String("from_date", req.FromDate),
		zap.String("to_date", req.ToDate),
	)

	fromDate, err := parseDate(req.FromDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	toDate, err := parseDate(req.ToDate)
	if err != nil {
		return LeaveResponse{}, err
	}

	now := time.Now().UTC()
	existing, err := s.repo.FindNonDeniedInMonth(ctx, req.EmployeeEmail, now.Year(), now.Month())
	if err != nil {
		s.logger.Error("submit leave month scan failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	l := &LeaveRequest{
		ID:                   uuid.New(),
		EmployeeName:         req.EmployeeName,
		EmployeeEmail:        req.EmployeeEmail,
		FromDate:             fromDate,
		ToDate:               toDate,
		Days:                 DaysRequested(fromDate, toDate),
		LeaveType:            req.LeaveType,
		Reason:               req.Reason,
		Status:               StatusPending,
		MonthlyQuota:         s.quota,
		LeavesTakenThisMonth: TakenThisMonth(existing, now),
		CreatedAt:            now,
	}

	if err := s.repo.Create(ctx, l); err != nil {
		s.logger.Error("submit leave persist failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.notifier.Notify(events.LeaveChangedTopic, l.ID.String(), events.LeaveChangedEvent{
		EventType:     events.LeaveSubmitted,
		LeaveID:       l.ID.String(),
		EmployeeEmail: l.EmployeeEmail,
		Status:        l.Status,
		OccurredAt:    now,
	})

	s.logger.Info("submit leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", l.ID.String()),
		zap.Int("days", l.Days),
	)
	return mapToResponse(*l), nil
}

func (s *service) List(ctx context.Context, filter ListLeavesFilter) ([]LeaveResponse, error) {
	leaves, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

// Resolve applies an approve/deny action to one record. Deliberately
// permissive about the current status: the dashboard hides action buttons on
// resolved records, the API does not re-check.
func (s *service) Resolve(ctx context.Context, id, action string) (LeaveResponse, error) {
	status, err := statusForAction(action)
	if err != nil {
		return LeaveResponse{}, err
	}

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	l.Status = status
	if err := s.repo.Update(ctx, l); err != nil {
		s.logger.Error("resolve leave persist failed",
			zap.String("leave_id", id),
			zap.String("action", action),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	s.notifier.Notify(events.LeaveChangedTopic, id, events.LeaveChangedEvent{
		EventType:     events.LeaveResolved,
		LeaveID:       id,
		EmployeeEmail: l.EmployeeEmail,
		Status:        status,
		OccurredAt:    time.Now().UTC(),
	})

	s.logger.Info("resolve leave success",
		zap.String("leave_id", id),
		zap.String("status", status),
	)
	return mapToResponse(*l), nil
}

// BulkResolve applies one action to a set of ids. Unknown ids are skipped
// silently, so matched may be below the requested count. No per-id outcome
// detail is reported and no batch rollback exists; an error mid-way can
// leave a mixed state the caller's optimistic UI must reconcile.
func (s *service) BulkResolve(ctx context.Context, ids []string, action string) (BulkActionResponse, error) {
	status, err := statusForAction(action)
	if err != nil {
		return BulkActionResponse{}, err
	}

	matched, modified, err := s.repo.UpdateStatusByIDs(ctx, ids, status)
	if err != nil {
		s.logger.Error("bulk resolve failed",
			zap.Int("requested", len(ids)),
			zap.String("action", action),
			zap.Error(err),
		)
		return BulkActionResponse{}, err
	}

	s.notifier.Notify(events.LeaveChangedTopic, status, events.LeaveChangedEvent{
		EventType:  events.LeaveBulkResolved,
		Status:     status,
		Affected:   modified,
		OccurredAt: time.Now().UTC(),
	})

	s.logger.Info("bulk resolve success",
		zap.Int("requested", len(ids)),
		zap.Int64("matched", matched),
		zap.Int64("modified", modified),
		zap.String("status", status),
	)
	return BulkActionResponse{Matched: matched, Modified: modified}, nil
}

// AutoApprovePending flips every pending record (optionally one employee's)
// to approved. Zero matches is a success, not an error.
func (s *service) AutoApprovePending(ctx context.Context, email string) (AutoApproveResponse, error) {
	matched, modified, err := s.repo.ApprovePending(ctx, email)
	if err != nil {
		s.logger.Error("auto-approve failed", zap.String("email", email), zap.Error(err))
		return AutoApproveResponse{}, err
	}

	message := "Auto-approve completed"
	if matched == 0 {
		message = "No pending leaves matched"
	} else {
		s.notifier.Notify(events.LeaveChangedTopic, StatusApproved, events.LeaveChangedEvent{
			EventType:     events.LeaveAutoApproved,
			EmployeeEmail: email,
			Status:        StatusApproved,
			Affected:      modified,
			OccurredAt:    time.Now().UTC(),
		})
	}

	s.logger.Info("auto-approve done",
		zap.String("email", email),
		zap.Int64("matched", matched),
		zap.Int64("modified", modified),
	)
	return AutoApproveResponse{Message: message, Matched: matched, Modified: modified}, nil
}

func statusForAction(action string) (string, error) {
	switch action {
	case ActionApprove:
		return StatusApproved, nil
	case ActionDeny:
		return StatusDenied, nil
	default:
		return "", leaveerrors.ErrInvalidAction
	}
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:                   l.ID.String(),
		EmployeeName:         l.EmployeeName,
		EmployeeEmail:        l.EmployeeEmail,
		FromDate:             l.FromDate.Format("2006-01-02"),
		ToDate:               l.ToDate.Format("2006-01-02"),
		Days:                 l.Days,
		LeaveType:            l.LeaveType,
		Reason:               l.Reason,
		Status:               l.Status,
		MonthlyQuota:         l.MonthlyQuota,
		LeavesTakenThisMonth: l.LeavesTakenThisMonth,
		LeavesLeft:           LeavesLeft(l.MonthlyQuota, l.LeavesTakenThisMonth),
		CreatedAt:            l.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
