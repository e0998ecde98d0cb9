package quotation

import (
	"context"
	"errors"
	"time"

	quotationerrors "hr-backoffice/internal/quotation/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateQuotationRequest) (QuotationResponse, error)
	GetAll(ctx context.Context) ([]QuotationResponse, error)
	Update(ctx context.Context, id string, req UpdateQuotationRequest) (QuotationResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("quotation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("quotation.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateQuotationRequest) (QuotationResponse, error) {
	q := &Quotation{
		ID:          uuid.New(),
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Message:     req.Message,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, q); err != nil {
		s.logger.Error("create quotation persist failed", zap.Error(err))
		return QuotationResponse{}, err
	}

	s.logger.Info("quotation received", zap.String("quotation_id", q.ID.String()))
	return mapToResponse(*q), nil
}

func (s *service) GetAll(ctx context.Context) ([]QuotationResponse, error) {
	quotations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]QuotationResponse, len(quotations))
	for i, q := range quotations {
		resp[i] = mapToResponse(q)
	}
	return resp, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateQuotationRequest) (QuotationResponse, error) {
	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return QuotationResponse{}, quotationerrors.ErrQuotationNotFound
		}
		return QuotationResponse{}, err
	}

	if req.Name != "" {
		q.Name = req.Name
	}
	if req.Email != "" {
		q.Email = req.Email
	}
	if req.PhoneNumber != "" {
		q.PhoneNumber = req.PhoneNumber
	}
	if req.Message != "" {
		q.Message = req.Message
	}

	if err := s.repo.Update(ctx, q); err != nil {
		s.logger.Error("update quotation persist failed", zap.Error(err))
		return QuotationResponse{}, err
	}
	return mapToResponse(*q), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete quotation failed", zap.Error(err))
		return err
	}
	s.logger.Info("quotation deleted", zap.String("quotation_id", id))
	return nil
}

func mapToResponse(q Quotation) QuotationResponse {
	return QuotationResponse{
		ID:          q.ID.String(),
		Name:        q.Name,
		Email:       q.Email,
		PhoneNumber: q.PhoneNumber,
		Message:     q.Message,
		CreatedAt:   q.CreatedAt.Format(time.RFC3339),
	}
}
