package enquiry

import (
	"context"
	"errors"
	"time"

	enquiryerrors "hr-backoffice/internal/enquiry/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateEnquiryRequest) (EnquiryResponse, error)
	GetAll(ctx context.Context, search string) ([]EnquiryResponse, error)
	Update(ctx context.Context, id string, req UpdateEnquiryRequest) (EnquiryResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("enquiry.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("enquiry.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEnquiryRequest) (EnquiryResponse, error) {
	e := &Enquiry{
		ID:          uuid.New(),
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Message:     req.Message,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Error("create enquiry persist failed", zap.Error(err))
		return EnquiryResponse{}, err
	}

	s.logger.Info("enquiry received", zap.String("enquiry_id", e.ID.String()))
	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context, search string) ([]EnquiryResponse, error) {
	enquiries, err := s.repo.Find(ctx, search)
	if err != nil {
		return nil, err
	}

	resp := make([]EnquiryResponse, len(enquiries))
	for i, e := range enquiries {
		resp[i] = mapToResponse(e)
	}
	return resp, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEnquiryRequest) (EnquiryResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EnquiryResponse{}, enquiryerrors.ErrEnquiryNotFound
		}
		return EnquiryResponse{}, err
	}

	if req.Name != "" {
		e.Name = req.Name
	}
	if req.Email != "" {
		e.Email = req.Email
	}
	if req.PhoneNumber != "" {
		e.PhoneNumber = req.PhoneNumber
	}
	if req.Message != "" {
		e.Message = req.Message
	}

	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("update enquiry persist failed", zap.Error(err))
		return EnquiryResponse{}, err
	}
	return mapToResponse(*e), nil
}

func mapToResponse(e Enquiry) EnquiryResponse {
	return EnquiryResponse{
		ID:          e.ID.String(),
		Name:        e.Name,
		Email:       e.Email,
		PhoneNumber: e.PhoneNumber,
		Message:     e.Message,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}
