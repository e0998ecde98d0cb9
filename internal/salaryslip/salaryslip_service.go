package salaryslip

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	salarysliperrors "hr-backoffice/internal/salaryslip/errors"
	"hr-backoffice/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=salaryslip_service.go -destination=mock/salaryslip_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateSalarySlipRequest) (SalarySlipResponse, error)
	List(ctx context.Context, email string) ([]SalarySlipResponse, error)
	Generate(ctx context.Context, id string) (GenerateResponse, error)
	ArtifactPath(ctx context.Context, id string) (string, error)
}

type service struct {
	repo       Repository
	uploadsDir string
	// eager mode renders the document at creation time so degraded-mode
	// clients can download immediately; durable mode defers to the first
	// generate call.
	eagerGenerate bool
	logger        *zap.Logger
}

func NewService(repo Repository, uploadsDir string, eagerGenerate bool, logger ...*zap.Logger) Service {
	l := zap.L().Named("salaryslip.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salaryslip.service")
	}
	if uploadsDir == "" {
		uploadsDir = "uploads"
	}
	return &service{
		repo:          repo,
		uploadsDir:    uploadsDir,
		eagerGenerate: eagerGenerate,
		logger:        l,
	}
}

func (s *service) Create(ctx context.Context, req CreateSalarySlipRequest) (SalarySlipResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	basic := ParseAmount(req.Basic)
	hra := ParseAmount(req.HRA)
	allowances := ParseAmount(req.Allowances)
	pf := ParseAmount(req.PF)
	tax := ParseAmount(req.Tax)
	other := ParseAmount(req.OtherDeductions)
	totals := ComputeTotals(basic, hra, allowances, pf, tax, other)

	slip := &SalarySlip{
		ID:              uuid.New(),
		EmployeeName:    req.EmployeeName,
		EmpID:           req.EmpID,
		Email:           req.Email,
		Designation:     req.Designation,
		Month:           req.Month,
		Year:            req.Year,
		Basic:           basic,
		HRA:             hra,
		Allowances:      allowances,
		PF:              pf,
		Tax:             tax,
		OtherDeductions: other,
		TotalEarnings:   totals.TotalEarnings,
		TotalDeductions: totals.TotalDeductions,
		NetPay:          totals.NetPay,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, slip); err != nil {
		s.logger.Error("create salary slip persist failed", zap.String("request_id", rid), zap.Error(err))
		return SalarySlipResponse{}, err
	}

	if s.eagerGenerate {
		// Best effort: a failed render must not fail the submission.
		if path, err := s.generateArtifact(ctx, slip); err != nil {
			s.logger.Warn("eager slip render failed",
				zap.String("slip_id", slip.ID.String()),
				zap.Error(err),
			)
		} else {
			slip.PDFPath = &path
		}
	}

	s.logger.Info("create salary slip success",
		zap.String("request_id", rid),
		zap.String("slip_id", slip.ID.String()),
		zap.Float64("net_pay", slip.NetPay),
	)
	return mapToResponse(*slip), nil
}

func (s *service) List(ctx context.Context, email string) ([]SalarySlipResponse, error) {
	slips, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(slips), nil
}

// Generate renders the document and records its path. Regeneration
// overwrites the artifact at the same derived path; concurrent calls race
// and the last writer wins. The two phases (file write, metadata update)
// are not atomic: a crash in between leaves an unreferenced artifact, which
// the next generate call repairs by re-running both phases.
func (s *service) Generate(ctx context.Context, id string) (GenerateResponse, error) {
	slip, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GenerateResponse{}, salarysliperrors.ErrSlipNotFound
		}
		return GenerateResponse{}, err
	}

	path, err := s.generateArtifact(ctx, slip)
	if err != nil {
		s.logger.Error("slip render failed", zap.String("slip_id", id), zap.Error(err))
		return GenerateResponse{}, salarysliperrors.ErrPDFRenderFailed
	}

	s.logger.Info("slip generated", zap.String("slip_id", id), zap.String("pdf_path", path))
	return GenerateResponse{PDFPath: path}, nil
}

func (s *service) ArtifactPath(ctx context.Context, id string) (string, error) {
	slip, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", salarysliperrors.ErrSlipNotFound
		}
		return "", err
	}
	if slip.PDFPath == nil || *slip.PDFPath == "" {
		return "", salarysliperrors.ErrPDFNotGenerated
	}
	return *slip.PDFPath, nil
}

func (s *service) generateArtifact(ctx context.Context, slip *SalarySlip) (string, error) {
	data, err := renderSlipPDF(*slip)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.uploadsDir, 0o755); err != nil {
		return "", err
	}

	path := s.artifactPath(slip.ID.String())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}

	if err := s.repo.UpdatePDFPath(ctx, slip.ID.String(), path); err != nil {
		return "", fmt.Errorf("artifact written but path update failed: %w", err)
	}
	return path, nil
}

func (s *service) artifactPath(id string) string {
	return filepath.Join(s.uploadsDir, "slip-"+id+".pdf")
}

func mapToResponse(s SalarySlip) SalarySlipResponse {
	return SalarySlipResponse{
		ID:              s.ID.String(),
		EmployeeName:    s.EmployeeName,
		EmpID:           s.EmpID,
		Email:           s.Email,
		Designation:     s.Designation,
		Month:           s.Month,
		Year:            s.Year,
		Basic:           s.Basic,
		HRA:             s.HRA,
		Allowances:      s.Allowances,
		PF:              s.PF,
		Tax:             s.Tax,
		OtherDeductions: s.OtherDeductions,
		TotalEarnings:   s.TotalEarnings,
		TotalDeductions: s.TotalDeductions,
		NetPay:          s.NetPay,
		PDFPath:         s.PDFPath,
		CreatedAt:       s.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(slips []SalarySlip) []SalarySlipResponse {
	resp := make([]SalarySlipResponse, len(slips))
	for i, s := range slips {
		resp[i] = mapToResponse(s)
	}
	return resp
}
