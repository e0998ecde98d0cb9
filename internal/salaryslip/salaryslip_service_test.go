package salaryslip_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"hr-backoffice/internal/salaryslip"
	salarysliperrors "hr-backoffice/internal/salaryslip/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeSlipRepository struct {
	createFn        func(ctx context.Context, s *salaryslip.SalarySlip) error
	findByIDFn      func(ctx context.Context, id string) (*salaryslip.SalarySlip, error)
	findByEmailFn   func(ctx context.Context, email string) ([]salaryslip.SalarySlip, error)
	updatePDFPathFn func(ctx context.Context, id, path string) error
}

func (f *fakeSlipRepository) Create(ctx context.Context, s *salaryslip.SalarySlip) error {
	if f.createFn != nil {
		return f.createFn(ctx, s)
	}
	return nil
}

func (f *fakeSlipRepository) FindByID(ctx context.Context, id string) (*salaryslip.SalarySlip, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSlipRepository) FindByEmail(ctx context.Context, email string) ([]salaryslip.SalarySlip, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (f *fakeSlipRepository) UpdatePDFPath(ctx context.Context, id, path string) error {
	if f.updatePDFPathFn != nil {
		return f.updatePDFPathFn(ctx, id, path)
	}
	return nil
}

func TestSalarySlipService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("totals are recomputed server-side", func(t *testing.T) {
		repo := &fakeSlipRepository{
			createFn: func(ctx context.Context, s *salaryslip.SalarySlip) error {
				assert.Equal(t, 27000.0, s.TotalEarnings)
				assert.Equal(t, 3500.0, s.TotalDeductions)
				assert.Equal(t, 23500.0, s.NetPay)
				return nil
			},
		}

		svc := salaryslip.NewService(repo, t.TempDir(), false)
		resp, err := svc.Create(ctx, salaryslip.CreateSalarySlipRequest{
			EmployeeName: "Alice Kumar",
			EmpID:        "E001",
			Email:        "alice@example.com",
			Designation:  "Developer",
			Month:        "March",
			Year:         "2026",
			Basic:        "20000",
			HRA:          "5000",
			Allowances:   "2000",
			PF:           "1800",
			Tax:          "1500",
			// Client-sent totals would be ignored even if present.
			OtherDeductions: "200",
		})

		assert.NoError(t, err)
		assert.Equal(t, 23500.0, resp.NetPay)
		assert.Nil(t, resp.PDFPath)
	})

	t.Run("junk amounts coerce to zero", func(t *testing.T) {
		repo := &fakeSlipRepository{
			createFn: func(ctx context.Context, s *salaryslip.SalarySlip) error {
				assert.Zero(t, s.Basic)
				assert.Equal(t, 5000.0, s.TotalEarnings)
				return nil
			},
		}

		svc := salaryslip.NewService(repo, t.TempDir(), false)
		_, err := svc.Create(ctx, salaryslip.CreateSalarySlipRequest{
			EmployeeName: "Alice Kumar",
			Basic:        "twenty thousand",
			HRA:          "5000",
		})

		assert.NoError(t, err)
	})

	t.Run("eager mode renders the document at creation", func(t *testing.T) {
		dir := t.TempDir()
		var updatedPath string
		repo := &fakeSlipRepository{
			updatePDFPathFn: func(ctx context.Context, id, path string) error {
				updatedPath = path
				return nil
			},
		}

		svc := salaryslip.NewService(repo, dir, true)
		resp, err := svc.Create(ctx, salaryslip.CreateSalarySlipRequest{
			EmployeeName: "Alice Kumar",
			Basic:        "20000",
		})

		assert.NoError(t, err)
		assert.NotNil(t, resp.PDFPath)
		assert.Equal(t, updatedPath, *resp.PDFPath)
		data, err := os.ReadFile(updatedPath)
		assert.NoError(t, err)
		assert.True(t, len(data) > 0)
		assert.Equal(t, "%PDF", string(data[:4]))
	})
}

func TestSalarySlipService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("writes artifact then records path", func(t *testing.T) {
		dir := t.TempDir()
		id := uuid.New()
		slip := &salaryslip.SalarySlip{
			ID:           id,
			EmployeeName: "Alice Kumar",
			EmpID:        "E001",
			Month:        "March",
			Year:         "2026",
			NetPay:       23500,
		}

		var recorded string
		repo := &fakeSlipRepository{
			findByIDFn: func(ctx context.Context, gotID string) (*salaryslip.SalarySlip, error) {
				assert.Equal(t, id.String(), gotID)
				return slip, nil
			},
			updatePDFPathFn: func(ctx context.Context, gotID, path string) error {
				recorded = path
				return nil
			},
		}

		svc := salaryslip.NewService(repo, dir, false)
		resp, err := svc.Generate(ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "slip-"+id.String()+".pdf"), resp.PDFPath)
		assert.Equal(t, resp.PDFPath, recorded)
		_, err = os.Stat(resp.PDFPath)
		assert.NoError(t, err)
	})

	t.Run("regeneration overwrites at the same path", func(t *testing.T) {
		dir := t.TempDir()
		id := uuid.New()
		slip := &salaryslip.SalarySlip{ID: id, EmployeeName: "Alice Kumar"}
		repo := &fakeSlipRepository{
			findByIDFn: func(ctx context.Context, gotID string) (*salaryslip.SalarySlip, error) {
				return slip, nil
			},
		}

		svc := salaryslip.NewService(repo, dir, false)

		first, err := svc.Generate(ctx, id.String())
		assert.NoError(t, err)

		slip.EmployeeName = "Alice K"
		second, err := svc.Generate(ctx, id.String())
		assert.NoError(t, err)

		assert.Equal(t, first.PDFPath, second.PDFPath)

		entries, err := os.ReadDir(dir)
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("unknown slip", func(t *testing.T) {
		svc := salaryslip.NewService(&fakeSlipRepository{}, t.TempDir(), false)
		_, err := svc.Generate(ctx, uuid.NewString())

		assert.ErrorIs(t, err, salarysliperrors.ErrSlipNotFound)
	})
}

func TestSalarySlipService_ArtifactPath(t *testing.T) {
	ctx := context.Background()

	t.Run("not generated yet", func(t *testing.T) {
		repo := &fakeSlipRepository{
			findByIDFn: func(ctx context.Context, id string) (*salaryslip.SalarySlip, error) {
				return &salaryslip.SalarySlip{ID: uuid.New()}, nil
			},
		}

		svc := salaryslip.NewService(repo, t.TempDir(), false)
		_, err := svc.ArtifactPath(ctx, uuid.NewString())

		assert.ErrorIs(t, err, salarysliperrors.ErrPDFNotGenerated)
	})

	t.Run("returns recorded path", func(t *testing.T) {
		path := filepath.Join("uploads", "slip-x.pdf")
		repo := &fakeSlipRepository{
			findByIDFn: func(ctx context.Context, id string) (*salaryslip.SalarySlip, error) {
				return &salaryslip.SalarySlip{ID: uuid.New(), PDFPath: &path, CreatedAt: time.Now()}, nil
			},
		}

		svc := salaryslip.NewService(repo, t.TempDir(), false)
		got, err := svc.ArtifactPath(ctx, uuid.NewString())

		assert.NoError(t, err)
		assert.Equal(t, path, got)
	})
}
