package salaryslip

import (
	"time"

	"github.com/google/uuid"
)

type SalarySlip struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeName string    `gorm:"type:varchar(120);not null"`
	EmpID        string    `gorm:"column:emp_id;type:varchar(40)"`
	Email        string    `gorm:"type:varchar(255);index:idx_salary_slips_email"`
	Designation  string    `gorm:"type:varchar(120)"`
	Month        string    `gorm:"type:varchar(20)"`
	Year         string    `gorm:"type:varchar(10)"`

	Basic           float64 `gorm:"type:numeric;not null;default:0"`
	HRA             float64 `gorm:"column:hra;type:numeric;not null;default:0"`
	Allowances      float64 `gorm:"type:numeric;not null;default:0"`
	PF              float64 `gorm:"column:pf;type:numeric;not null;default:0"`
	Tax             float64 `gorm:"type:numeric;not null;default:0"`
	OtherDeductions float64 `gorm:"type:numeric;not null;default:0"`

	TotalEarnings   float64 `gorm:"type:numeric;not null;default:0"`
	TotalDeductions float64 `gorm:"type:numeric;not null;default:0"`
	NetPay          float64 `gorm:"type:numeric;not null;default:0"`

	// Set once the first artifact is rendered; regeneration overwrites the
	// artifact but keeps the same path.
	PDFPath *string `gorm:"column:pdf_path;type:text"`

	CreatedAt time.Time
}

func (SalarySlip) TableName() string {
	return "salary_slips"
}
