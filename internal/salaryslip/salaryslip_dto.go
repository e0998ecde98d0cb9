package salaryslip

// CreateSalarySlipRequest binds the multipart payroll form. Amounts arrive
// as free text and are coerced with ParseAmount; totals sent by the client
// are ignored.
type CreateSalarySlipRequest struct {
	EmployeeName string `form:"employeeName" binding:"required"`
	EmpID        string `form:"empId"`
	Email        string `form:"email" binding:"required,email"`
	Designation  string `form:"designation"`
	Month        string `form:"month"`
	Year         string `form:"year"`

	Basic           string `form:"basic"`
	HRA             string `form:"hra"`
	Allowances      string `form:"allowances"`
	PF              string `form:"pf"`
	Tax             string `form:"tax"`
	OtherDeductions string `form:"otherDeductions"`
}

type SalarySlipResponse struct {
	ID           string `json:"id"`
	EmployeeName string `json:"employeeName"`
	EmpID        string `json:"empId"`
	Email        string `json:"email"`
	Designation  string `json:"designation"`
	Month        string `json:"month"`
	Year         string `json:"year"`

	Basic           float64 `json:"basic"`
	HRA             float64 `json:"hra"`
	Allowances      float64 `json:"allowances"`
	PF              float64 `json:"pf"`
	Tax             float64 `json:"tax"`
	OtherDeductions float64 `json:"otherDeductions"`

	TotalEarnings   float64 `json:"totalEarnings"`
	TotalDeductions float64 `json:"totalDeductions"`
	NetPay          float64 `json:"netPay"`

	PDFPath   *string `json:"pdfPath,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

type GenerateResponse struct {
	PDFPath string `json:"pdfPath"`
}
