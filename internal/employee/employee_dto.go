package employee

type CreateEmployeeRequest struct {
	EmpID       string `json:"empId" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Designation string `json:"designation"`
	JoinDate    string `json:"joinDate"`
	Status      string `json:"status"`
	Password    string `json:"password"`
}

// UpdateEmployeeRequest deliberately exposes only the two mutable fields;
// identity and payroll-facing attributes stay immutable after onboarding.
type UpdateEmployeeRequest struct {
	Password string `json:"password"`
	Status   string `json:"status"`
}

type ListEmployeesFilter struct {
	Search string `form:"search"`
}

type EmployeeResponse struct {
	ID          string `json:"id"`
	EmpID       string `json:"empId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
	JoinDate    string `json:"joinDate,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}
