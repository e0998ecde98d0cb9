package leave

type CreateLeaveRequest struct {
	EmployeeName  string `json:"employeeName" binding:"required"`
	EmployeeEmail string `json:"employeeEmail" binding:"required,email"`
	FromDate      string `json:"fromDate" binding:"required"`
	ToDate        string `json:"toDate" binding:"required"`
	LeaveType     string `json:"type"`
	Reason        string `json:"reason"`

	// Accepted for wire compatibility with the old dashboard client, which
	// sends its own snapshot. Never read: days, quota and taken-this-month
	// are recomputed server-side on every submission.
	Days                 int    `json:"days"`
	Status               string `json:"status"`
	MonthlyQuota         int    `json:"monthlyQuota"`
	LeavesTakenThisMonth int    `json:"leavesTakenThisMonth"`
}

type ListLeavesFilter struct {
	Email  string `form:"email"`
	Status string `form:"status"`
	Search string `form:"search"`
}

type BulkActionRequest struct {
	IDs    []string `json:"ids" binding:"required,min=1"`
	Action string   `json:"action" binding:"required,oneof=approve deny"`
}

type AutoApproveRequest struct {
	Email string `json:"email"`
}

type LeaveResponse struct {
	ID                   string `json:"id"`
	EmployeeName         string `json:"employeeName"`
	EmployeeEmail        string `json:"employeeEmail"`
	FromDate             string `json:"fromDate"`
	ToDate               string `json:"toDate"`
	Days                 int    `json:"days"`
	LeaveType            string `json:"type"`
	Reason               string `json:"reason"`
	Status               string `json:"status"`
	MonthlyQuota         int    `json:"monthlyQuota"`
	LeavesTakenThisMonth int    `json:"leavesTakenThisMonth"`
	LeavesLeft           int    `json:"leavesLeft"`
	CreatedAt            string `json:"createdAt"`
}

type BulkActionResponse struct {
	Matched  int64 `json:"matched"`
	Modified int64 `json:"modified"`
}

type AutoApproveResponse struct {
	Message  string `json:"message"`
	Matched  int64  `json:"matched"`
	Modified int64  `json:"modified"`
}
