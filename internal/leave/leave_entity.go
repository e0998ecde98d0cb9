package leave

import (
	"time"

	"github.com/google/uuid"
)

type LeaveRequest struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeName  string    `gorm:"type:varchar(120);not null"`
	EmployeeEmail string    `gorm:"type:varchar(255);not null;index:idx_leave_requests_email"`

	FromDate  time.Time `gorm:"type:date;not null;index:idx_leave_requests_from"`
	ToDate    time.Time `gorm:"type:date;not null"`
	Days      int       `gorm:"type:int;not null;default:0"`
	LeaveType string    `gorm:"column:type;type:varchar(30)"`
	Reason    string    `gorm:"type:text"`

	Status string `gorm:"type:varchar(20);not null;default:'pending';index:idx_leave_requests_status"`

	// Snapshot captured at submission time, not recomputed afterwards.
	MonthlyQuota         int `gorm:"type:int;not null;default:0"`
	LeavesTakenThisMonth int `gorm:"type:int;not null;default:0"`

	CreatedAt time.Time
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}
