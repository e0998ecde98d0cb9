package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

type Employee struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	EmpID       string     `gorm:"column:emp_id;uniqueIndex:uq_employee_emp_id" json:"empId"`
	Name        string     `gorm:"not null" json:"name"`
	Email       string     `gorm:"not null;uniqueIndex:uq_employee_email" json:"email"`
	Designation string     `json:"designation"`
	JoinDate    *time.Time `gorm:"column:join_date;type:date" json:"joinDate,omitempty"`
	Status      string     `gorm:"default:Active" json:"status"`
	// Password holds the bcrypt hash, never plaintext.
	Password  string    `gorm:"column:password" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Employee) TableName() string {
	return "employees"
}
