package enquiry

import (
	"time"

	"github.com/google/uuid"
)

// Enquiry is a public contact-form submission routed to the back office.
type Enquiry struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `gorm:"column:phone_number" json:"phone_number"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Enquiry) TableName() string {
	return "enquiries"
}
