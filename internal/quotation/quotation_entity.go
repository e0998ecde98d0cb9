package quotation

import (
	"time"

	"github.com/google/uuid"
)

// Quotation is a pricing request submitted from the public site.
type Quotation struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `gorm:"column:phone_number" json:"phone_number"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Quotation) TableName() string {
	return "quotations"
}
