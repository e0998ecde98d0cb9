package auth

import (
	"time"

	"github.com/google/uuid"
)

// LoginActivity is an append-only audit record of login attempts.
type LoginActivity struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email   string    `gorm:"not null" json:"email"`
	Success bool      `json:"success"`
	// Reason is set on failures only ("no-user", "bad-pwd", "no-db").
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (LoginActivity) TableName() string {
	return "login_activities"
}
