package model

import "time"

const (
	PlanFree    = "free"
	PlanPremium = "premium"
)

// Team represents a team stored in the database
type Team struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(150);not null" json:"name" validate:"required,max=150"`
	Description string    `gorm:"type:text" json:"description"`
	Plan        string    `gorm:"type:varchar(20);default:'free'" json:"plan" validate:"omitempty,oneof=free premium"`
	Status      string    `gorm:"type:varchar(20);default:'active'" json:"status" validate:"omitempty,oneof=active inactive"`
	Email       string    `gorm:"type:varchar(200)" json:"email" validate:"omitempty,email,max=200"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Validate checks the team fields against their validation tags
func (t *Team) Validate() error {
	return validate.Struct(t)
}
