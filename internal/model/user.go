package model

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"

	SubscriptionFree = "free"
	SubscriptionPaid = "paid"
)

// User represents a managed subscription user stored in the database
type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"type:varchar(150);not null" json:"name" validate:"required,max=150"`
	Email            string    `gorm:"type:varchar(200);uniqueIndex;not null" json:"email" validate:"required,email,max=200"`
	Reference        string    `gorm:"type:varchar(100)" json:"reference" validate:"max=100"`
	Status           string    `gorm:"type:varchar(20);default:'active'" json:"status" validate:"omitempty,oneof=active inactive"`
	SubscriptionType string    `gorm:"type:varchar(20);default:'free'" json:"subscription_type" validate:"omitempty,oneof=free paid"`
	AmountPaid       float64   `gorm:"type:decimal(10,2);default:0" json:"amount_paid" validate:"gte=0"`
	IssueDate        string    `gorm:"type:date" json:"issue_date"`
	ExpiryDate       string    `gorm:"type:date" json:"expiry_date"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Validate checks the user fields against their validation tags
func (u *User) Validate() error {
	return validate.Struct(u)
}

var validate = validator.New()
