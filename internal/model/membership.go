package model

import "time"

const (
	RoleOwner = "owner"
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Membership associates a user with a team. At most one row exists per
// (user, team) pair; adding the same pair again replaces the role and
// resets joined_at.
type Membership struct {
	UserID   uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	TeamID   uint      `gorm:"primaryKey;autoIncrement:false" json:"team_id"`
	Role     string    `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`
}

// TableName keeps the historical join-table name
func (Membership) TableName() string {
	return "user_teams"
}
