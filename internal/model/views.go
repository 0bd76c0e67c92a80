package model

import "time"

// TeamWithCounts is the list-view row for a team with derived member
// counts per role.
type TeamWithCounts struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Plan        string    `json:"plan"`
	Status      string    `json:"status"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	MemberCount int       `json:"member_count"`
	OwnerCount  int       `json:"owner_count"`
	AdminCount  int       `json:"admin_count"`
	UserCount   int       `json:"user_count"`
}

// TeamMember is a user joined with their membership row for one team.
type TeamMember struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Reference        string    `json:"reference"`
	Status           string    `json:"status"`
	SubscriptionType string    `json:"subscription_type"`
	AmountPaid       float64   `json:"amount_paid"`
	IssueDate        string    `json:"issue_date"`
	ExpiryDate       string    `json:"expiry_date"`
	CreatedAt        time.Time `json:"created_at"`
	Role             string    `json:"role"`
	JoinedAt         time.Time `json:"joined_at"`
}

// TeamWithMembers is the detail view for a single team.
type TeamWithMembers struct {
	Team
	Members []TeamMember `json:"members"`
}

// UserWithTeams is the list-view row for a user with the deduplicated
// team names and role values across their memberships.
type UserWithTeams struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Reference        string    `json:"reference"`
	Status           string    `json:"status"`
	SubscriptionType string    `json:"subscription_type"`
	AmountPaid       float64   `json:"amount_paid"`
	IssueDate        string    `json:"issue_date"`
	ExpiryDate       string    `json:"expiry_date"`
	CreatedAt        time.Time `json:"created_at"`
	TeamNames        string    `json:"team_names"`
	Roles            string    `json:"roles"`
}

// Stats is the single aggregate record served by /stats.
type Stats struct {
	TotalUsers     int     `json:"total_users"`
	TotalTeams     int     `json:"total_teams"`
	ActiveUsers    int     `json:"active_users"`
	InactiveUsers  int     `json:"inactive_users"`
	PremiumTeams   int     `json:"premium_teams"`
	FreeTeams      int     `json:"free_teams"`
	PaidUsers      int     `json:"paid_users"`
	FreeUsers      int     `json:"free_users"`
	TotalRevenue   float64 `json:"total_revenue"`
	TotalOwners    int     `json:"total_owners"`
	TotalAdmins    int     `json:"total_admins"`
	TotalTeamUsers int     `json:"total_team_users"`
}

// ActivityEvent is one entry of the merged recent-activity feed. The
// timestamp is kept as the stored text value because SQLite loses the
// declared column type across the UNION that builds the feed.
type ActivityEvent struct {
	Type      string `json:"type"`
	Name      string `json:"name"`
	Timestamp string `json:"timestamp"`
}
