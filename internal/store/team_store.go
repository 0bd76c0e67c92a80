package store

import (
	"errors"

	"teamadmin-service/internal/model"

	"gorm.io/gorm"
)

// CreateTeam inserts a new team and fills in its generated id.
func (s *Store) CreateTeam(team *model.Team) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	db, err := s.handle()
	if err != nil {
		return err
	}
	return db.Create(team).Error
}

// GetTeam retrieves a team with its members, ordered owner first, then
// admin, then user, then any other role value, ties broken by name.
func (s *Store) GetTeam(id uint) (*model.TeamWithMembers, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	var team model.Team
	if err := db.First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	members := []model.TeamMember{}
	err = db.Raw(`
		SELECT u.id, u.name, u.email, u.reference, u.status, u.subscription_type,
		       u.amount_paid, u.issue_date, u.expiry_date, u.created_at,
		       ut.role, ut.joined_at
		FROM users u
		JOIN user_teams ut ON u.id = ut.user_id
		WHERE ut.team_id = ?
		ORDER BY
			CASE ut.role
				WHEN 'owner' THEN 1
				WHEN 'admin' THEN 2
				WHEN 'user' THEN 3
				ELSE 4
			END,
			u.name`, id).Scan(&members).Error
	if err != nil {
		return nil, err
	}

	return &model.TeamWithMembers{Team: team, Members: members}, nil
}

// UpdateTeam overwrites all mutable team columns and returns the number
// of rows changed (0 when the id does not exist).
func (s *Store) UpdateTeam(id uint, team *model.Team) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	db, err := s.handle()
	if err != nil {
		return 0, err
	}

	res := db.Model(&model.Team{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        team.Name,
		"description": team.Description,
		"plan":        team.Plan,
		"status":      team.Status,
		"email":       team.Email,
	})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// DeleteTeam removes a team and all memberships referencing it in a
// single transaction, returning the team-row change count.
func (s *Store) DeleteTeam(id uint) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	db, err := s.handle()
	if err != nil {
		return 0, err
	}

	var changes int64
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", id).Delete(&model.Membership{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Team{}, id)
		if res.Error != nil {
			return res.Error
		}
		changes = res.RowsAffected
		return nil
	})
	return changes, err
}

// ListTeams returns all teams, newest first, with derived member counts
// per role.
func (s *Store) ListTeams() ([]model.TeamWithCounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	teams := []model.TeamWithCounts{}
	err = db.Raw(`
		SELECT t.id, t.name, t.description, t.plan, t.status, t.email, t.created_at,
		       COUNT(DISTINCT ut.user_id) AS member_count,
		       COUNT(CASE WHEN ut.role = 'owner' THEN 1 END) AS owner_count,
		       COUNT(CASE WHEN ut.role = 'admin' THEN 1 END) AS admin_count,
		       COUNT(CASE WHEN ut.role = 'user' THEN 1 END) AS user_count
		FROM teams t
		LEFT JOIN user_teams ut ON t.id = ut.team_id
		GROUP BY t.id
		ORDER BY t.created_at DESC, t.id DESC`).Scan(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}
