package store

import (
	"time"

	"teamadmin-service/internal/model"

	"gorm.io/gorm/clause"
)

// AddMember upserts the membership row for (userID, teamID). When the
// pair already exists its role and joined_at are overwritten; no history
// is kept.
func (s *Store) AddMember(teamID, userID uint, role string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	db, err := s.handle()
	if err != nil {
		return err
	}

	membership := model.Membership{
		UserID:   userID,
		TeamID:   teamID,
		Role:     role,
		JoinedAt: time.Now(),
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "team_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"role":      membership.Role,
			"joined_at": membership.JoinedAt,
		}),
	}).Create(&membership).Error
}

// RemoveMember deletes the membership row if present and returns the
// change count; removing an absent pair is a zero-effect success.
func (s *Store) RemoveMember(teamID, userID uint) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	db, err := s.handle()
	if err != nil {
		return 0, err
	}

	res := db.Where("user_id = ? AND team_id = ?", userID, teamID).Delete(&model.Membership{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// SetRole updates the role on an existing membership. A change count of
// zero means the pair does not exist; callers decide whether that no-op
// matters.
func (s *Store) SetRole(teamID, userID uint, role string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	db, err := s.handle()
	if err != nil {
		return 0, err
	}

	res := db.Model(&model.Membership{}).
		Where("user_id = ? AND team_id = ?", userID, teamID).
		Update("role", role)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
