package store

import (
	"errors"

	"teamadmin-service/internal/model"

	"gorm.io/gorm"
)

// CreateUser inserts a new user and fills in its generated id. Email
// uniqueness is enforced by the unique index, so a duplicate insert
// surfaces as ErrEmailTaken.
func (s *Store) CreateUser(user *model.User) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	db, err := s.handle()
	if err != nil {
		return err
	}

	if err := db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

// GetUser retrieves a single user by id.
func (s *Store) GetUser(id uint) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	var user model.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUser overwrites all mutable user columns and returns the number
// of rows changed (0 when the id does not exist). The email collision
// check is an explicit pre-query against other user ids, mirroring the
// update-only uniqueness check of the admin panel.
func (s *Store) UpdateUser(id uint, user *model.User) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	db, err := s.handle()
	if err != nil {
		return 0, err
	}

	var existing model.User
	row := db.Select("id").
		Where("email = ? AND id != ?", user.Email, id).
		Limit(1).
		Find(&existing)
	if row.Error != nil {
		return 0, row.Error
	}
	if row.RowsAffected > 0 {
		return 0, ErrEmailTaken
	}

	res := db.Model(&model.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":              user.Name,
		"email":             user.Email,
		"reference":         user.Reference,
		"status":            user.Status,
		"subscription_type": user.SubscriptionType,
		"amount_paid":       user.AmountPaid,
		"issue_date":        user.IssueDate,
		"expiry_date":       user.ExpiryDate,
	})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return 0, ErrEmailTaken
		}
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// DeleteUser removes a user and all memberships referencing it in a
// single transaction, returning the user-row change count.
func (s *Store) DeleteUser(id uint) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	db, err := s.handle()
	if err != nil {
		return 0, err
	}

	var changes int64
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&model.Membership{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		changes = res.RowsAffected
		return nil
	})
	return changes, err
}

// ListUsers returns all users, newest first, with their deduplicated
// team names and role values aggregated across memberships.
func (s *Store) ListUsers() ([]model.UserWithTeams, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	users := []model.UserWithTeams{}
	err = db.Raw(`
		SELECT u.id, u.name, u.email, u.reference, u.status, u.subscription_type,
		       u.amount_paid, u.issue_date, u.expiry_date, u.created_at,
		       COALESCE(GROUP_CONCAT(DISTINCT t.name), '') AS team_names,
		       COALESCE(GROUP_CONCAT(DISTINCT ut.role), '') AS roles
		FROM users u
		LEFT JOIN user_teams ut ON u.id = ut.user_id
		LEFT JOIN teams t ON ut.team_id = t.id
		GROUP BY u.id
		ORDER BY u.created_at DESC, u.id DESC`).Scan(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
