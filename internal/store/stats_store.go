package store

import "teamadmin-service/internal/model"

// Stats computes the aggregate dashboard record in one round trip.
func (s *Store) Stats() (*model.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	var stats model.Stats
	err = db.Raw(`
		SELECT
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM teams) AS total_teams,
			(SELECT COUNT(*) FROM users WHERE status = 'active') AS active_users,
			(SELECT COUNT(*) FROM users WHERE status = 'inactive') AS inactive_users,
			(SELECT COUNT(*) FROM teams WHERE plan = 'premium') AS premium_teams,
			(SELECT COUNT(*) FROM teams WHERE plan = 'free') AS free_teams,
			(SELECT COUNT(*) FROM users WHERE subscription_type = 'paid') AS paid_users,
			(SELECT COUNT(*) FROM users WHERE subscription_type = 'free') AS free_users,
			(SELECT COALESCE(SUM(amount_paid), 0) FROM users WHERE subscription_type = 'paid') AS total_revenue,
			(SELECT COUNT(*) FROM user_teams WHERE role = 'owner') AS total_owners,
			(SELECT COUNT(*) FROM user_teams WHERE role = 'admin') AS total_admins,
			(SELECT COUNT(*) FROM user_teams WHERE role = 'user') AS total_team_users`).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// RecentActivity merges team and user creation events into one feed,
// newest first, truncated to limit (10 when limit is not positive).
func (s *Store) RecentActivity(limit int) ([]model.ActivityEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 10
	}

	events := []model.ActivityEvent{}
	err = db.Raw(`
		SELECT 'team_created' AS type, name, CAST(created_at AS TEXT) AS timestamp
		FROM teams
		UNION ALL
		SELECT 'user_added' AS type, name, CAST(created_at AS TEXT) AS timestamp
		FROM users
		ORDER BY timestamp DESC
		LIMIT ?`, limit).Scan(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
