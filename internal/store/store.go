package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"teamadmin-service/internal/model"
	"teamadmin-service/pkg/config"
	"teamadmin-service/pkg/logger"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	// ErrUnavailable is returned while the backing file is being swapped
	// during a restore, or after a restore failed to reopen the store.
	ErrUnavailable = errors.New("store is unavailable")

	// ErrEmailTaken is returned when a user create or update collides
	// with another user's email address.
	ErrEmailTaken = errors.New("email already exists for another user")

	// ErrNotFound is returned when no row matches the requested id.
	ErrNotFound = errors.New("record not found")
)

// Store owns the SQLite handle and the path of its backing file. All
// request handlers share one Store; the RWMutex makes the restore swap
// (close, overwrite file, reopen) a critical section while normal
// operations proceed concurrently under read locks.
type Store struct {
	mu       sync.RWMutex
	db       *gorm.DB
	path     string
	seed     bool
	logLevel gormlogger.LogLevel
}

// Open opens (creating if necessary) the SQLite store configured in cfg,
// runs the idempotent schema migration and seeds sample data when the
// database is empty.
func Open(cfg *config.DatabaseConfig) (*Store, error) {
	s := &Store{
		path:     cfg.Path,
		seed:     cfg.Seed,
		logLevel: parseLogLevel(cfg.LogLevel),
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	if err := s.openLocked(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the location of the backing database file.
func (s *Store) Path() string {
	return s.path
}

// Ping verifies the database connection is alive.
func (s *Store) Ping() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return ErrUnavailable
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeLocked()
}

// Snapshot copies the backing file into dir under a timestamped name and
// returns the snapshot path. The live store stays open throughout; the
// read lock only keeps a concurrent restore from swapping the file
// mid-copy.
func (s *Store) Snapshot(dir string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return "", ErrUnavailable
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}

	dst := filepath.Join(dir, fmt.Sprintf("teamadmin-backup-%d.db", time.Now().UnixMilli()))
	if err := copyFile(s.path, dst); err != nil {
		return "", fmt.Errorf("copy database snapshot: %w", err)
	}
	return dst, nil
}

// Restore replaces the backing file with the database at src and reopens
// the store. It holds the write lock for the whole swap so concurrent
// operations either run against the old handle or the new one, never
// against a half-written file. If the reopen fails the store is left
// closed and every operation returns ErrUnavailable until a later
// restore succeeds.
func (s *Store) Restore(src string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.closeLocked(); err != nil {
		return fmt.Errorf("close store before restore: %w", err)
	}

	if err := copyFile(src, s.path); err != nil {
		return fmt.Errorf("overwrite database file: %w", err)
	}

	if err := s.openLocked(); err != nil {
		return fmt.Errorf("reopen store after restore: %w", err)
	}
	return nil
}

// handle returns the live gorm handle. Callers must hold the read lock.
func (s *Store) handle() (*gorm.DB, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}
	return s.db, nil
}

func (s *Store) closeLocked() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	s.db = nil
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) openLocked() error {
	db, err := gorm.Open(sqlite.Open(s.path), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(s.logLevel),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	start := time.Now()
	if err := db.AutoMigrate(&model.User{}, &model.Team{}, &model.Membership{}); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return fmt.Errorf("migrate database schema: %w", err)
	}
	logger.GetLogger().Info("Database migration completed",
		zap.String("path", s.path),
		zap.Duration("duration", time.Since(start)))

	s.db = db

	if s.seed {
		if err := s.seedLocked(); err != nil {
			return fmt.Errorf("seed sample data: %w", err)
		}
	}
	return nil
}

// seedLocked inserts the sample dataset, but only when the users table
// is still empty so that a restore never re-seeds on top of real data.
func (s *Store) seedLocked() error {
	var count int64
	if err := s.db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	users := []model.User{
		{Name: "John Doe", Email: "john@example.com", Reference: "REF001", Status: model.StatusActive, SubscriptionType: model.SubscriptionPaid, AmountPaid: 99.99, IssueDate: "2024-01-15", ExpiryDate: "2024-12-15"},
		{Name: "Jane Smith", Email: "jane@example.com", Reference: "REF002", Status: model.StatusActive, SubscriptionType: model.SubscriptionPaid, AmountPaid: 149.99, IssueDate: "2024-02-01", ExpiryDate: "2025-02-01"},
		{Name: "Bob Johnson", Email: "bob@example.com", Reference: "REF003", Status: model.StatusInactive, SubscriptionType: model.SubscriptionFree, AmountPaid: 0, IssueDate: "2024-01-10", ExpiryDate: "2024-02-10"},
		{Name: "Alice Brown", Email: "alice@example.com", Reference: "REF004", Status: model.StatusActive, SubscriptionType: model.SubscriptionPaid, AmountPaid: 199.99, IssueDate: "2024-03-01", ExpiryDate: "2025-03-01"},
		{Name: "Charlie Wilson", Email: "charlie@example.com", Reference: "REF005", Status: model.StatusActive, SubscriptionType: model.SubscriptionFree, AmountPaid: 0, IssueDate: "2024-01-20", ExpiryDate: "2024-04-20"},
	}
	if err := s.db.Create(&users).Error; err != nil {
		return err
	}

	teams := []model.Team{
		{Name: "Design Team Alpha", Description: "Main design team for marketing", Plan: model.PlanPremium, Status: model.StatusActive, Email: "design-alpha@company.com"},
		{Name: "Content Creators", Description: "Content creation team", Plan: model.PlanFree, Status: model.StatusActive, Email: "content@company.com"},
		{Name: "Social Media Team", Description: "Handles all social media accounts", Plan: model.PlanPremium, Status: model.StatusActive, Email: "social@company.com"},
		{Name: "Admin Team", Description: "Administrative team", Plan: model.PlanFree, Status: model.StatusActive, Email: "admin-team@company.com"},
	}
	if err := s.db.Create(&teams).Error; err != nil {
		return err
	}

	memberships := []model.Membership{
		{UserID: users[0].ID, TeamID: teams[0].ID, Role: model.RoleOwner},
		{UserID: users[0].ID, TeamID: teams[1].ID, Role: model.RoleAdmin},
		{UserID: users[1].ID, TeamID: teams[0].ID, Role: model.RoleAdmin},
		{UserID: users[1].ID, TeamID: teams[2].ID, Role: model.RoleOwner},
		{UserID: users[2].ID, TeamID: teams[0].ID, Role: model.RoleUser},
		{UserID: users[2].ID, TeamID: teams[1].ID, Role: model.RoleUser},
		{UserID: users[3].ID, TeamID: teams[2].ID, Role: model.RoleAdmin},
		{UserID: users[3].ID, TeamID: teams[3].ID, Role: model.RoleOwner},
		{UserID: users[4].ID, TeamID: teams[1].ID, Role: model.RoleUser},
		{UserID: users[4].ID, TeamID: teams[2].ID, Role: model.RoleUser},
	}
	if err := s.db.Create(&memberships).Error; err != nil {
		return err
	}

	logger.GetLogger().Info("Sample data inserted",
		zap.Int("users", len(users)),
		zap.Int("teams", len(teams)),
		zap.Int("memberships", len(memberships)))
	return nil
}

func parseLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "warn":
		return gormlogger.Warn
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
