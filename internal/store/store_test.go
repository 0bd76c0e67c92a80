package store

import (
	"os"
	"path/filepath"
	"testing"

	"teamadmin-service/internal/model"
	"teamadmin-service/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(&config.DatabaseConfig{
		Path:     filepath.Join(t.TempDir(), "test.db"),
		LogLevel: "silent",
		Seed:     false,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func makeUser(t *testing.T, s *Store, name, email string) *model.User {
	t.Helper()

	user := &model.User{
		Name:             name,
		Email:            email,
		Status:           model.StatusActive,
		SubscriptionType: model.SubscriptionFree,
	}
	require.NoError(t, s.CreateUser(user))
	require.NotZero(t, user.ID)
	return user
}

func makeTeam(t *testing.T, s *Store, name string) *model.Team {
	t.Helper()

	team := &model.Team{Name: name, Plan: model.PlanFree, Status: model.StatusActive}
	require.NoError(t, s.CreateTeam(team))
	require.NotZero(t, team.ID)
	return team
}

func TestOpenAndPing(t *testing.T) {
	s := newTestStore(t)
	assert.NoError(t, s.Ping())
}

func TestSeedRunsOnceAcrossReopen(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Path:     filepath.Join(t.TempDir(), "seeded.db"),
		LogLevel: "silent",
		Seed:     true,
	}

	s, err := Open(cfg)
	require.NoError(t, err)

	users, err := s.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 5)

	teams, err := s.ListTeams()
	require.NoError(t, err)
	assert.Len(t, teams, 4)

	// Reopening the same file must not duplicate the sample rows.
	require.NoError(t, s.Close())
	s, err = Open(cfg)
	require.NoError(t, err)
	defer s.Close()

	users, err = s.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 5)
}

func TestSnapshotCreatesFile(t *testing.T) {
	s := newTestStore(t)
	makeUser(t, s, "Snapshot User", "snapshot@example.com")

	dir := t.TempDir()
	path, err := s.Snapshot(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.Regexp(t, `^teamadmin-backup-\d+\.db$`, filepath.Base(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// The live store stays usable after a snapshot.
	assert.NoError(t, s.Ping())
}

func TestRestoreRoundTrip(t *testing.T) {
	s := newTestStore(t)
	user := makeUser(t, s, "Keeper", "keeper@example.com")

	snapshot, err := s.Snapshot(t.TempDir())
	require.NoError(t, err)

	changes, err := s.DeleteUser(user.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, changes)
	_, err = s.GetUser(user.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Restore(snapshot))

	restored, err := s.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "keeper@example.com", restored.Email)
}

func TestRestoreFromCorruptFileLeavesStoreUnavailable(t *testing.T) {
	s := newTestStore(t)
	user := makeUser(t, s, "Survivor", "survivor@example.com")

	good, err := s.Snapshot(t.TempDir())
	require.NoError(t, err)

	bad := filepath.Join(t.TempDir(), "garbage.db")
	require.NoError(t, os.WriteFile(bad, []byte("this is not a database"), 0o644))

	require.Error(t, s.Restore(bad))

	// Every operation refuses until a later restore succeeds.
	_, err = s.ListUsers()
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, s.Ping(), ErrUnavailable)
	_, err = s.Snapshot(t.TempDir())
	assert.ErrorIs(t, err, ErrUnavailable)

	require.NoError(t, s.Restore(good))

	restored, err := s.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Survivor", restored.Name)
}

func TestRestoreDoesNotReseed(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Path:     filepath.Join(t.TempDir(), "seeded.db"),
		LogLevel: "silent",
		Seed:     true,
	}
	s, err := Open(cfg)
	require.NoError(t, err)
	defer s.Close()

	// Snapshot the seeded state, wipe the users, restore. The restored
	// file still has rows, so the seed guard must leave it alone.
	snapshot, err := s.Snapshot(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Restore(snapshot))

	users, err := s.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 5)
}
