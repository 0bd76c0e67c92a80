package store

import (
	"testing"

	"teamadmin-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	makeUser(t, s, "First", "dup@example.com")

	err := s.CreateUser(&model.User{Name: "Second", Email: "dup@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestGetUserNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetUser(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUser(t *testing.T) {
	s := newTestStore(t)
	user := makeUser(t, s, "Before", "before@example.com")

	changes, err := s.UpdateUser(user.ID, &model.User{
		Name:             "After",
		Email:            "after@example.com",
		Reference:        "REF-9",
		Status:           model.StatusInactive,
		SubscriptionType: model.SubscriptionPaid,
		AmountPaid:       42.50,
		IssueDate:        "2024-05-01",
		ExpiryDate:       "2025-05-01",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, changes)

	got, err := s.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Name)
	assert.Equal(t, "after@example.com", got.Email)
	assert.Equal(t, model.SubscriptionPaid, got.SubscriptionType)
	assert.Equal(t, 42.50, got.AmountPaid)
}

func TestUpdateUserAbsentIDReportsZeroChanges(t *testing.T) {
	s := newTestStore(t)

	changes, err := s.UpdateUser(9999, &model.User{Name: "Ghost", Email: "ghost@example.com"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, changes)
}

func TestUpdateUserEmailCollision(t *testing.T) {
	s := newTestStore(t)
	makeUser(t, s, "Holder", "held@example.com")
	other := makeUser(t, s, "Other", "other@example.com")

	_, err := s.UpdateUser(other.ID, &model.User{Name: "Other", Email: "held@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUpdateUserKeepingOwnEmail(t *testing.T) {
	s := newTestStore(t)
	user := makeUser(t, s, "Same", "same@example.com")

	changes, err := s.UpdateUser(user.ID, &model.User{Name: "Renamed", Email: "same@example.com"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, changes)
}

func TestDeleteUserCascadesMemberships(t *testing.T) {
	s := newTestStore(t)
	user := makeUser(t, s, "Member", "member@example.com")
	team := makeTeam(t, s, "Their Team")
	require.NoError(t, s.AddMember(team.ID, user.ID, model.RoleAdmin))

	changes, err := s.DeleteUser(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, changes)

	got, err := s.GetTeam(team.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Members)
}

func TestDeleteUserAbsentIDReportsZeroChanges(t *testing.T) {
	s := newTestStore(t)

	changes, err := s.DeleteUser(9999)
	require.NoError(t, err)
	assert.EqualValues(t, 0, changes)
}

func TestListUsersAggregatesTeams(t *testing.T) {
	s := newTestStore(t)
	user := makeUser(t, s, "Joiner", "joiner@example.com")
	loner := makeUser(t, s, "Loner", "loner@example.com")
	alpha := makeTeam(t, s, "Alpha")
	beta := makeTeam(t, s, "Beta")
	require.NoError(t, s.AddMember(alpha.ID, user.ID, model.RoleOwner))
	require.NoError(t, s.AddMember(beta.ID, user.ID, model.RoleUser))

	users, err := s.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)

	byID := map[uint]model.UserWithTeams{}
	for _, u := range users {
		byID[u.ID] = u
	}

	joined := byID[user.ID]
	assert.Contains(t, joined.TeamNames, "Alpha")
	assert.Contains(t, joined.TeamNames, "Beta")
	assert.Contains(t, joined.Roles, model.RoleOwner)

	// A user with no memberships aggregates to empty strings, not NULLs.
	assert.Equal(t, "", byID[loner.ID].TeamNames)
	assert.Equal(t, "", byID[loner.ID].Roles)
}
