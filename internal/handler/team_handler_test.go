package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"teamadmin-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamCreate(t *testing.T) {
	s := newTestStore(t)
	h := NewTeamHandler(s)

	c, rec := newJSONContext(http.MethodPost, "/teams",
		`{"name":"Design Team","description":"does design","plan":"premium","email":"design@example.com"}`)
	require.NoError(t, h.Create(c))
	requireStatus(t, rec, http.StatusOK)

	var resp struct {
		ID      uint   `json:"id"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Team created successfully", resp.Message)
}

func TestTeamCreateValidation(t *testing.T) {
	s := newTestStore(t)
	h := NewTeamHandler(s)

	c, rec := newJSONContext(http.MethodPost, "/teams", `{"plan":"premium"}`)
	require.NoError(t, h.Create(c))
	requireStatus(t, rec, http.StatusBadRequest)

	c, rec = newJSONContext(http.MethodPost, "/teams", `{"name":"Bad Plan","plan":"gold"}`)
	require.NoError(t, h.Create(c))
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestTeamGetNotFound(t *testing.T) {
	s := newTestStore(t)
	h := NewTeamHandler(s)

	c, rec := newJSONContext(http.MethodGet, "/teams/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")
	require.NoError(t, h.Get(c))
	requireStatus(t, rec, http.StatusNotFound)
}

func TestTeamGetIncludesMembers(t *testing.T) {
	s := newTestStore(t)
	h := NewTeamHandler(s)
	team := makeTeam(t, s, "Staffed")
	user := makeUser(t, s, "Member", "member@example.com")
	require.NoError(t, s.AddMember(team.ID, user.ID, model.RoleOwner))

	c, rec := newJSONContext(http.MethodGet, "/teams/1", "")
	c.SetParamNames("id")
	c.SetParamValues(uintString(team.ID))
	require.NoError(t, h.Get(c))
	requireStatus(t, rec, http.StatusOK)

	var resp struct {
		Name    string `json:"name"`
		Members []struct {
			Name string `json:"name"`
			Role string `json:"role"`
		} `json:"members"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Staffed", resp.Name)
	require.Len(t, resp.Members, 1)
	assert.Equal(t, model.RoleOwner, resp.Members[0].Role)
}

func TestTeamUpdateAbsentIDReportsZeroChanges(t *testing.T) {
	s := newTestStore(t)
	h := NewTeamHandler(s)

	c, rec := newJSONContext(http.MethodPut, "/teams/42", `{"name":"Ghost"}`)
	c.SetParamNames("id")
	c.SetParamValues("42")
	require.NoError(t, h.Update(c))
	requireStatus(t, rec, http.StatusOK)

	var resp struct {
		Changes int64 `json:"changes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, 0, resp.Changes)
}

func TestTeamDelete(t *testing.T) {
	s := newTestStore(t)
	h := NewTeamHandler(s)
	team := makeTeam(t, s, "Doomed")

	c, rec := newJSONContext(http.MethodDelete, "/teams/1", "")
	c.SetParamNames("id")
	c.SetParamValues(uintString(team.ID))
	require.NoError(t, h.Delete(c))
	requireStatus(t, rec, http.StatusOK)

	var resp struct {
		Changes int64 `json:"changes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, 1, resp.Changes)
}

func TestTeamListIncludesCounts(t *testing.T) {
	s := newTestStore(t)
	h := NewTeamHandler(s)
	team := makeTeam(t, s, "Counted")
	user := makeUser(t, s, "Member", "member@example.com")
	require.NoError(t, s.AddMember(team.ID, user.ID, model.RoleAdmin))

	c, rec := newJSONContext(http.MethodGet, "/teams", "")
	require.NoError(t, h.List(c))
	requireStatus(t, rec, http.StatusOK)

	var teams []struct {
		Name        string `json:"name"`
		MemberCount int    `json:"member_count"`
		AdminCount  int    `json:"admin_count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &teams))
	require.Len(t, teams, 1)
	assert.Equal(t, 1, teams[0].MemberCount)
	assert.Equal(t, 1, teams[0].AdminCount)
}
