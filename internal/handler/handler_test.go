package handler

import (
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"teamadmin-service/internal/model"
	"teamadmin-service/internal/store"
	"teamadmin-service/pkg/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.Open(&config.DatabaseConfig{
		Path:     filepath.Join(t.TempDir(), "test.db"),
		LogLevel: "silent",
		Seed:     false,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// newJSONContext builds an Echo context around a JSON request body and
// returns it with the recorder capturing the response.
func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func makeUser(t *testing.T, s *store.Store, name, email string) *model.User {
	t.Helper()

	user := &model.User{Name: name, Email: email, Status: model.StatusActive, SubscriptionType: model.SubscriptionFree}
	require.NoError(t, s.CreateUser(user))
	return user
}

func makeTeam(t *testing.T, s *store.Store, name string) *model.Team {
	t.Helper()

	team := &model.Team{Name: name, Plan: model.PlanFree, Status: model.StatusActive}
	require.NoError(t, s.CreateTeam(team))
	return team
}

func uintString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "unexpected status, body: %s", rec.Body.String())
}
