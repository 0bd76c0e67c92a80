package handler

import (
	"net/http"

	"teamadmin-service/internal/model"
	"teamadmin-service/internal/store"
	"teamadmin-service/pkg/logger"
	"teamadmin-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// TeamHandler serves the /teams endpoints.
type TeamHandler struct {
	store *store.Store
}

func NewTeamHandler(s *store.Store) *TeamHandler {
	return &TeamHandler{store: s}
}

// List handles GET /teams
func (h *TeamHandler) List(c echo.Context) error {
	teams, err := h.store.ListTeams()
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, teams)
}

// Get handles GET /teams/:id
func (h *TeamHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid team ID"})
	}

	team, err := h.store.GetTeam(id)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, team)
}

// Create handles POST /teams
func (h *TeamHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var team model.Team
	if err := c.Bind(&team); err != nil {
		log.Error("Failed to parse team creation request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := team.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if err := h.store.CreateTeam(&team); err != nil {
		return storeError(c, err)
	}

	prometheus.TeamCreateCounter.Inc()
	log.Info("Team created", zap.Uint("id", team.ID), zap.String("name", team.Name))
	return c.JSON(http.StatusOK, echo.Map{
		"id":      team.ID,
		"message": "Team created successfully",
	})
}

// Update handles PUT /teams/:id
func (h *TeamHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid team ID"})
	}

	var team model.Team
	if err := c.Bind(&team); err != nil {
		log.Error("Failed to parse team update request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := team.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	changes, err := h.store.UpdateTeam(id, &team)
	if err != nil {
		return storeError(c, err)
	}

	log.Info("Team updated", zap.Uint("id", id), zap.Int64("changes", changes))
	return c.JSON(http.StatusOK, echo.Map{
		"changes": changes,
		"message": "Team updated successfully",
	})
}

// Delete handles DELETE /teams/:id
func (h *TeamHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid team ID"})
	}

	changes, err := h.store.DeleteTeam(id)
	if err != nil {
		return storeError(c, err)
	}

	log.Info("Team deleted", zap.Uint("id", id), zap.Int64("changes", changes))
	return c.JSON(http.StatusOK, echo.Map{
		"changes": changes,
		"message": "Team deleted successfully",
	})
}
