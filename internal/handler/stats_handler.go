package handler

import (
	"net/http"
	"strconv"

	"teamadmin-service/internal/store"

	"github.com/labstack/echo/v4"
)

// StatsHandler serves the dashboard aggregates.
type StatsHandler struct {
	store *store.Store
}

func NewStatsHandler(s *store.Store) *StatsHandler {
	return &StatsHandler{store: s}
}

// Stats handles GET /stats
func (h *StatsHandler) Stats(c echo.Context) error {
	stats, err := h.store.Stats()
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// RecentActivity handles GET /recent-activity
func (h *StatsHandler) RecentActivity(c echo.Context) error {
	limit := 10
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	events, err := h.store.RecentActivity(limit)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, events)
}
