package handler

import (
	"errors"
	"net/http"
	"strconv"

	"teamadmin-service/internal/store"
	"teamadmin-service/pkg/logger"
	"teamadmin-service/prometheus"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var validate = validator.New()

// parseID parses a numeric path parameter.
func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// storeError maps store-layer errors onto HTTP responses: 503 while the
// store is closed for a restore, 404 for missing ids, 400 for email
// conflicts, and a generic 500 carrying the message for everything else.
func storeError(c echo.Context, err error) error {
	log := logger.FromContext(c)

	switch {
	case errors.Is(err, store.ErrUnavailable):
		log.Warn("Store unavailable", zap.Error(err))
		prometheus.RecordStoreError("unavailable")
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "database is unavailable, try again shortly"})
	case errors.Is(err, store.ErrNotFound):
		prometheus.RecordStoreError("not_found")
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, store.ErrEmailTaken):
		prometheus.RecordStoreError("conflict")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		log.Error("Store operation failed", zap.Error(err))
		prometheus.RecordStoreError("internal")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
}
