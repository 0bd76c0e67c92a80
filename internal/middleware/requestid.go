package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"teamadmin-service/pkg/logger"
)

// RequestIDMiddleware assigns a unique request ID to each request and
// propagates it on the response headers.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(logger.RequestIDKey)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(logger.RequestIDKey, requestID)
		c.Response().Header().Set(logger.RequestIDKey, requestID)
		return next(c)
	}
}
