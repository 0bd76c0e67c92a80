package logger

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const RequestIDKey = "X-Request-ID"

// FromContext returns the global logger tagged with the request id of
// the current Echo request.
func FromContext(c echo.Context) *zap.Logger {
	reqID, ok := c.Get(RequestIDKey).(string)
	if !ok {
		reqID = "unknown"
	}
	return GetLogger().With(zap.String("request_id", reqID))
}
