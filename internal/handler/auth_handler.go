package handler

import (
	"crypto/subtle"
	"net/http"

	"teamadmin-service/pkg/config"
	"teamadmin-service/pkg/logger"
	"teamadmin-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthHandler checks the fixed admin credential pair. No token or
// session is issued; the client keeps the returned user record.
type AuthHandler struct {
	auth config.AuthConfig
}

func NewAuthHandler(auth config.AuthConfig) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /login
func (h *AuthHandler) Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.LoginCounter.Inc()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(h.auth.AdminEmail))
	passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.auth.AdminPassword))
	if emailOK&passwordOK != 1 {
		log.Warn("Invalid admin credentials", zap.String("email", req.Email))
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"success": false,
			"message": "Invalid credentials",
		})
	}

	log.Info("Admin logged in", zap.String("email", req.Email))
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Login successful",
		"user": echo.Map{
			"id":    1,
			"email": h.auth.AdminEmail,
			"name":  h.auth.AdminName,
			"role":  "admin",
		},
	})
}
