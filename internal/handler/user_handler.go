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

// UserHandler serves the /users endpoints.
type UserHandler struct {
	store *store.Store
}

func NewUserHandler(s *store.Store) *UserHandler {
	return &UserHandler{store: s}
}

// List handles GET /users
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.store.ListUsers()
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /users/:id
func (h *UserHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user ID"})
	}

	user, err := h.store.GetUser(id)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// Create handles POST /users
func (h *UserHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var user model.User
	if err := c.Bind(&user); err != nil {
		log.Error("Failed to parse user creation request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := user.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if err := h.store.CreateUser(&user); err != nil {
		return storeError(c, err)
	}

	prometheus.UserCreateCounter.Inc()
	log.Info("User created", zap.Uint("id", user.ID), zap.String("email", user.Email))
	return c.JSON(http.StatusOK, echo.Map{
		"id":      user.ID,
		"message": "User created successfully",
	})
}

// Update handles PUT /users/:id
func (h *UserHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user ID"})
	}

	var user model.User
	if err := c.Bind(&user); err != nil {
		log.Error("Failed to parse user update request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := user.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	changes, err := h.store.UpdateUser(id, &user)
	if err != nil {
		return storeError(c, err)
	}

	log.Info("User updated", zap.Uint("id", id), zap.Int64("changes", changes))
	return c.JSON(http.StatusOK, echo.Map{
		"changes": changes,
		"message": "User updated successfully",
	})
}

// Delete handles DELETE /users/:id
func (h *UserHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user ID"})
	}

	changes, err := h.store.DeleteUser(id)
	if err != nil {
		return storeError(c, err)
	}

	log.Info("User deleted", zap.Uint("id", id), zap.Int64("changes", changes))
	return c.JSON(http.StatusOK, echo.Map{
		"changes": changes,
		"message": "User deleted successfully",
	})
}
