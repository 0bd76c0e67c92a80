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

// MemberHandler serves the team membership endpoints.
type MemberHandler struct {
	store *store.Store
}

func NewMemberHandler(s *store.Store) *MemberHandler {
	return &MemberHandler{store: s}
}

type addMemberRequest struct {
	UserID uint   `json:"userId"`
	Role   string `json:"role" validate:"omitempty,oneof=owner admin user"`
}

type setRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=owner admin user"`
}

// Add handles POST /teams/:teamId/users. Adding a pair that already
// exists replaces its role and resets joined_at.
func (h *MemberHandler) Add(c echo.Context) error {
	log := logger.FromContext(c)

	teamID, err := parseID(c, "teamId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid team ID"})
	}

	var req addMemberRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse add-member request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if req.UserID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "userId is required"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if req.Role == "" {
		req.Role = model.RoleUser
	}

	if err := h.store.AddMember(teamID, req.UserID, req.Role); err != nil {
		return storeError(c, err)
	}

	prometheus.MembershipOpCounter.WithLabelValues("add").Inc()
	log.Info("User added to team",
		zap.Uint("team_id", teamID),
		zap.Uint("user_id", req.UserID),
		zap.String("role", req.Role))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "User added to team successfully",
	})
}

// Remove handles DELETE /teams/:teamId/users/:userId. Removing an
// absent pair succeeds with a zero change count.
func (h *MemberHandler) Remove(c echo.Context) error {
	log := logger.FromContext(c)

	teamID, err := parseID(c, "teamId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid team ID"})
	}
	userID, err := parseID(c, "userId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user ID"})
	}

	changes, err := h.store.RemoveMember(teamID, userID)
	if err != nil {
		return storeError(c, err)
	}

	prometheus.MembershipOpCounter.WithLabelValues("remove").Inc()
	log.Info("User removed from team",
		zap.Uint("team_id", teamID),
		zap.Uint("user_id", userID),
		zap.Int64("changes", changes))
	return c.JSON(http.StatusOK, echo.Map{
		"changes": changes,
		"message": "User removed from team successfully",
	})
}

// SetRole handles PUT /teams/:teamId/users/:userId/role. A change count
// of zero tells the caller the pair does not exist.
func (h *MemberHandler) SetRole(c echo.Context) error {
	log := logger.FromContext(c)

	teamID, err := parseID(c, "teamId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid team ID"})
	}
	userID, err := parseID(c, "userId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user ID"})
	}

	var req setRoleRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse set-role request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	changes, err := h.store.SetRole(teamID, userID, req.Role)
	if err != nil {
		return storeError(c, err)
	}

	prometheus.MembershipOpCounter.WithLabelValues("set_role").Inc()
	log.Info("Member role updated",
		zap.Uint("team_id", teamID),
		zap.Uint("user_id", userID),
		zap.String("role", req.Role),
		zap.Int64("changes", changes))
	return c.JSON(http.StatusOK, echo.Map{
		"changes": changes,
		"message": "User role updated successfully",
	})
}
