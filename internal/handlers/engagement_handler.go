package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/snackreel/backend/internal/services"
)

// EngagementHandler handles the toggleable relations (like, save, follow)
// and the share increment
type EngagementHandler struct {
	engagement *services.EngagementService
}

// NewEngagementHandler creates a new EngagementHandler
func NewEngagementHandler(engagement *services.EngagementService) *EngagementHandler {
	return &EngagementHandler{engagement: engagement}
}

// RegisterEngagementRoutes registers engagement-related routes
func (h *EngagementHandler) RegisterEngagementRoutes(g *echo.Group) {
	g.POST("/foods/:food_id/like", h.ToggleLike)
	g.POST("/foods/:food_id/save", h.ToggleSave)
	g.POST("/foods/:food_id/share", h.Share)
	g.POST("/partners/:id/follow", h.ToggleFollow)
}

// ToggleLike flips the current user's like on a food item
func (h *EngagementHandler) ToggleLike(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	foodID := c.Param("food_id")

	active, err := h.engagement.ToggleLike(c.Request().Context(), userID, foodID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Food not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"active": active}})
}

// ToggleSave flips the current user's bookmark on a food item
func (h *EngagementHandler) ToggleSave(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	foodID := c.Param("food_id")

	active, err := h.engagement.ToggleSave(c.Request().Context(), userID, foodID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Food not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"active": active}})
}

// Share increments a food item's share count
func (h *EngagementHandler) Share(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	foodID := c.Param("food_id")

	count, err := h.engagement.IncrementShare(c.Request().Context(), foodID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Food not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"share_count": count}})
}

// ToggleFollow flips the current user's follow on a food partner
func (h *EngagementHandler) ToggleFollow(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	partnerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid food partner ID")
	}

	active, err := h.engagement.ToggleFollow(c.Request().Context(), userID, uint(partnerID))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Food partner not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"active": active}})
}
