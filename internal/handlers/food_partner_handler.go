package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/snackreel/backend/internal/repositories"
)

// FoodPartnerHandler handles food partner profile HTTP requests
type FoodPartnerHandler struct {
	partnerRepository repositories.FoodPartnerRepository
	foodRepository    repositories.FoodRepository
	followRepository  repositories.FollowRepository
}

// NewFoodPartnerHandler creates a new FoodPartnerHandler
func NewFoodPartnerHandler(
	partnerRepo repositories.FoodPartnerRepository,
	foodRepo repositories.FoodRepository,
	followRepo repositories.FollowRepository,
) *FoodPartnerHandler {
	return &FoodPartnerHandler{
		partnerRepository: partnerRepo,
		foodRepository:    foodRepo,
		followRepository:  followRepo,
	}
}

// RegisterUserPartnerRoutes registers the consumer-facing partner routes
func (h *FoodPartnerHandler) RegisterUserPartnerRoutes(g *echo.Group) {
	g.GET("/partners/:id", h.GetPartnerByID)
}

// RegisterPartnerProfileRoutes registers the partner-facing profile routes
func (h *FoodPartnerHandler) RegisterPartnerProfileRoutes(g *echo.Group) {
	g.GET("/partner/profile", h.GetOwnProfile)
}

// GetPartnerByID returns a partner's public profile with its food items
// and whether the current user follows it
func (h *FoodPartnerHandler) GetPartnerByID(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	partnerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid food partner ID")
	}

	partner, err := h.partnerRepository.GetPartnerByID(uint(partnerID))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Food partner not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	foods, err := h.foodRepository.GetFoodsByPartnerID(c.Request().Context(), partner.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	isFollowing, err := h.followRepository.IsFollowing(userID, partner.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"food_partner": partner,
			"foods":        foods,
			"is_following": isFollowing,
		},
	})
}

// GetOwnProfile returns the authenticated partner's profile with its food
// items and follower list
func (h *FoodPartnerHandler) GetOwnProfile(c echo.Context) error {
	partnerID := getPartnerIDFromContext(c)
	if partnerID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Food partner not authenticated")
	}

	partner, err := h.partnerRepository.GetPartnerByID(partnerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Food partner not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	foods, err := h.foodRepository.GetFoodsByPartnerID(c.Request().Context(), partnerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	followers, err := h.followRepository.GetFollowers(partnerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	followerList := make([]echo.Map, len(followers))
	for i, f := range followers {
		followerList[i] = echo.Map{"id": f.ID, "full_name": f.FullName}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"food_partner": partner,
			"foods":        foods,
			"followers":    followerList,
		},
	})
}
