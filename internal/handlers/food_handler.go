package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/snackreel/backend/internal/models"
	"github.com/snackreel/backend/internal/repositories"
)

// FoodHandler handles food item HTTP requests: the consumer feeds and the
// partner-side catalog management
type FoodHandler struct {
	foodRepository    repositories.FoodRepository
	partnerRepository repositories.FoodPartnerRepository
	likeRepository    repositories.LikeRepository
	saveRepository    repositories.SaveRepository
	followRepository  repositories.FollowRepository
	commentRepository repositories.CommentRepository
}

// NewFoodHandler creates a new FoodHandler
func NewFoodHandler(
	foodRepo repositories.FoodRepository,
	partnerRepo repositories.FoodPartnerRepository,
	likeRepo repositories.LikeRepository,
	saveRepo repositories.SaveRepository,
	followRepo repositories.FollowRepository,
	commentRepo repositories.CommentRepository,
) *FoodHandler {
	return &FoodHandler{
		foodRepository:    foodRepo,
		partnerRepository: partnerRepo,
		likeRepository:    likeRepo,
		saveRepository:    saveRepo,
		followRepository:  followRepo,
		commentRepository: commentRepo,
	}
}

// RegisterUserFoodRoutes registers the consumer-facing food routes
func (h *FoodHandler) RegisterUserFoodRoutes(g *echo.Group) {
	g.GET("/foods", h.GetFoods)
	g.GET("/foods/followed", h.GetFollowedFoods)
	g.GET("/foods/saved", h.GetSavedFoods)
}

// RegisterPartnerFoodRoutes registers the partner-facing food routes
func (h *FoodHandler) RegisterPartnerFoodRoutes(g *echo.Group) {
	g.POST("/partner/foods", h.CreateFood)
	g.PATCH("/partner/foods/:food_id", h.UpdateFood)
	g.DELETE("/partner/foods/:food_id", h.DeleteFood)
}

// EnrichedFood is a food item with the current user's engagement flags
type EnrichedFood struct {
	models.Food
	IsLiked     bool `json:"is_liked"`
	IsSaved     bool `json:"is_saved"`
	IsFollowing bool `json:"is_following"`
}

// enrich attaches is_liked/is_saved/is_following flags for the user
func (h *FoodHandler) enrich(userID uint, foods []models.Food) ([]EnrichedFood, error) {
	likedIDs, err := h.likeRepository.GetLikedFoodIDs(userID)
	if err != nil {
		return nil, err
	}
	savedIDs, err := h.saveRepository.GetSavedFoodIDs(userID)
	if err != nil {
		return nil, err
	}
	followedIDs, err := h.followRepository.GetFollowedPartnerIDs(userID)
	if err != nil {
		return nil, err
	}

	likedMap := make(map[string]bool, len(likedIDs))
	for _, id := range likedIDs {
		likedMap[id] = true
	}
	savedMap := make(map[string]bool, len(savedIDs))
	for _, id := range savedIDs {
		savedMap[id] = true
	}
	followedMap := make(map[uint]bool, len(followedIDs))
	for _, id := range followedIDs {
		followedMap[id] = true
	}

	enriched := make([]EnrichedFood, len(foods))
	for i, f := range foods {
		enriched[i] = EnrichedFood{
			Food:        f,
			IsLiked:     likedMap[f.ID.Hex()],
			IsSaved:     savedMap[f.ID.Hex()],
			IsFollowing: followedMap[f.FoodPartnerID],
		}
	}
	return enriched, nil
}

// GetFoods returns the full food feed enriched for the current user
func (h *FoodHandler) GetFoods(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	foods, err := h.foodRepository.GetAllFoods(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	enriched, err := h.enrich(userID, foods)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"foods": enriched}})
}

// GetFollowedFoods returns foods from partners the current user follows
func (h *FoodHandler) GetFollowedFoods(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	partnerIDs, err := h.followRepository.GetFollowedPartnerIDs(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	foods, err := h.foodRepository.GetFoodsByPartnerIDs(c.Request().Context(), partnerIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	enriched, err := h.enrich(userID, foods)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"foods": enriched}})
}

// GetSavedFoods returns the foods the current user has bookmarked
func (h *FoodHandler) GetSavedFoods(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	savedIDs, err := h.saveRepository.GetSavedFoodIDs(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	foods, err := h.foodRepository.GetFoodsByIDs(c.Request().Context(), savedIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	enriched, err := h.enrich(userID, foods)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"foods": enriched}})
}

// CreateFood creates a food item owned by the current partner
func (h *FoodHandler) CreateFood(c echo.Context) error {
	partnerID := getPartnerIDFromContext(c)
	if partnerID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Food partner not authenticated")
	}

	var req models.CreateFoodRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	food := &models.Food{
		Name:          req.Name,
		Description:   req.Description,
		VideoURL:      req.VideoURL,
		Price:         req.Price,
		IsOrderable:   req.IsOrderable,
		FoodPartnerID: partnerID,
	}

	if err := h.foodRepository.CreateFood(c.Request().Context(), food); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, food)
}

// UpdateFood edits exactly one field of a food item owned by the current partner
func (h *FoodHandler) UpdateFood(c echo.Context) error {
	partnerID := getPartnerIDFromContext(c)
	if partnerID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Food partner not authenticated")
	}
	foodID := c.Param("food_id")

	var req models.UpdateFoodRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.VideoURL != nil {
		fields["video_url"] = *req.VideoURL
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.IsOrderable != nil {
		fields["is_orderable"] = *req.IsOrderable
	}
	if len(fields) != 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "Please send exactly one field to update")
	}

	food, err := h.foodRepository.GetFoodByID(c.Request().Context(), foodID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Food not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if food.FoodPartnerID != partnerID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to edit this food")
	}

	if err := h.foodRepository.UpdateFood(c.Request().Context(), foodID, fields); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	updated, err := h.foodRepository.GetFoodByID(c.Request().Context(), foodID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, updated)
}

// DeleteFood removes a food item owned by the current partner along with
// its relation records and comments
func (h *FoodHandler) DeleteFood(c echo.Context) error {
	partnerID := getPartnerIDFromContext(c)
	if partnerID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Food partner not authenticated")
	}
	foodID := c.Param("food_id")

	food, err := h.foodRepository.GetFoodByID(c.Request().Context(), foodID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Food not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if food.FoodPartnerID != partnerID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this food")
	}

	if err := h.foodRepository.DeleteFood(c.Request().Context(), foodID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Clean up relation records and comments referencing the deleted food
	if err := h.commentRepository.DeleteByFoodID(foodID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := h.likeRepository.RemoveByFoodID(foodID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := h.saveRepository.RemoveByFoodID(foodID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Food deleted successfully"})
}
