package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/snackreel/backend/internal/models"
	"github.com/snackreel/backend/internal/services"
)

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	orders *services.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// RegisterUserOrderRoutes registers the consumer-facing order routes
func (h *OrderHandler) RegisterUserOrderRoutes(g *echo.Group) {
	g.POST("/orders", h.CreateOrder)
	g.GET("/orders", h.GetUserOrders)
}

// RegisterPartnerOrderRoutes registers the partner-facing order routes
func (h *OrderHandler) RegisterPartnerOrderRoutes(g *echo.Group) {
	g.GET("/partner/orders", h.GetPartnerOrders)
	g.PATCH("/partner/orders/:id/status", h.UpdateOrderStatus)
}

// CreateOrder places an order for the current user
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orders.CreateOrder(c.Request().Context(), userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotOrderable) {
			return echo.NewHTTPError(http.StatusBadRequest, "Food item is not available for ordering")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": echo.Map{"order": order}})
}

// GetUserOrders returns the current user's order history
func (h *OrderHandler) GetUserOrders(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	orders, err := h.orders.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"orders": orders}})
}

// GetPartnerOrders returns the current partner's incoming orders
func (h *OrderHandler) GetPartnerOrders(c echo.Context) error {
	partnerID := getPartnerIDFromContext(c)
	if partnerID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Food partner not authenticated")
	}

	orders, err := h.orders.ListForPartner(c.Request().Context(), partnerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"orders": orders}})
}

// UpdateOrderStatus moves an order to a new status on behalf of the
// owning partner
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	partnerID := getPartnerIDFromContext(c)
	if partnerID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Food partner not authenticated")
	}
	orderID := c.Param("id")

	var req models.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orders.UpdateStatus(c.Request().Context(), orderID, req.Status, partnerID)
	if err != nil {
		var termErr *services.TerminalStatusError
		switch {
		case errors.As(err, &termErr):
			return c.JSON(http.StatusBadRequest, echo.Map{
				"success":        false,
				"message":        termErr.Error(),
				"current_status": termErr.CurrentStatus,
			})
		case errors.Is(err, services.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Order not found")
		case errors.Is(err, services.ErrForbidden):
			return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to update this order")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"order": order}})
}
