package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/snackreel/backend/internal/models"
	"github.com/snackreel/backend/internal/repositories"
)

// OrderService creates orders with a frozen price snapshot and governs
// status transitions. Any non-terminal status may move to any status the
// owning partner requests; delivered and cancelled orders are immutable.
type OrderService struct {
	orders   repositories.OrderRepository
	foods    repositories.FoodRepository
	users    repositories.UserRepository
	partners repositories.FoodPartnerRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo repositories.OrderRepository,
	foodRepo repositories.FoodRepository,
	userRepo repositories.UserRepository,
	partnerRepo repositories.FoodPartnerRepository,
) *OrderService {
	return &OrderService{
		orders:   orderRepo,
		foods:    foodRepo,
		users:    userRepo,
		partners: partnerRepo,
	}
}

// CreateOrder places an order for an orderable food item. The unit price
// is snapshotted from the food at this moment and the total computed in
// decimal space; later price edits never touch existing orders.
func (s *OrderService) CreateOrder(ctx context.Context, userID uint, req *models.CreateOrderRequest) (*models.Order, error) {
	food, err := s.foods.GetFoodByID(ctx, req.FoodID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotOrderable
		}
		return nil, err
	}
	if !food.IsOrderable {
		return nil, ErrNotOrderable
	}

	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	partner, err := s.partners.GetPartnerByID(food.FoodPartnerID)
	if err != nil {
		return nil, err
	}

	unitPrice := decimal.NewFromFloat(food.Price)
	totalPrice := unitPrice.Mul(decimal.NewFromInt(req.Quantity))

	order := &models.Order{
		UserID:          userID,
		UserName:        user.FullName,
		FoodID:          req.FoodID,
		FoodName:        food.Name,
		FoodPartnerID:   partner.ID,
		FoodPartnerName: partner.Name,
		Quantity:        req.Quantity,
		UnitPrice:       unitPrice,
		TotalPrice:      totalPrice,
		DeliveryAddress: req.DeliveryAddress,
		Status:          models.OrderStatusPending,
	}

	// Payment is modeled as always succeeding.
	if err := s.orders.CreateOrder(order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus moves an order to the requested status on behalf of the
// owning food partner. The terminal-state check and the write happen in
// one conditional UPDATE, so a delivered or cancelled order is rejected
// with its status untouched even under concurrent requests.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, requested string, partnerID uint) (*models.Order, error) {
	order, err := s.orders.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.FoodPartnerID != partnerID {
		return nil, ErrForbidden
	}

	updated, err := s.orders.UpdateStatusIfNotTerminal(orderID, requested)
	if err != nil {
		return nil, err
	}
	if !updated {
		// The guard and the write are one statement, so a refused update
		// means the order reached a terminal status, possibly between our
		// ownership read and the write.
		current, err := s.orders.GetOrderByID(orderID)
		if err != nil {
			return nil, err
		}
		return nil, &TerminalStatusError{CurrentStatus: current.Status}
	}
	return s.orders.GetOrderByID(orderID)
}

// ListForUser retrieves a user's order history
func (s *OrderService) ListForUser(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.orders.GetOrdersByUserID(userID)
}

// ListForPartner retrieves a food partner's incoming orders
func (s *OrderService) ListForPartner(ctx context.Context, partnerID uint) ([]models.Order, error) {
	return s.orders.GetOrdersByPartnerID(partnerID)
}
