package repositories

import (
	"errors"

	"github.com/google/uuid"
	"github.com/snackreel/backend/internal/models"
	"gorm.io/gorm"
)

// OrderRepository defines the interface for order data operations.
// Orders are never deleted; the only mutation is the status transition,
// and UpdateStatusIfNotTerminal performs the terminal-state check and the
// write as one conditional UPDATE so two concurrent requests cannot both
// pass the guard.
type OrderRepository interface {
	CreateOrder(order *models.Order) error
	GetOrderByID(id string) (*models.Order, error)
	GetOrdersByUserID(userID uint) ([]models.Order, error)
	GetOrdersByPartnerID(partnerID uint) ([]models.Order, error)
	UpdateStatusIfNotTerminal(id, status string) (bool, error)
}

// PostgresOrderRepository implements OrderRepository for PostgreSQL
type PostgresOrderRepository struct {
	db *gorm.DB
}

// NewPostgresOrderRepository creates a new PostgresOrderRepository
func NewPostgresOrderRepository(db *gorm.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

// CreateOrder creates a new order in PostgreSQL
func (r *PostgresOrderRepository) CreateOrder(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	return r.db.Create(order).Error
}

// GetOrderByID retrieves an order by ID from PostgreSQL
func (r *PostgresOrderRepository) GetOrderByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Where("id = ?", id).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// GetOrdersByUserID retrieves a user's orders, newest first
func (r *PostgresOrderRepository) GetOrdersByUserID(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// GetOrdersByPartnerID retrieves a food partner's incoming orders, newest first
func (r *PostgresOrderRepository) GetOrdersByPartnerID(partnerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("food_partner_id = ?", partnerID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// UpdateStatusIfNotTerminal sets the order status unless the current
// status is terminal. Returns whether a row was updated; false means the
// order is missing or already delivered/cancelled.
func (r *PostgresOrderRepository) UpdateStatusIfNotTerminal(id, status string) (bool, error) {
	res := r.db.Model(&models.Order{}).
		Where("id = ? AND status NOT IN ?", id, models.TerminalOrderStatuses).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
