package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. Delivered and cancelled are terminal: an order that
// reaches either can never change again.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// TerminalOrderStatuses lists the statuses no transition may leave.
var TerminalOrderStatuses = []string{OrderStatusDelivered, OrderStatusCancelled}

// IsTerminalOrderStatus reports whether status permits no further transitions.
func IsTerminalOrderStatus(status string) bool {
	return status == OrderStatusDelivered || status == OrderStatusCancelled
}

// Order is an immutable purchase record stored in PostgreSQL. Unit and
// total price are snapshotted from the food item at creation and never
// recomputed; orders are never deleted.
type Order struct {
	ID              string          `json:"id" gorm:"type:uuid;primaryKey"`
	UserID          uint            `json:"user_id" gorm:"index"`
	UserName        string          `json:"user_name"`
	FoodID          string          `json:"food_id" gorm:"index"` // MongoDB ObjectID as string
	FoodName        string          `json:"food_name"`
	FoodPartnerID   uint            `json:"food_partner_id" gorm:"index"`
	FoodPartnerName string          `json:"food_partner_name"`
	Quantity        int64           `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price" gorm:"type:numeric"`
	TotalPrice      decimal.Decimal `json:"total_price" gorm:"type:numeric"`
	DeliveryAddress string          `json:"delivery_address"`
	Status          string          `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// CreateOrderRequest defines the request body for placing an order
type CreateOrderRequest struct {
	FoodID          string `json:"food_id" validate:"required"`
	Quantity        int64  `json:"quantity" validate:"required,min=1"`
	DeliveryAddress string `json:"delivery_address" validate:"required,min=5,max=300"`
}

// UpdateOrderStatusRequest defines the request body for a status transition
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed preparing ready delivered cancelled"`
}
