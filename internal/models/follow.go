package models

import "time"

// Follow represents a user following a food partner
type Follow struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_partner_follow"`
	FoodPartnerID uint      `json:"food_partner_id" gorm:"index;uniqueIndex:idx_user_partner_follow"`
	CreatedAt     time.Time `json:"created_at"`
}
