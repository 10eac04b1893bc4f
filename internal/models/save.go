package models

import "time"

// Save represents a bookmarked food item
type Save struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_food_save"`
	FoodID    string    `json:"food_id" gorm:"index;uniqueIndex:idx_user_food_save"` // MongoDB ObjectID as string
	CreatedAt time.Time `json:"created_at"`
}
