package models

import "time"

// Like marks that a user has an active like on a food item
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_food_like"`
	FoodID    string    `json:"food_id" gorm:"index;uniqueIndex:idx_user_food_like"` // MongoDB ObjectID as string
	CreatedAt time.Time `json:"created_at"`
}
