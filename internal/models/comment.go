package models

import "time"

// Comment represents a comment on a food item. Comments are immutable
// once posted; the only mutation is deletion by the author.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FoodID    string    `json:"food_id" gorm:"index"` // MongoDB ObjectID as string
	UserID    uint      `json:"user_id" gorm:"index"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommentRequest defines the request body for posting a comment
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=500"`
}
