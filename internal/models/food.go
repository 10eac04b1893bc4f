package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Counter fields on the food document. Callers pick the field by relation
// kind; the repository applies the delta.
const (
	FoodLikeCount    = "like_count"
	FoodSavesCount   = "saves_count"
	FoodCommentCount = "comment_count"
	FoodShareCount   = "share_count"
)

// Food is a video food item stored in MongoDB. The counters are
// denormalized aggregates over the relation/comment records in PostgreSQL
// and are mutated only through AdjustCount and the share increment.
type Food struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Description   string             `json:"description" bson:"description"`
	VideoURL      string             `json:"video_url" bson:"video_url"`
	Price         float64            `json:"price" bson:"price"`
	IsOrderable   bool               `json:"is_orderable" bson:"is_orderable"`
	FoodPartnerID uint               `json:"food_partner_id" bson:"food_partner_id"`
	LikeCount     int64              `json:"like_count" bson:"like_count"`
	SavesCount    int64              `json:"saves_count" bson:"saves_count"`
	CommentCount  int64              `json:"comment_count" bson:"comment_count"`
	ShareCount    int64              `json:"share_count" bson:"share_count"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreateFoodRequest defines the request body for creating a food item
type CreateFoodRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description string  `json:"description" validate:"required,min=1,max=500"`
	VideoURL    string  `json:"video_url" validate:"required,url"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	IsOrderable bool    `json:"is_orderable"`
}

// UpdateFoodRequest defines the request body for editing a food item.
// Exactly one field must be set per request.
type UpdateFoodRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,min=1,max=500"`
	VideoURL    *string  `json:"video_url,omitempty" validate:"omitempty,url"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	IsOrderable *bool    `json:"is_orderable,omitempty"`
}
