package models

import "gorm.io/gorm"

// FoodPartner is a food vendor account stored in PostgreSQL.
// FollowCount mirrors the number of Follow records referencing the
// partner and is only ever touched through AdjustFollowCount.
type FoodPartner struct {
	gorm.Model   `json:"-"`
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name"`
	ContactName  string `json:"contact_name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Email        string `json:"email" gorm:"uniqueIndex"`
	Password     string `json:"-"`
	ProfileImage string `json:"profile_image"`
	FollowCount  int64  `json:"follow_count" gorm:"default:0"`
}

type RegisterPartnerRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	ContactName string `json:"contact_name" validate:"required,min=2,max=50"`
	Phone       string `json:"phone" validate:"required,min=7,max=20"`
	Address     string `json:"address" validate:"required,min=5,max=300"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
}
