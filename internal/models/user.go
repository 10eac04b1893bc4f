package models

import (
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// Actor roles carried in JWT claims.
const (
	RoleUser        = "user"
	RoleFoodPartner = "food_partner"
)

// User is a consumer account stored in PostgreSQL.
type User struct {
	gorm.Model `json:"-"`
	ID         uint   `json:"id" gorm:"primaryKey"`
	FullName   string `json:"full_name"`
	Email      string `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all users
	Password   string `json:"-"`                        // Store hashed password, ignore for JSON serialization
}

type RegisterUserRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	SubjectID uint   `json:"subject_id"`
	Email     string `json:"email"`
	Role      string `json:"role"` // "user" or "food_partner"
	jwt.RegisteredClaims
}
