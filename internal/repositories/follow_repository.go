package repositories

import (
	"github.com/snackreel/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository defines the interface for follow relation operations
type FollowRepository interface {
	Insert(userID, partnerID uint) (bool, error)
	Remove(userID, partnerID uint) (bool, error)
	IsFollowing(userID, partnerID uint) (bool, error)
	GetFollowedPartnerIDs(userID uint) ([]uint, error)
	GetFollowers(partnerID uint) ([]models.User, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

// Insert creates the follow unless it already exists
func (r *PostgresFollowRepository) Insert(userID, partnerID uint) (bool, error) {
	follow := &models.Follow{UserID: userID, FoodPartnerID: partnerID}
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(follow)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Remove deletes the follow if present
func (r *PostgresFollowRepository) Remove(userID, partnerID uint) (bool, error) {
	res := r.db.Where("user_id = ? AND food_partner_id = ?", userID, partnerID).Delete(&models.Follow{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// IsFollowing checks whether a user follows a food partner
func (r *PostgresFollowRepository) IsFollowing(userID, partnerID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("user_id = ? AND food_partner_id = ?", userID, partnerID).
		Count(&count).Error
	return count > 0, err
}

// GetFollowedPartnerIDs retrieves the IDs of all partners a user follows
func (r *PostgresFollowRepository) GetFollowedPartnerIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).Where("user_id = ?", userID).Pluck("food_partner_id", &ids).Error
	return ids, err
}

// GetFollowers retrieves the users following a food partner
func (r *PostgresFollowRepository) GetFollowers(partnerID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Table("follows").Select("user_id").Where("food_partner_id = ?", partnerID),
	).Find(&users).Error
	return users, err
}
