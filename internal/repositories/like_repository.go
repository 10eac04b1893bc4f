package repositories

import (
	"github.com/snackreel/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines the interface for like relation operations.
// Insert and Remove are atomic conditional writes: the database decides
// presence and the write in one statement, so two concurrent toggles from
// the same user can never both create a record.
type LikeRepository interface {
	Insert(userID uint, foodID string) (bool, error)
	Remove(userID uint, foodID string) (bool, error)
	GetLikedFoodIDs(userID uint) ([]string, error)
	CountByFoodID(foodID string) (int64, error)
	RemoveByFoodID(foodID string) error
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// Insert creates the like unless it already exists. Returns whether a row
// was inserted; a conflict with the (user_id, food_id) unique index means
// the like was already present.
func (r *PostgresLikeRepository) Insert(userID uint, foodID string) (bool, error) {
	like := &models.Like{UserID: userID, FoodID: foodID}
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Remove deletes the like if present. Returns whether a row was deleted.
func (r *PostgresLikeRepository) Remove(userID uint, foodID string) (bool, error) {
	res := r.db.Where("user_id = ? AND food_id = ?", userID, foodID).Delete(&models.Like{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetLikedFoodIDs retrieves the IDs of all foods liked by a user
func (r *PostgresLikeRepository) GetLikedFoodIDs(userID uint) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Like{}).Where("user_id = ?", userID).Pluck("food_id", &ids).Error
	return ids, err
}

// CountByFoodID counts the like records referencing a food item
func (r *PostgresLikeRepository) CountByFoodID(foodID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("food_id = ?", foodID).Count(&count).Error
	return count, err
}

// RemoveByFoodID deletes all likes for a food item (food deletion cascade)
func (r *PostgresLikeRepository) RemoveByFoodID(foodID string) error {
	return r.db.Where("food_id = ?", foodID).Delete(&models.Like{}).Error
}
