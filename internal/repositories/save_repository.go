package repositories

import (
	"github.com/snackreel/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SaveRepository defines the interface for save (bookmark) relation
// operations. Same contract as LikeRepository: conditional writes decided
// by the database in one statement.
type SaveRepository interface {
	Insert(userID uint, foodID string) (bool, error)
	Remove(userID uint, foodID string) (bool, error)
	GetSavedFoodIDs(userID uint) ([]string, error)
	RemoveByFoodID(foodID string) error
}

// PostgresSaveRepository implements SaveRepository for PostgreSQL
type PostgresSaveRepository struct {
	db *gorm.DB
}

// NewPostgresSaveRepository creates a new PostgresSaveRepository
func NewPostgresSaveRepository(db *gorm.DB) *PostgresSaveRepository {
	return &PostgresSaveRepository{db: db}
}

// Insert creates the save unless it already exists
func (r *PostgresSaveRepository) Insert(userID uint, foodID string) (bool, error) {
	save := &models.Save{UserID: userID, FoodID: foodID}
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(save)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Remove deletes the save if present
func (r *PostgresSaveRepository) Remove(userID uint, foodID string) (bool, error) {
	res := r.db.Where("user_id = ? AND food_id = ?", userID, foodID).Delete(&models.Save{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetSavedFoodIDs retrieves the IDs of all foods saved by a user, newest first
func (r *PostgresSaveRepository) GetSavedFoodIDs(userID uint) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Save{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("food_id", &ids).Error
	return ids, err
}

// RemoveByFoodID deletes all saves for a food item (food deletion cascade)
func (r *PostgresSaveRepository) RemoveByFoodID(foodID string) error {
	return r.db.Where("food_id = ?", foodID).Delete(&models.Save{}).Error
}
