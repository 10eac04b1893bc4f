package repositories

import (
	"errors"

	"github.com/snackreel/backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentByID(id uint) (*models.Comment, error)
	GetCommentsByFoodID(foodID string) ([]models.Comment, error)
	DeleteComment(id uint) (bool, error)
	DeleteByFoodID(foodID string) error
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment creates a new comment in PostgreSQL
func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetCommentByID retrieves a comment by ID from PostgreSQL
func (r *PostgresCommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// GetCommentsByFoodID retrieves all comments for a food item, oldest first
func (r *PostgresCommentRepository) GetCommentsByFoodID(foodID string) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Where("food_id = ?", foodID).Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// DeleteComment deletes a comment by ID. Returns whether a row was deleted.
func (r *PostgresCommentRepository) DeleteComment(id uint) (bool, error) {
	res := r.db.Delete(&models.Comment{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteByFoodID deletes all comments on a food item (food deletion cascade)
func (r *PostgresCommentRepository) DeleteByFoodID(foodID string) error {
	return r.db.Where("food_id = ?", foodID).Delete(&models.Comment{}).Error
}
