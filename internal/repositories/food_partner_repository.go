package repositories

import (
	"errors"

	"github.com/snackreel/backend/internal/models"
	"gorm.io/gorm"
)

// FoodPartnerRepository defines the interface for food partner data operations
type FoodPartnerRepository interface {
	CreatePartner(partner *models.FoodPartner) error
	GetPartnerByID(id uint) (*models.FoodPartner, error)
	GetPartnerByEmail(email string) (*models.FoodPartner, error)
	AdjustFollowCount(partnerID uint, delta int) error
}

// PostgresFoodPartnerRepository implements FoodPartnerRepository for PostgreSQL
type PostgresFoodPartnerRepository struct {
	db *gorm.DB
}

// NewPostgresFoodPartnerRepository creates a new PostgresFoodPartnerRepository
func NewPostgresFoodPartnerRepository(db *gorm.DB) *PostgresFoodPartnerRepository {
	return &PostgresFoodPartnerRepository{db: db}
}

// CreatePartner creates a new food partner in PostgreSQL
func (r *PostgresFoodPartnerRepository) CreatePartner(partner *models.FoodPartner) error {
	return r.db.Create(partner).Error
}

// GetPartnerByID retrieves a food partner by ID from PostgreSQL
func (r *PostgresFoodPartnerRepository) GetPartnerByID(id uint) (*models.FoodPartner, error) {
	var partner models.FoodPartner
	if err := r.db.First(&partner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &partner, nil
}

// GetPartnerByEmail retrieves a food partner by email from PostgreSQL
func (r *PostgresFoodPartnerRepository) GetPartnerByEmail(email string) (*models.FoodPartner, error) {
	var partner models.FoodPartner
	if err := r.db.Where("email = ?", email).First(&partner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &partner, nil
}

// AdjustFollowCount applies delta to the partner's denormalized follow
// count in a single UPDATE. Decrements carry a follow_count > 0 predicate
// so the counter is floored at zero no matter the call sequence.
func (r *PostgresFoodPartnerRepository) AdjustFollowCount(partnerID uint, delta int) error {
	tx := r.db.Model(&models.FoodPartner{}).Where("id = ?", partnerID)
	if delta < 0 {
		tx = tx.Where("follow_count > 0")
	}
	return tx.UpdateColumn("follow_count", gorm.Expr("follow_count + ?", delta)).Error
}
