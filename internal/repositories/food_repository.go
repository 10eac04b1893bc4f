package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/snackreel/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FoodRepository defines the interface for food item data operations
type FoodRepository interface {
	CreateFood(ctx context.Context, food *models.Food) error
	GetFoodByID(ctx context.Context, id string) (*models.Food, error)
	GetAllFoods(ctx context.Context) ([]models.Food, error)
	GetFoodsByPartnerID(ctx context.Context, partnerID uint) ([]models.Food, error)
	GetFoodsByPartnerIDs(ctx context.Context, partnerIDs []uint) ([]models.Food, error)
	GetFoodsByIDs(ctx context.Context, ids []string) ([]models.Food, error)
	UpdateFood(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteFood(ctx context.Context, id string) error
	AdjustCount(ctx context.Context, foodID, field string, delta int) error
	IncrementShareCount(ctx context.Context, foodID string) (int64, error)
}

// MongoFoodRepository implements FoodRepository for MongoDB
type MongoFoodRepository struct {
	collection *mongo.Collection
}

// NewMongoFoodRepository creates a new MongoFoodRepository
func NewMongoFoodRepository(db *mongo.Database) *MongoFoodRepository {
	return &MongoFoodRepository{collection: db.Collection("foods")}
}

// CreateFood creates a new food item in MongoDB
func (r *MongoFoodRepository) CreateFood(ctx context.Context, food *models.Food) error {
	food.ID = primitive.NewObjectID()
	food.CreatedAt = time.Now()
	food.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, food)
	return err
}

// GetFoodByID retrieves a food item by ID from MongoDB
func (r *MongoFoodRepository) GetFoodByID(ctx context.Context, id string) (*models.Food, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid food ID format: %w", err)
	}

	var food models.Food
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&food)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &food, nil
}

// GetAllFoods retrieves all food items from MongoDB, newest first
func (r *MongoFoodRepository) GetAllFoods(ctx context.Context) ([]models.Food, error) {
	return r.find(ctx, bson.D{})
}

// GetFoodsByPartnerID retrieves the food items owned by a partner
func (r *MongoFoodRepository) GetFoodsByPartnerID(ctx context.Context, partnerID uint) ([]models.Food, error) {
	return r.find(ctx, bson.M{"food_partner_id": partnerID})
}

// GetFoodsByPartnerIDs retrieves food items owned by any of the given partners
func (r *MongoFoodRepository) GetFoodsByPartnerIDs(ctx context.Context, partnerIDs []uint) ([]models.Food, error) {
	if len(partnerIDs) == 0 {
		return []models.Food{}, nil
	}
	return r.find(ctx, bson.M{"food_partner_id": bson.M{"$in": partnerIDs}})
}

// GetFoodsByIDs retrieves food items by their IDs
func (r *MongoFoodRepository) GetFoodsByIDs(ctx context.Context, ids []string) ([]models.Food, error) {
	if len(ids) == 0 {
		return []models.Food{}, nil
	}
	objIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, fmt.Errorf("invalid food ID format: %w", err)
		}
		objIDs = append(objIDs, objID)
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": objIDs}})
}

func (r *MongoFoodRepository) find(ctx context.Context, filter interface{}) ([]models.Food, error) {
	var foods []models.Food
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// UpdateFood sets the given fields on a food item
func (r *MongoFoodRepository) UpdateFood(ctx context.Context, id string, fields map[string]interface{}) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid food ID format: %w", err)
	}

	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		set[k] = v
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteFood deletes a food item by ID from MongoDB
func (r *MongoFoodRepository) DeleteFood(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid food ID format: %w", err)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AdjustCount applies delta to one of the denormalized counters on a food
// document. The pipeline clamps the result at zero, so a double decrement
// from a lost race can never drive a counter negative.
func (r *MongoFoodRepository) AdjustCount(ctx context.Context, foodID, field string, delta int) error {
	objID, err := primitive.ObjectIDFromHex(foodID)
	if err != nil {
		return fmt.Errorf("invalid food ID format: %w", err)
	}

	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.M{
			field: bson.M{"$max": bson.A{
				0,
				bson.M{"$add": bson.A{bson.M{"$ifNull": bson.A{"$" + field, 0}}, delta}},
			}},
		}}},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementShareCount increments the share count and returns the new value
func (r *MongoFoodRepository) IncrementShareCount(ctx context.Context, foodID string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(foodID)
	if err != nil {
		return 0, fmt.Errorf("invalid food ID format: %w", err)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var food models.Food
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$inc": bson.M{models.FoodShareCount: 1}},
		opts,
	).Decode(&food)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return food.ShareCount, nil
}
