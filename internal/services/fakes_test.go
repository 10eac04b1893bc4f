package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/snackreel/backend/internal/models"
	"github.com/snackreel/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory fakes for the repository interfaces. All of them are
// safe for concurrent use so the service tests can exercise parallel
// toggles.

type fakeFoodRepo struct {
	mu         sync.Mutex
	foods      map[string]*models.Food
	failAdjust bool
}

func newFakeFoodRepo() *fakeFoodRepo {
	return &fakeFoodRepo{foods: make(map[string]*models.Food)}
}

func (r *fakeFoodRepo) addFood(food *models.Food) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	food.ID = primitive.NewObjectID()
	r.foods[food.ID.Hex()] = food
	return food.ID.Hex()
}

func (r *fakeFoodRepo) CreateFood(ctx context.Context, food *models.Food) error {
	r.addFood(food)
	return nil
}

func (r *fakeFoodRepo) GetFoodByID(ctx context.Context, id string) (*models.Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	food, ok := r.foods[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *food
	return &cp, nil
}

func (r *fakeFoodRepo) GetAllFoods(ctx context.Context) ([]models.Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Food, 0, len(r.foods))
	for _, f := range r.foods {
		out = append(out, *f)
	}
	return out, nil
}

func (r *fakeFoodRepo) GetFoodsByPartnerID(ctx context.Context, partnerID uint) ([]models.Food, error) {
	return nil, nil
}

func (r *fakeFoodRepo) GetFoodsByPartnerIDs(ctx context.Context, partnerIDs []uint) ([]models.Food, error) {
	return nil, nil
}

func (r *fakeFoodRepo) GetFoodsByIDs(ctx context.Context, ids []string) ([]models.Food, error) {
	return nil, nil
}

func (r *fakeFoodRepo) UpdateFood(ctx context.Context, id string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	food, ok := r.foods[id]
	if !ok {
		return repositories.ErrNotFound
	}
	if price, ok := fields["price"].(float64); ok {
		food.Price = price
	}
	return nil
}

func (r *fakeFoodRepo) DeleteFood(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.foods[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.foods, id)
	return nil
}

func (r *fakeFoodRepo) AdjustCount(ctx context.Context, foodID, field string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAdjust {
		return errors.New("adjust failed")
	}
	food, ok := r.foods[foodID]
	if !ok {
		return repositories.ErrNotFound
	}
	clamp := func(v int64) int64 {
		if v < 0 {
			return 0
		}
		return v
	}
	switch field {
	case models.FoodLikeCount:
		food.LikeCount = clamp(food.LikeCount + int64(delta))
	case models.FoodSavesCount:
		food.SavesCount = clamp(food.SavesCount + int64(delta))
	case models.FoodCommentCount:
		food.CommentCount = clamp(food.CommentCount + int64(delta))
	case models.FoodShareCount:
		food.ShareCount = clamp(food.ShareCount + int64(delta))
	}
	return nil
}

func (r *fakeFoodRepo) IncrementShareCount(ctx context.Context, foodID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	food, ok := r.foods[foodID]
	if !ok {
		return 0, repositories.ErrNotFound
	}
	food.ShareCount++
	return food.ShareCount, nil
}

type userFoodKey struct {
	userID uint
	foodID string
}

type fakeLikeRepo struct {
	mu    sync.Mutex
	likes map[userFoodKey]bool
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: make(map[userFoodKey]bool)}
}

func (r *fakeLikeRepo) Insert(userID uint, foodID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := userFoodKey{userID, foodID}
	if r.likes[key] {
		return false, nil
	}
	r.likes[key] = true
	return true, nil
}

func (r *fakeLikeRepo) Remove(userID uint, foodID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := userFoodKey{userID, foodID}
	if !r.likes[key] {
		return false, nil
	}
	delete(r.likes, key)
	return true, nil
}

func (r *fakeLikeRepo) GetLikedFoodIDs(userID uint) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for k := range r.likes {
		if k.userID == userID {
			ids = append(ids, k.foodID)
		}
	}
	return ids, nil
}

func (r *fakeLikeRepo) CountByFoodID(foodID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for k := range r.likes {
		if k.foodID == foodID {
			count++
		}
	}
	return count, nil
}

func (r *fakeLikeRepo) RemoveByFoodID(foodID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k := range r.likes {
		if k.foodID == foodID {
			delete(r.likes, k)
		}
	}
	return nil
}

type fakeSaveRepo struct {
	fakeLikeRepo
}

func newFakeSaveRepo() *fakeSaveRepo {
	return &fakeSaveRepo{fakeLikeRepo{likes: make(map[userFoodKey]bool)}}
}

func (r *fakeSaveRepo) GetSavedFoodIDs(userID uint) ([]string, error) {
	return r.GetLikedFoodIDs(userID)
}

type userPartnerKey struct {
	userID    uint
	partnerID uint
}

type fakeFollowRepo struct {
	mu      sync.Mutex
	follows map[userPartnerKey]bool
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{follows: make(map[userPartnerKey]bool)}
}

func (r *fakeFollowRepo) Insert(userID, partnerID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := userPartnerKey{userID, partnerID}
	if r.follows[key] {
		return false, nil
	}
	r.follows[key] = true
	return true, nil
}

func (r *fakeFollowRepo) Remove(userID, partnerID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := userPartnerKey{userID, partnerID}
	if !r.follows[key] {
		return false, nil
	}
	delete(r.follows, key)
	return true, nil
}

func (r *fakeFollowRepo) IsFollowing(userID, partnerID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.follows[userPartnerKey{userID, partnerID}], nil
}

func (r *fakeFollowRepo) GetFollowedPartnerIDs(userID uint) ([]uint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []uint
	for k := range r.follows {
		if k.userID == userID {
			ids = append(ids, k.partnerID)
		}
	}
	return ids, nil
}

func (r *fakeFollowRepo) GetFollowers(partnerID uint) ([]models.User, error) {
	return nil, nil
}

func (r *fakeFollowRepo) countFollowers(partnerID uint) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for k := range r.follows {
		if k.partnerID == partnerID {
			count++
		}
	}
	return count
}

type fakePartnerRepo struct {
	mu       sync.Mutex
	partners map[uint]*models.FoodPartner
	nextID   uint
}

func newFakePartnerRepo() *fakePartnerRepo {
	return &fakePartnerRepo{partners: make(map[uint]*models.FoodPartner), nextID: 1}
}

func (r *fakePartnerRepo) CreatePartner(partner *models.FoodPartner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	partner.ID = r.nextID
	r.nextID++
	r.partners[partner.ID] = partner
	return nil
}

func (r *fakePartnerRepo) GetPartnerByID(id uint) (*models.FoodPartner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	partner, ok := r.partners[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *partner
	return &cp, nil
}

func (r *fakePartnerRepo) GetPartnerByEmail(email string) (*models.FoodPartner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.partners {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakePartnerRepo) AdjustFollowCount(partnerID uint, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	partner, ok := r.partners[partnerID]
	if !ok {
		return nil
	}
	partner.FollowCount += int64(delta)
	if partner.FollowCount < 0 {
		partner.FollowCount = 0
	}
	return nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments map[uint]*models.Comment
	nextID   uint
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uint]*models.Comment), nextID: 1}
}

func (r *fakeCommentRepo) CreateComment(comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if comment.ID == 0 {
		comment.ID = r.nextID
		r.nextID++
	}
	cp := *comment
	r.comments[comment.ID] = &cp
	return nil
}

func (r *fakeCommentRepo) GetCommentByID(id uint) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment, ok := r.comments[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *comment
	return &cp, nil
}

func (r *fakeCommentRepo) GetCommentsByFoodID(foodID string) ([]models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Comment
	for _, c := range r.comments {
		if c.FoodID == foodID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) DeleteComment(id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[id]; !ok {
		return false, nil
	}
	delete(r.comments, id)
	return true, nil
}

func (r *fakeCommentRepo) DeleteByFoodID(foodID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, c := range r.comments {
		if c.FoodID == foodID {
			delete(r.comments, id)
		}
	}
	return nil
}

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) CreateUser(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetUserByID(id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *fakeUserRepo) GetUserByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*models.Order
	nextID int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*models.Order)}
}

func (r *fakeOrderRepo) CreateOrder(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if order.ID == "" {
		r.nextID++
		order.ID = fmt.Sprintf("order-%d", r.nextID)
	}
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetOrderByID(id string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *order
	return &cp, nil
}

func (r *fakeOrderRepo) GetOrdersByUserID(userID uint) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) GetOrdersByPartnerID(partnerID uint) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Order
	for _, o := range r.orders {
		if o.FoodPartnerID == partnerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatusIfNotTerminal(id, status string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return false, nil
	}
	if models.IsTerminalOrderStatus(order.Status) {
		return false, nil
	}
	order.Status = status
	return true, nil
}
