package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/snackreel/backend/internal/models"
	"github.com/snackreel/backend/internal/repositories"
)

// EngagementService keeps toggleable relations (like, save, follow) and
// the denormalized counters on their subjects in agreement, and runs the
// comment ledger with the same counter-sync discipline. It holds no
// state of its own beyond the injected repositories.
type EngagementService struct {
	foods    repositories.FoodRepository
	partners repositories.FoodPartnerRepository
	likes    repositories.LikeRepository
	saves    repositories.SaveRepository
	follows  repositories.FollowRepository
	comments repositories.CommentRepository
}

// NewEngagementService creates a new EngagementService
func NewEngagementService(
	foodRepo repositories.FoodRepository,
	partnerRepo repositories.FoodPartnerRepository,
	likeRepo repositories.LikeRepository,
	saveRepo repositories.SaveRepository,
	followRepo repositories.FollowRepository,
	commentRepo repositories.CommentRepository,
) *EngagementService {
	return &EngagementService{
		foods:    foodRepo,
		partners: partnerRepo,
		likes:    likeRepo,
		saves:    saveRepo,
		follows:  followRepo,
		comments: commentRepo,
	}
}

// toggle flips a relation and applies exactly one counter adjustment.
// insert and remove must be atomic conditional writes (insert-if-absent,
// delete-if-present). When the counter adjustment fails the relation
// write is undone, so the pair never lands half-applied.
func (s *EngagementService) toggle(
	insert func() (bool, error),
	remove func() (bool, error),
	adjust func(delta int) error,
) (bool, error) {
	inserted, err := insert()
	if err != nil {
		return false, err
	}
	if inserted {
		if err := adjust(1); err != nil {
			_, _ = remove()
			return false, fmt.Errorf("adjust counter after insert: %w", err)
		}
		return true, nil
	}

	removed, err := remove()
	if err != nil {
		return false, err
	}
	if !removed {
		// The relation vanished between our conflicting insert and this
		// delete: a concurrent toggle-off won the race and owns the
		// decrement. Nothing left to adjust.
		return false, nil
	}
	if err := adjust(-1); err != nil {
		_, _ = insert()
		return true, fmt.Errorf("adjust counter after remove: %w", err)
	}
	return false, nil
}

// ToggleLike flips the user's like on a food item and returns whether the
// like is now active.
func (s *EngagementService) ToggleLike(ctx context.Context, userID uint, foodID string) (bool, error) {
	if _, err := s.foods.GetFoodByID(ctx, foodID); err != nil {
		return false, err
	}
	return s.toggle(
		func() (bool, error) { return s.likes.Insert(userID, foodID) },
		func() (bool, error) { return s.likes.Remove(userID, foodID) },
		func(delta int) error { return s.foods.AdjustCount(ctx, foodID, models.FoodLikeCount, delta) },
	)
}

// ToggleSave flips the user's bookmark on a food item and returns whether
// the save is now active.
func (s *EngagementService) ToggleSave(ctx context.Context, userID uint, foodID string) (bool, error) {
	if _, err := s.foods.GetFoodByID(ctx, foodID); err != nil {
		return false, err
	}
	return s.toggle(
		func() (bool, error) { return s.saves.Insert(userID, foodID) },
		func() (bool, error) { return s.saves.Remove(userID, foodID) },
		func(delta int) error { return s.foods.AdjustCount(ctx, foodID, models.FoodSavesCount, delta) },
	)
}

// ToggleFollow flips the user's follow on a food partner and returns
// whether the follow is now active.
func (s *EngagementService) ToggleFollow(ctx context.Context, userID, partnerID uint) (bool, error) {
	if _, err := s.partners.GetPartnerByID(partnerID); err != nil {
		return false, err
	}
	return s.toggle(
		func() (bool, error) { return s.follows.Insert(userID, partnerID) },
		func() (bool, error) { return s.follows.Remove(userID, partnerID) },
		func(delta int) error { return s.partners.AdjustFollowCount(partnerID, delta) },
	)
}

// PostComment appends a comment to a food item and increments its comment
// count. The comment is rolled back if the counter cannot be adjusted.
func (s *EngagementService) PostComment(ctx context.Context, userID uint, foodID, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyComment
	}
	if _, err := s.foods.GetFoodByID(ctx, foodID); err != nil {
		return nil, err
	}

	comment := &models.Comment{UserID: userID, FoodID: foodID, Text: text}
	if err := s.comments.CreateComment(comment); err != nil {
		return nil, err
	}
	if err := s.foods.AdjustCount(ctx, foodID, models.FoodCommentCount, 1); err != nil {
		_, _ = s.comments.DeleteComment(comment.ID)
		return nil, fmt.Errorf("adjust comment count: %w", err)
	}
	return comment, nil
}

// DeleteComment removes a comment if the caller authored it and
// decrements the food's comment count. The deletion is rolled back if the
// counter cannot be adjusted.
func (s *EngagementService) DeleteComment(ctx context.Context, commentID, userID uint) error {
	comment, err := s.comments.GetCommentByID(commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return ErrForbidden
	}

	removed, err := s.comments.DeleteComment(commentID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	if err := s.foods.AdjustCount(ctx, comment.FoodID, models.FoodCommentCount, -1); err != nil {
		_ = s.comments.CreateComment(comment)
		return fmt.Errorf("adjust comment count: %w", err)
	}
	return nil
}

// ListComments retrieves all comments on a food item
func (s *EngagementService) ListComments(ctx context.Context, foodID string) ([]models.Comment, error) {
	if _, err := s.foods.GetFoodByID(ctx, foodID); err != nil {
		return nil, err
	}
	return s.comments.GetCommentsByFoodID(foodID)
}

// IncrementShare bumps a food item's share count and returns the new value.
// Shares are increment-only; there is no share record to toggle.
func (s *EngagementService) IncrementShare(ctx context.Context, foodID string) (int64, error) {
	return s.foods.IncrementShareCount(ctx, foodID)
}
