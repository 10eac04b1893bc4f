package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/snackreel/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type engagementFixture struct {
	foods    *fakeFoodRepo
	partners *fakePartnerRepo
	likes    *fakeLikeRepo
	saves    *fakeSaveRepo
	follows  *fakeFollowRepo
	comments *fakeCommentRepo
	svc      *EngagementService
}

func newEngagementFixture() *engagementFixture {
	f := &engagementFixture{
		foods:    newFakeFoodRepo(),
		partners: newFakePartnerRepo(),
		likes:    newFakeLikeRepo(),
		saves:    newFakeSaveRepo(),
		follows:  newFakeFollowRepo(),
		comments: newFakeCommentRepo(),
	}
	f.svc = NewEngagementService(f.foods, f.partners, f.likes, f.saves, f.follows, f.comments)
	return f
}

func TestToggleLikePairIsIdempotent(t *testing.T) {
	f := newEngagementFixture()
	ctx := context.Background()
	foodID := f.foods.addFood(&models.Food{Name: "Paneer Roll"})

	active, err := f.svc.ToggleLike(ctx, 1, foodID)
	require.NoError(t, err)
	assert.True(t, active)

	food, err := f.foods.GetFoodByID(ctx, foodID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), food.LikeCount)

	active, err = f.svc.ToggleLike(ctx, 1, foodID)
	require.NoError(t, err)
	assert.False(t, active)

	food, err = f.foods.GetFoodByID(ctx, foodID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), food.LikeCount)

	count, err := f.likes.CountByFoodID(foodID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestToggleLikeUnknownFoodIsNotFound(t *testing.T) {
	f := newEngagementFixture()

	_, err := f.svc.ToggleLike(context.Background(), 1, "64b000000000000000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToggleSavePairIsIdempotent(t *testing.T) {
	f := newEngagementFixture()
	ctx := context.Background()
	foodID := f.foods.addFood(&models.Food{Name: "Momos"})

	active, err := f.svc.ToggleSave(ctx, 7, foodID)
	require.NoError(t, err)
	assert.True(t, active)

	active, err = f.svc.ToggleSave(ctx, 7, foodID)
	require.NoError(t, err)
	assert.False(t, active)

	food, err := f.foods.GetFoodByID(ctx, foodID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), food.SavesCount)
}

func TestToggleFollowAdjustsPartnerCount(t *testing.T) {
	f := newEngagementFixture()
	ctx := context.Background()
	partner := &models.FoodPartner{Name: "Biryani House"}
	require.NoError(t, f.partners.CreatePartner(partner))

	active, err := f.svc.ToggleFollow(ctx, 1, partner.ID)
	require.NoError(t, err)
	assert.True(t, active)

	got, err := f.partners.GetPartnerByID(partner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.FollowCount)

	active, err = f.svc.ToggleFollow(ctx, 1, partner.ID)
	require.NoError(t, err)
	assert.False(t, active)

	got, err = f.partners.GetPartnerByID(partner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.FollowCount)
}

func TestToggleFollowUnknownPartnerIsNotFound(t *testing.T) {
	f := newEngagementFixture()

	_, err := f.svc.ToggleFollow(context.Background(), 1, 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCounterMatchesRecordsAfterManyToggles(t *testing.T) {
	f := newEngagementFixture()
	ctx := context.Background()
	foodID := f.foods.addFood(&models.Food{Name: "Dosa"})

	// Users 1..5 each toggle a few times; odd number of toggles leaves
	// the like active.
	togglesPerUser := map[uint]int{1: 1, 2: 2, 3: 3, 4: 4, 5: 5}
	var wantActive int64
	for userID, n := range togglesPerUser {
		for i := 0; i < n; i++ {
			_, err := f.svc.ToggleLike(ctx, userID, foodID)
			require.NoError(t, err)
		}
		if n%2 == 1 {
			wantActive++
		}
	}

	records, err := f.likes.CountByFoodID(foodID)
	require.NoError(t, err)
	assert.Equal(t, wantActive, records)

	food, err := f.foods.GetFoodByID(ctx, foodID)
	require.NoError(t, err)
	assert.Equal(t, records, food.LikeCount, "counter must agree with relation records at quiescence")
}

func TestConcurrentDistinctActorsBothCount(t *testing.T) {
	f := newEngagementFixture()
	ctx := context.Background()
	foodID := f.foods.addFood(&models.Food{Name: "Chole Bhature"})

	const actors = 8
	var wg sync.WaitGroup
	errs := make([]error, actors)
	for i := 0; i < actors; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.ToggleLike(ctx, uint(i+1), foodID)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	records, err := f.likes.CountByFoodID(foodID)
	require.NoError(t, err)
	assert.Equal(t, int64(actors), records)

	food, err := f.foods.GetFoodByID(ctx, foodID)
	require.NoError(t, err)
	assert.Equal(t, int64(actors), food.LikeCount)
}

func TestToggleRollsBackRelationWhenCounterFails(t *testing.T) {
	f := newEngagementFixture()
	ctx := context.Background()
	foodID := f.foods.addFood(&models.Food{Name: "Pav Bhaji"})
	f.foods.failAdjust = true

	_, err := f.svc.ToggleLike(ctx, 1, foodID)
	require.Error(t, err)

	records, cerr := f.likes.CountByFoodID(foodID)
	require.NoError(t, cerr)
	assert.Equal(t, int64(0), records, "relation write must be undone when the counter adjustment fails")
}

func TestPostCommentIncrementsCount(t *testing.T) {
	f := newEngagementFixture()
	ctx := context.Background()
	foodID := f.foods.addFood(&models.Food{Name: "Idli"})

	comment, err := f.svc.PostComment(ctx, 3, foodID, "so crispy")
	require.NoError(t, err)
	assert.Equal(t, uint(3), comment.UserID)
	assert.Equal(t, foodID, comment.FoodID)

	food, err := f.foods.GetFoodByID(ctx, foodID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), food.CommentCount)
}

func TestPostCommentEmptyTextRejected(t *testing.T) {
	f := newEngagementFixture()
	foodID := f.foods.addFood(&models.Food{Name: "Idli"})

	_, err := f.svc.PostComment(context.Background(), 3, foodID, "   ")
	assert.ErrorIs(t, err, ErrEmptyComment)
}

func TestDeleteCommentByNonAuthorForbidden(t *testing.T) {
	f := newEngagementFixture()
	ctx := context.Background()
	foodID := f.foods.addFood(&models.Food{Name: "Vada Pav"})

	comment, err := f.svc.PostComment(ctx, 3, foodID, "yum")
	require.NoError(t, err)

	err = f.svc.DeleteComment(ctx, comment.ID, 4)
	assert.ErrorIs(t, err, ErrForbidden)

	// Comment and counter untouched.
	_, err = f.comments.GetCommentByID(comment.ID)
	require.NoError(t, err)
	food, err := f.foods.GetFoodByID(ctx, foodID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), food.CommentCount)
}

func TestDeleteCommentByAuthorDecrementsCount(t *testing.T) {
	f := newEngagementFixture()
	ctx := context.Background()
	foodID := f.foods.addFood(&models.Food{Name: "Samosa"})

	comment, err := f.svc.PostComment(ctx, 3, foodID, "nice")
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteComment(ctx, comment.ID, 3))

	_, err = f.comments.GetCommentByID(comment.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	food, err := f.foods.GetFoodByID(ctx, foodID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), food.CommentCount)
}

func TestDeleteCommentUnknownIsNotFound(t *testing.T) {
	f := newEngagementFixture()

	err := f.svc.DeleteComment(context.Background(), 99, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIncrementShareReturnsNewValue(t *testing.T) {
	f := newEngagementFixture()
	ctx := context.Background()
	foodID := f.foods.addFood(&models.Food{Name: "Jalebi"})

	count, err := f.svc.IncrementShare(ctx, foodID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = f.svc.IncrementShare(ctx, foodID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestIncrementShareUnknownFoodIsNotFound(t *testing.T) {
	f := newEngagementFixture()

	_, err := f.svc.IncrementShare(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}
