// internal/review/review_test.go
package review_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameshelf/internal/account"
	"gameshelf/internal/apperr"
	"gameshelf/internal/catalog"
	"gameshelf/internal/memstore"
	"gameshelf/internal/review"
)

func setup(t *testing.T) (review.Service, *account.UserAccount) {
	t.Helper()
	ctx := context.Background()
	store := memstore.New()

	user := &account.UserAccount{Name: "Alice", Email: "alice@example.com", AccountType: account.AccountTypePlayer}
	require.NoError(t, store.Users().Insert(ctx, user))
	require.NoError(t, store.Games().Insert(ctx, &catalog.Game{Title: "Catan"}))

	return review.NewService(store.Reviews(), store.Users(), store.Games()), user
}

func TestCreateReview(t *testing.T) {
	ctx := context.Background()
	svc, user := setup(t)

	rev, err := svc.CreateReview(ctx, user.ID, "Catan", 4, "Great with four players")
	require.NoError(t, err)
	assert.Equal(t, 4, rev.Rating)
	assert.False(t, rev.Date.IsZero())
}

func TestCreateReviewValidation(t *testing.T) {
	ctx := context.Background()
	svc, user := setup(t)

	_, err := svc.CreateReview(ctx, 999, "Catan", 4, "")
	assert.True(t, apperr.IsNotFound(err))

	_, err = svc.CreateReview(ctx, user.ID, "Azul", 4, "")
	assert.True(t, apperr.IsNotFound(err))

	_, err = svc.CreateReview(ctx, user.ID, "Catan", 0, "")
	assert.True(t, apperr.IsBadRequest(err))

	_, err = svc.CreateReview(ctx, user.ID, "Catan", 6, "")
	assert.True(t, apperr.IsBadRequest(err))
}

func TestCreateReviewTwiceConflicts(t *testing.T) {
	ctx := context.Background()
	svc, user := setup(t)

	_, err := svc.CreateReview(ctx, user.ID, "Catan", 4, "")
	require.NoError(t, err)

	_, err = svc.CreateReview(ctx, user.ID, "Catan", 5, "")
	assert.True(t, apperr.IsConflict(err))
}

func TestListReviews(t *testing.T) {
	ctx := context.Background()
	svc, user := setup(t)

	_, err := svc.ListByReviewer(ctx, user.ID)
	assert.True(t, apperr.IsNotFound(err))

	_, err = svc.ListByGame(ctx, "Catan")
	assert.True(t, apperr.IsNotFound(err))

	_, err = svc.CreateReview(ctx, user.ID, "Catan", 5, "")
	require.NoError(t, err)

	byUser, err := svc.ListByReviewer(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, byUser, 1)

	byGame, err := svc.ListByGame(ctx, "Catan")
	require.NoError(t, err)
	assert.Len(t, byGame, 1)
}

func TestDeleteReview(t *testing.T) {
	ctx := context.Background()
	svc, user := setup(t)

	_, err := svc.CreateReview(ctx, user.ID, "Catan", 3, "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteReview(ctx, user.ID, "Catan"))

	_, err = svc.GetReview(ctx, user.ID, "Catan")
	assert.True(t, apperr.IsNotFound(err))

	err = svc.DeleteReview(ctx, user.ID, "Catan")
	assert.True(t, apperr.IsNotFound(err))
}
