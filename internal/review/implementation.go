// internal/review/implementation.go
package review

import (
	"context"
	"fmt"
	"time"

	"gameshelf/internal/apperr"
)

// service implements the Service interface.
type service struct {
	store Store
	users UserStore
	games GameStore
	now   func() time.Time
}

// NewService creates a new review service instance.
func NewService(store Store, users UserStore, games GameStore) Service {
	return &service{store: store, users: users, games: games, now: time.Now}
}

// CreateReview records one user's rating of a game, dated today.
func (s *service) CreateReview(ctx context.Context, reviewerID int64, gameTitle string, rating int, comment string) (*Review, error) {
	reviewer, err := s.users.FindByID(ctx, reviewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up reviewer %d: %w", reviewerID, err)
	}
	if reviewer == nil {
		return nil, apperr.NotFound("user with id %d not found", reviewerID)
	}

	game, err := s.games.FindByTitle(ctx, gameTitle)
	if err != nil {
		return nil, fmt.Errorf("failed to look up game %q: %w", gameTitle, err)
	}
	if game == nil {
		return nil, apperr.NotFound("game with title %q not found", gameTitle)
	}

	if rating < 1 || rating > 5 {
		return nil, apperr.BadRequest("rating must be between 1 and 5")
	}

	review := &Review{
		ReviewerID: reviewerID,
		GameTitle:  game.Title,
		Rating:     rating,
		Comment:    comment,
		Date:       s.now(),
	}
	if err := s.store.Insert(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to insert review: %w", err)
	}
	return review, nil
}

// GetReview retrieves one review by its (reviewer, game) pair.
func (s *service) GetReview(ctx context.Context, reviewerID int64, gameTitle string) (*Review, error) {
	return s.findReview(ctx, reviewerID, gameTitle)
}

// ListByReviewer returns every review a user wrote. A user with no reviews
// is reported as not found rather than with an empty list.
func (s *service) ListByReviewer(ctx context.Context, reviewerID int64) ([]*Review, error) {
	reviews, err := s.store.FindAllByReviewer(ctx, reviewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up reviews: %w", err)
	}
	if len(reviews) == 0 {
		return nil, apperr.NotFound("no reviews found for user with id %d", reviewerID)
	}
	return reviews, nil
}

// ListByGame returns every review of a game, or not found when there are
// none.
func (s *service) ListByGame(ctx context.Context, gameTitle string) ([]*Review, error) {
	reviews, err := s.store.FindAllByGame(ctx, gameTitle)
	if err != nil {
		return nil, fmt.Errorf("failed to look up reviews: %w", err)
	}
	if len(reviews) == 0 {
		return nil, apperr.NotFound("no reviews found for game with title %q", gameTitle)
	}
	return reviews, nil
}

// DeleteReview removes one review.
func (s *service) DeleteReview(ctx context.Context, reviewerID int64, gameTitle string) error {
	if _, err := s.findReview(ctx, reviewerID, gameTitle); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, reviewerID, gameTitle); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}

func (s *service) findReview(ctx context.Context, reviewerID int64, gameTitle string) (*Review, error) {
	review, err := s.store.Find(ctx, reviewerID, gameTitle)
	if err != nil {
		return nil, fmt.Errorf("failed to look up review: %w", err)
	}
	if review == nil {
		return nil, apperr.NotFound("review by user %d for game %q not found", reviewerID, gameTitle)
	}
	return review, nil
}
