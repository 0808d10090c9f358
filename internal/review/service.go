// internal/review/service.go
package review

import "context"

// Service defines the interface for game reviews.
type Service interface {
	CreateReview(ctx context.Context, reviewerID int64, gameTitle string, rating int, comment string) (*Review, error)
	GetReview(ctx context.Context, reviewerID int64, gameTitle string) (*Review, error)
	ListByReviewer(ctx context.Context, reviewerID int64) ([]*Review, error)
	ListByGame(ctx context.Context, gameTitle string) ([]*Review, error)
	DeleteReview(ctx context.Context, reviewerID int64, gameTitle string) error
}
