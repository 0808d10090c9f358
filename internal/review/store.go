// internal/review/store.go
package review

import (
	"context"

	"gameshelf/internal/account"
	"gameshelf/internal/catalog"
)

// Store is the persistence contract for reviews. Find returns (nil, nil)
// when no review matches.
type Store interface {
	Find(ctx context.Context, reviewerID int64, gameTitle string) (*Review, error)
	FindAllByReviewer(ctx context.Context, reviewerID int64) ([]*Review, error)
	FindAllByGame(ctx context.Context, gameTitle string) ([]*Review, error)
	Insert(ctx context.Context, r *Review) error
	Delete(ctx context.Context, reviewerID int64, gameTitle string) error
}

// UserStore is the slice of the account store the review service needs.
type UserStore interface {
	FindByID(ctx context.Context, id int64) (*account.UserAccount, error)
}

// GameStore is the slice of the catalog store the review service needs.
type GameStore interface {
	FindByTitle(ctx context.Context, title string) (*catalog.Game, error)
}
