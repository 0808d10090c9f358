// internal/collection/store.go
package collection

import (
	"context"

	"gameshelf/internal/account"
	"gameshelf/internal/catalog"
)

// Store is the persistence contract for game copies. FindByOwnerAndTitle
// returns (nil, nil) when no copy matches.
type Store interface {
	FindByOwnerAndTitle(ctx context.Context, ownerID int64, title string) (*GameCopy, error)
	FindAllByOwner(ctx context.Context, ownerID int64) ([]*GameCopy, error)
	FindAll(ctx context.Context) ([]*GameCopy, error)
	CountByOwner(ctx context.Context, ownerID int64) (int, error)
	Insert(ctx context.Context, c *GameCopy) error
	Update(ctx context.Context, c *GameCopy) error
	Delete(ctx context.Context, ownerID int64, title string) error
}

// UserStore is the slice of the account store the registry needs.
type UserStore interface {
	FindByID(ctx context.Context, id int64) (*account.UserAccount, error)
}

// GameStore is the slice of the catalog store the registry needs.
type GameStore interface {
	FindByTitle(ctx context.Context, title string) (*catalog.Game, error)
}

// RequestPurger removes every borrow request that references a copy. Deleting
// a copy cascades through it.
type RequestPurger interface {
	DeleteByCopy(ctx context.Context, ownerID int64, title string) error
}
