// internal/lending/store.go
package lending

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gameshelf/internal/account"
	"gameshelf/internal/collection"
)

// Store is the persistence contract for borrow requests. FindByID returns
// (nil, nil) when no request matches.
type Store interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BorrowRequest, error)
	FindAll(ctx context.Context) ([]*BorrowRequest, error)
	FindByBorrower(ctx context.Context, borrowerID int64) ([]*BorrowRequest, error)
	FindByBorrowerAndTitle(ctx context.Context, borrowerID int64, title string) ([]*BorrowRequest, error)
	Insert(ctx context.Context, r *BorrowRequest) error
	// Decide transitions a PENDING request to status and stamps the decision
	// date. When status is ACCEPTED, the target copy is set to BORROWED in the
	// same transaction. Returns false when the request had already left
	// PENDING, so a second decision cannot overwrite the first.
	Decide(ctx context.Context, id uuid.UUID, status RequestStatus, decisionDate time.Time) (bool, error)
	DeleteByCopy(ctx context.Context, ownerID int64, title string) error
}

// UserStore is the slice of the account store the engine needs.
type UserStore interface {
	FindByID(ctx context.Context, id int64) (*account.UserAccount, error)
}

// CopyStore is the slice of the game copy registry the engine needs.
type CopyStore interface {
	FindByOwnerAndTitle(ctx context.Context, ownerID int64, title string) (*collection.GameCopy, error)
}
