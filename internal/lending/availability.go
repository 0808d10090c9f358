// internal/lending/availability.go
package lending

import (
	"context"
	"fmt"
	"time"
)

// Resolver answers whether a user is entitled to use a game on a given date:
// owning a copy of the title always grants availability, otherwise the date
// must fall inside the window of one of the user's borrow requests for that
// title. The window check reads the user's requests regardless of status,
// matching the behavior this engine replaces; restricting it to ACCEPTED
// requests is a pending product decision.
type Resolver struct {
	copies   CopyStore
	requests Store
}

// NewResolver creates an availability resolver over the copy registry and the
// borrow request store.
func NewResolver(copies CopyStore, requests Store) *Resolver {
	return &Resolver{copies: copies, requests: requests}
}

// IsAvailable reports whether the user may use the game on eventDate. The
// time of day never influences the answer.
func (r *Resolver) IsAvailable(ctx context.Context, userID int64, gameTitle string, eventDate time.Time) (bool, error) {
	copy, err := r.copies.FindByOwnerAndTitle(ctx, userID, gameTitle)
	if err != nil {
		return false, fmt.Errorf("failed to look up copy: %w", err)
	}
	if copy != nil {
		return true, nil
	}

	requests, err := r.requests.FindByBorrowerAndTitle(ctx, userID, gameTitle)
	if err != nil {
		return false, fmt.Errorf("failed to look up borrow requests: %w", err)
	}
	for _, request := range requests {
		if request.CoversDate(eventDate) {
			return true, nil
		}
	}
	return false, nil
}
