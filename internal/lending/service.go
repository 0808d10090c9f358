// internal/lending/service.go
package lending

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service defines the interface for the borrow lifecycle engine.
type Service interface {
	CreateBorrowRequest(ctx context.Context, borrowerID, ownerID int64, gameTitle string, startDate, endDate time.Time) (*BorrowRequest, error)
	AcceptRequest(ctx context.Context, requestID uuid.UUID) (*BorrowRequest, error)
	DeclineRequest(ctx context.Context, requestID uuid.UUID) (*BorrowRequest, error)
	GetRequest(ctx context.Context, requestID uuid.UUID) (*BorrowRequest, error)
	ListRequests(ctx context.Context) ([]*BorrowRequest, error)
	ListByBorrower(ctx context.Context, borrowerID int64) ([]*BorrowRequest, error)
}
