// internal/collection/service.go
package collection

import "context"

// Service defines the interface for the game copy registry.
type Service interface {
	CreateCopy(ctx context.Context, ownerID int64, title, description string) (*GameCopy, error)
	GetCopy(ctx context.Context, ownerID int64, title string) (*GameCopy, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*GameCopy, error)
	ListAll(ctx context.Context) ([]*GameCopy, error)
	UpdateStatus(ctx context.Context, ownerID int64, title, status string) error
	UpdateDescription(ctx context.Context, ownerID int64, title, description string) error
	DeleteCopy(ctx context.Context, ownerID int64, title string) error
}
