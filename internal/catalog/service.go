// internal/catalog/service.go
package catalog

import "context"

// Service defines the interface for the game catalog service.
type Service interface {
	CreateGame(ctx context.Context, title, description, category string) (*Game, error)
	GetGameByTitle(ctx context.Context, title string) (*Game, error)
	ListGames(ctx context.Context) ([]*Game, error)
	UpdateGame(ctx context.Context, title, description, category string) (*Game, error)
	DeleteGame(ctx context.Context, title string) error
}
