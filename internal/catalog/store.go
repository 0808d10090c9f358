// internal/catalog/store.go
package catalog

import "context"

// Store is the persistence contract for catalog entries. FindByTitle returns
// (nil, nil) when no game matches.
type Store interface {
	FindByTitle(ctx context.Context, title string) (*Game, error)
	FindAll(ctx context.Context) ([]*Game, error)
	Insert(ctx context.Context, g *Game) error
	Update(ctx context.Context, g *Game) error
	Delete(ctx context.Context, title string) error
}
