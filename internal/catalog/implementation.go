// internal/catalog/implementation.go
package catalog

import (
	"context"
	"fmt"
	"strings"

	"gameshelf/internal/apperr"
)

// service implements the Service interface.
type service struct {
	store Store
}

// NewService creates a new catalog service instance.
func NewService(store Store) Service {
	return &service{store: store}
}

// CreateGame adds a new game to the catalog. Titles are unique.
func (s *service) CreateGame(ctx context.Context, title, description, category string) (*Game, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperr.BadRequest("title cannot be empty")
	}

	existing, err := s.store.FindByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("failed to look up game: %w", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("game with title %q already exists", title)
	}

	game := &Game{Title: title, Description: description, Category: category}
	if err := s.store.Insert(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to insert game: %w", err)
	}
	return game, nil
}

// GetGameByTitle retrieves a game by its title.
func (s *service) GetGameByTitle(ctx context.Context, title string) (*Game, error) {
	return s.findGame(ctx, title)
}

// ListGames returns all cataloged games.
func (s *service) ListGames(ctx context.Context) ([]*Game, error) {
	return s.store.FindAll(ctx)
}

// UpdateGame overwrites a game's description and category.
func (s *service) UpdateGame(ctx context.Context, title, description, category string) (*Game, error) {
	game, err := s.findGame(ctx, title)
	if err != nil {
		return nil, err
	}

	game.Description = description
	game.Category = category
	if err := s.store.Update(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}
	return game, nil
}

// DeleteGame removes a game from the catalog.
func (s *service) DeleteGame(ctx context.Context, title string) error {
	if _, err := s.findGame(ctx, title); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, title); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}

func (s *service) findGame(ctx context.Context, title string) (*Game, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperr.BadRequest("title cannot be empty")
	}
	game, err := s.store.FindByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("failed to look up game: %w", err)
	}
	if game == nil {
		return nil, apperr.NotFound("game with title %q not found", title)
	}
	return game, nil
}
