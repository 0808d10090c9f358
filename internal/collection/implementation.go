// internal/collection/implementation.go
package collection

import (
	"context"
	"fmt"

	"gameshelf/internal/apperr"
)

// service implements the Service interface.
type service struct {
	store    Store
	users    UserStore
	games    GameStore
	requests RequestPurger
}

// NewService creates a new game copy registry instance.
func NewService(store Store, users UserStore, games GameStore, requests RequestPurger) Service {
	return &service{
		store:    store,
		users:    users,
		games:    games,
		requests: requests,
	}
}

// CreateCopy registers a physical copy for an owner. Only game owners may own
// copies, and each owner has at most one copy per title.
func (s *service) CreateCopy(ctx context.Context, ownerID int64, title, description string) (*GameCopy, error) {
	owner, err := s.users.FindByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up owner %d: %w", ownerID, err)
	}
	if owner == nil {
		return nil, apperr.NotFound("user account with id %d not found", ownerID)
	}
	if !owner.IsGameOwner() {
		return nil, apperr.Forbidden("only game owners can own game copies")
	}

	game, err := s.games.FindByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("failed to look up game %q: %w", title, err)
	}
	if game == nil {
		return nil, apperr.NotFound("game with title %q not found", title)
	}

	existing, err := s.store.FindByOwnerAndTitle(ctx, ownerID, title)
	if err != nil {
		return nil, fmt.Errorf("failed to look up copy: %w", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("user already owns a copy of the game %q", title)
	}

	copy := &GameCopy{
		OwnerID:     ownerID,
		GameTitle:   title,
		Description: description,
		Status:      StatusAvailable,
	}
	if err := s.store.Insert(ctx, copy); err != nil {
		return nil, fmt.Errorf("failed to insert copy: %w", err)
	}
	return copy, nil
}

// GetCopy retrieves one copy by its (owner, title) key.
func (s *service) GetCopy(ctx context.Context, ownerID int64, title string) (*GameCopy, error) {
	return s.findCopy(ctx, ownerID, title)
}

// ListByOwner returns every copy registered by one owner.
func (s *service) ListByOwner(ctx context.Context, ownerID int64) ([]*GameCopy, error) {
	owner, err := s.users.FindByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up owner %d: %w", ownerID, err)
	}
	if owner == nil {
		return nil, apperr.NotFound("user account with id %d not found", ownerID)
	}
	return s.store.FindAllByOwner(ctx, ownerID)
}

// ListAll returns every registered copy.
func (s *service) ListAll(ctx context.Context) ([]*GameCopy, error) {
	return s.store.FindAll(ctx)
}

// UpdateStatus sets a copy's status. The status string must name a known
// state.
func (s *service) UpdateStatus(ctx context.Context, ownerID int64, title, status string) error {
	copy, err := s.findCopy(ctx, ownerID, title)
	if err != nil {
		return err
	}

	parsed, err := ParseCopyStatus(status)
	if err != nil {
		return err
	}
	copy.Status = parsed

	if err := s.store.Update(ctx, copy); err != nil {
		return fmt.Errorf("failed to update copy: %w", err)
	}
	return nil
}

// UpdateDescription overwrites a copy's description.
func (s *service) UpdateDescription(ctx context.Context, ownerID int64, title, description string) error {
	if description == "" {
		return apperr.BadRequest("description cannot be empty")
	}

	copy, err := s.findCopy(ctx, ownerID, title)
	if err != nil {
		return err
	}
	copy.Description = description

	if err := s.store.Update(ctx, copy); err != nil {
		return fmt.Errorf("failed to update copy: %w", err)
	}
	return nil
}

// DeleteCopy removes a copy and every borrow request that references it. A
// borrowed copy cannot be deleted.
func (s *service) DeleteCopy(ctx context.Context, ownerID int64, title string) error {
	copy, err := s.findCopy(ctx, ownerID, title)
	if err != nil {
		return err
	}
	if copy.Status == StatusBorrowed {
		return apperr.Forbidden("game copy %q is borrowed and cannot be deleted", title)
	}

	if err := s.requests.DeleteByCopy(ctx, ownerID, title); err != nil {
		return fmt.Errorf("failed to delete borrow requests for copy: %w", err)
	}
	if err := s.store.Delete(ctx, ownerID, title); err != nil {
		return fmt.Errorf("failed to delete copy: %w", err)
	}
	return nil
}

func (s *service) findCopy(ctx context.Context, ownerID int64, title string) (*GameCopy, error) {
	copy, err := s.store.FindByOwnerAndTitle(ctx, ownerID, title)
	if err != nil {
		return nil, fmt.Errorf("failed to look up copy: %w", err)
	}
	if copy == nil {
		return nil, apperr.NotFound("game copy of %q owned by user %d not found", title, ownerID)
	}
	return copy, nil
}
