// internal/events/store.go
package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gameshelf/internal/account"
	"gameshelf/internal/catalog"
	"gameshelf/internal/lending"
)

// Store is the persistence contract for events. FindByID returns (nil, nil)
// when no event matches. Delete removes the event's registrations with it.
type Store interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Event, error)
	FindAll(ctx context.Context) ([]*Event, error)
	FindByRegistrant(ctx context.Context, userID int64) ([]*Event, error)
	Insert(ctx context.Context, e *Event) error
	UpdateDescription(ctx context.Context, id uuid.UUID, description string) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteExpired removes every event dated strictly before the given day
	// and reports how many went.
	DeleteExpired(ctx context.Context, before time.Time) (int, error)
}

// RegistrationStore is the persistence contract for event registrations.
// Find returns (nil, nil) when no registration matches. Insert fails with a
// BadRequest error when the event is full or the pair already exists, so the
// admission invariants hold even across processes.
type RegistrationStore interface {
	Find(ctx context.Context, participantID int64, eventID uuid.UUID) (*EventRegistration, error)
	FindAllByEvent(ctx context.Context, eventID uuid.UUID) ([]*EventRegistration, error)
	FindAllByUser(ctx context.Context, userID int64) ([]*EventRegistration, error)
	FindAll(ctx context.Context) ([]*EventRegistration, error)
	CountByEvent(ctx context.Context, eventID uuid.UUID) (int, error)
	Insert(ctx context.Context, reg *EventRegistration) error
	Delete(ctx context.Context, participantID int64, eventID uuid.UUID) error
}

// UserStore is the slice of the account store the engines need.
type UserStore interface {
	FindByID(ctx context.Context, id int64) (*account.UserAccount, error)
}

// GameStore is the slice of the catalog store the scheduling engine needs.
type GameStore interface {
	FindByTitle(ctx context.Context, title string) (*catalog.Game, error)
}

// RequestFinder exposes a user's borrow requests for one title; players are
// authorized to host an event only when at least one exists.
type RequestFinder interface {
	FindByBorrowerAndTitle(ctx context.Context, borrowerID int64, title string) ([]*lending.BorrowRequest, error)
}

// AvailabilityChecker gates event creation on the creator's entitlement to
// the game at the event date. lending.Resolver implements it.
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, userID int64, gameTitle string, eventDate time.Time) (bool, error)
}
