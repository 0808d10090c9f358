// internal/events/implementation.go
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"gameshelf/internal/apperr"
)

// service implements the Service interface.
type service struct {
	store         Store
	registrations RegistrationStore
	users         UserStore
	games         GameStore
	requests      RequestFinder
	availability  AvailabilityChecker
	tracer        trace.Tracer
	now           func() time.Time
}

// NewService creates a new event scheduling engine instance.
func NewService(store Store, registrations RegistrationStore, users UserStore, games GameStore, requests RequestFinder, availability AvailabilityChecker) Service {
	return &service{
		store:         store,
		registrations: registrations,
		users:         users,
		games:         games,
		requests:      requests,
		availability:  availability,
		tracer:        otel.Tracer("gameshelf/events"),
		now:           time.Now,
	}
}

// CreateEvent schedules a play session. Game owners may host events for any
// game they own a copy of; players qualify through a borrow request for the
// title, and either way the game must be available to the creator on the
// event date.
func (s *service) CreateEvent(ctx context.Context, details EventDetails, creatorID int64) (*Event, error) {
	ctx, span := s.tracer.Start(ctx, "events.create",
		trace.WithAttributes(
			attribute.Int64("creator.id", creatorID),
			attribute.String("game.title", details.GameTitle),
		),
	)
	defer span.End()

	creator, err := s.users.FindByID(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up creator %d: %w", creatorID, err)
	}
	if creator == nil {
		return nil, apperr.NotFound("user with id %d not found", creatorID)
	}

	game, err := s.games.FindByTitle(ctx, details.GameTitle)
	if err != nil {
		return nil, fmt.Errorf("failed to look up game %q: %w", details.GameTitle, err)
	}
	if game == nil {
		return nil, apperr.NotFound("game with title %q not found", details.GameTitle)
	}

	if !creator.IsGameOwner() {
		requests, err := s.requests.FindByBorrowerAndTitle(ctx, creatorID, game.Title)
		if err != nil {
			return nil, fmt.Errorf("failed to look up borrow requests: %w", err)
		}
		if len(requests) == 0 {
			return nil, apperr.Forbidden("user is not authorized to create an event for this game")
		}
	}

	if details.Name == "" || details.Location == "" || details.Description == "" ||
		details.MaxParticipants <= 0 || details.Date.IsZero() || details.StartTime.IsZero() {
		return nil, apperr.BadRequest("invalid event details")
	}

	available, err := s.availability.IsAvailable(ctx, creatorID, game.Title, details.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve availability: %w", err)
	}
	if !available {
		return nil, apperr.BadRequest("the game %q is not available at the specified date/time", game.Title)
	}

	event := &Event{
		ID:              uuid.New(),
		Name:            details.Name,
		Date:            toDate(details.Date),
		StartTime:       details.StartTime,
		Location:        details.Location,
		Description:     details.Description,
		MaxParticipants: details.MaxParticipants,
		GameTitle:       game.Title,
		CreatorID:       creatorID,
	}
	if err := s.store.Insert(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}

	span.SetAttributes(attribute.String("event.id", event.ID.String()))
	return event, nil
}

// GetEvent retrieves one event by id.
func (s *service) GetEvent(ctx context.Context, eventID uuid.UUID) (*Event, error) {
	return s.findEvent(ctx, eventID)
}

// ListEvents returns every scheduled event.
func (s *service) ListEvents(ctx context.Context) ([]*Event, error) {
	return s.store.FindAll(ctx)
}

// ListByUserRegistration returns the events a user is registered for.
func (s *service) ListByUserRegistration(ctx context.Context, userID int64) ([]*Event, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user %d: %w", userID, err)
	}
	if user == nil {
		return nil, apperr.NotFound("user with id %d not found", userID)
	}
	return s.store.FindByRegistrant(ctx, userID)
}

// UpdateDescription overwrites an event's description. The new text is taken
// as-is.
func (s *service) UpdateDescription(ctx context.Context, eventID uuid.UUID, description string) error {
	if _, err := s.findEvent(ctx, eventID); err != nil {
		return err
	}
	if err := s.store.UpdateDescription(ctx, eventID, description); err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	return nil
}

// DeleteEvent removes an event together with its registrations.
func (s *service) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	if _, err := s.findEvent(ctx, eventID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// DeleteExpiredEvents removes every event dated strictly before today and
// returns the count. Running it again immediately deletes nothing.
func (s *service) DeleteExpiredEvents(ctx context.Context) (int, error) {
	ctx, span := s.tracer.Start(ctx, "events.delete_expired")
	defer span.End()

	deleted, err := s.store.DeleteExpired(ctx, toDate(s.now()))
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired events: %w", err)
	}

	span.SetAttributes(attribute.Int("events.deleted", deleted))
	return deleted, nil
}

func (s *service) findEvent(ctx context.Context, eventID uuid.UUID) (*Event, error) {
	event, err := s.store.FindByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up event: %w", err)
	}
	if event == nil {
		return nil, apperr.NotFound("event with id %s not found", eventID)
	}
	return event, nil
}
