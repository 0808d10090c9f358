// internal/events/registration.go
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

// registrationService implements the RegistrationService interface.
type registrationService struct {
	registrations RegistrationStore
	events        Store
	users         UserStore
	locks         *eventLocks
	tracer        trace.Tracer
	now           func() time.Time
}

// NewRegistrationService creates a new event registration engine instance.
func NewRegistrationService(registrations RegistrationStore, events Store, users UserStore) RegistrationService {
	return &registrationService{
		registrations: registrations,
		events:        events,
		users:         users,
		locks:         newEventLocks(),
		tracer:        otel.Tracer("gameshelf/events"),
		now:           time.Now,
	}
}

// Register enrolls a user in an event. The capacity, start-time and
// duplicate checks and the insert run under a per-event lock so concurrent
// registrations cannot overfill an event; the store backs the same
// invariants with its own constraints.
func (s *registrationService) Register(ctx context.Context, participantID int64, eventID uuid.UUID) (*EventRegistration, error) {
	ctx, span := s.tracer.Start(ctx, "events.register",
		trace.WithAttributes(
			attribute.Int64("participant.id", participantID),
			attribute.String("event.id", eventID.String()),
		),
	)
	defer span.End()

	if participantID == 0 || eventID == uuid.Nil {
		return nil, apperr.BadRequest("participant id and event id are required")
	}

	participant, err := s.users.FindByID(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up participant %d: %w", participantID, err)
	}
	if participant == nil {
		return nil, apperr.NotFound("user with id %d not found", participantID)
	}

	lock := s.locks.get(eventID)
	lock.Lock()
	defer lock.Unlock()

	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up event: %w", err)
	}
	if event == nil {
		s.locks.forget(eventID)
		return nil, apperr.NotFound("event with id %s not found", eventID)
	}

	count, err := s.registrations.CountByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to count registrations: %w", err)
	}
	if count >= event.MaxParticipants {
		return nil, apperr.BadRequest("event is already full")
	}

	if !event.StartsAt().After(s.now()) {
		return nil, apperr.BadRequest("cannot register for an event that has already started")
	}

	existing, err := s.registrations.Find(ctx, participantID, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up registration: %w", err)
	}
	if existing != nil {
		return nil, apperr.BadRequest("user is already registered for this event")
	}

	reg := &EventRegistration{
		ParticipantID: participantID,
		EventID:       eventID,
		Status:        ParticipationPending,
	}
	if err := s.registrations.Insert(ctx, reg); err != nil {
		return nil, fmt.Errorf("failed to insert registration: %w", err)
	}
	return reg, nil
}

// GetRegistration retrieves one registration by its (participant, event)
// pair.
func (s *registrationService) GetRegistration(ctx context.Context, participantID int64, eventID uuid.UUID) (*EventRegistration, error) {
	return s.findRegistration(ctx, participantID, eventID)
}

// ListByEvent returns every registration for one event.
func (s *registrationService) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*EventRegistration, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up event: %w", err)
	}
	if event == nil {
		return nil, apperr.NotFound("event with id %s not found", eventID)
	}
	return s.registrations.FindAllByEvent(ctx, eventID)
}

// ListByUser returns every registration held by one user.
func (s *registrationService) ListByUser(ctx context.Context, userID int64) ([]*EventRegistration, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user %d: %w", userID, err)
	}
	if user == nil {
		return nil, apperr.NotFound("user with id %d not found", userID)
	}
	return s.registrations.FindAllByUser(ctx, userID)
}

// ListAll returns every registration in the system.
func (s *registrationService) ListAll(ctx context.Context) ([]*EventRegistration, error) {
	return s.registrations.FindAll(ctx)
}

// CancelRegistration withdraws a user from an event. Cancellation closes at
// the same moment registration does: once the event has started the
// registration stands.
func (s *registrationService) CancelRegistration(ctx context.Context, participantID int64, eventID uuid.UUID) error {
	ctx, span := s.tracer.Start(ctx, "events.cancel_registration",
		trace.WithAttributes(
			attribute.Int64("participant.id", participantID),
			attribute.String("event.id", eventID.String()),
		),
	)
	defer span.End()

	if _, err := s.findRegistration(ctx, participantID, eventID); err != nil {
		return err
	}

	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("failed to look up event: %w", err)
	}
	if event == nil {
		return apperr.NotFound("event with id %s not found", eventID)
	}
	if !event.StartsAt().After(s.now()) {
		return apperr.BadRequest("cannot cancel a registration for an event that has already started")
	}

	if err := s.registrations.Delete(ctx, participantID, eventID); err != nil {
		return fmt.Errorf("failed to delete registration: %w", err)
	}
	return nil
}

func (s *registrationService) findRegistration(ctx context.Context, participantID int64, eventID uuid.UUID) (*EventRegistration, error) {
	reg, err := s.registrations.Find(ctx, participantID, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up registration: %w", err)
	}
	if reg == nil {
		return nil, apperr.NotFound("registration for user %d and event %s not found", participantID, eventID)
	}
	return reg, nil
}
