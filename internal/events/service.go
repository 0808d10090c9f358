// internal/events/service.go
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventDetails carries the creator-supplied fields of a new event.
type EventDetails struct {
	Name            string
	Date            time.Time
	StartTime       time.Time
	Location        string
	Description     string
	MaxParticipants int
	GameTitle       string
}

// Service defines the interface for the event scheduling engine.
type Service interface {
	CreateEvent(ctx context.Context, details EventDetails, creatorID int64) (*Event, error)
	GetEvent(ctx context.Context, eventID uuid.UUID) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	ListByUserRegistration(ctx context.Context, userID int64) ([]*Event, error)
	UpdateDescription(ctx context.Context, eventID uuid.UUID, description string) error
	DeleteEvent(ctx context.Context, eventID uuid.UUID) error
	DeleteExpiredEvents(ctx context.Context) (int, error)
}

// RegistrationService defines the interface for the event registration
// engine.
type RegistrationService interface {
	Register(ctx context.Context, participantID int64, eventID uuid.UUID) (*EventRegistration, error)
	GetRegistration(ctx context.Context, participantID int64, eventID uuid.UUID) (*EventRegistration, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*EventRegistration, error)
	ListByUser(ctx context.Context, userID int64) ([]*EventRegistration, error)
	ListAll(ctx context.Context) ([]*EventRegistration, error)
	CancelRegistration(ctx context.Context, participantID int64, eventID uuid.UUID) error
}
