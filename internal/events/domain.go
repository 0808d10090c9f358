// internal/events/domain.go
package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is a scheduled play session for one game. Date and StartTime are
// naive local values: Date carries the calendar day, StartTime carries the
// clock time, and the two combine into the moment the event begins.
// MaxParticipants is fixed at creation.
type Event struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Date            time.Time `json:"date"`
	StartTime       time.Time `json:"start_time"`
	Location        string    `json:"location"`
	Description     string    `json:"description"`
	MaxParticipants int       `json:"max_participants"`
	GameTitle       string    `json:"game_title"`
	CreatorID       int64     `json:"creator_id"`
}

// StartsAt combines the event's date and clock time.
func (e *Event) StartsAt() time.Time {
	y, m, d := e.Date.Date()
	return time.Date(y, m, d, e.StartTime.Hour(), e.StartTime.Minute(), 0, 0, time.UTC)
}

// ParticipationStatus tracks a registrant's standing for an event.
type ParticipationStatus string

const (
	ParticipationPending ParticipationStatus = "PENDING"
	ParticipationAttend  ParticipationStatus = "ATTEND"
	ParticipationAbsent  ParticipationStatus = "ABSENT"
)

// EventRegistration enrolls one user in one event. The (participant, event)
// pair is its identity; a user registers for an event at most once.
type EventRegistration struct {
	ParticipantID int64               `json:"participant_id"`
	EventID       uuid.UUID           `json:"event_id"`
	Status        ParticipationStatus `json:"participation_status"`
}

// toDate strips the time-of-day component.
func toDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
