// internal/events/postgres.go
package events

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"gameshelf/internal/apperr"
)

// PostgresStore implements Store on a PostgreSQL read model.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a Postgres-backed event store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const eventColumns = `id, name, date, start_time, location, description, max_participants, game_title, creator_id`

func (s *PostgresStore) FindByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e := &Event{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.Date, &e.StartTime, &e.Location,
		&e.Description, &e.MaxParticipants, &e.GameTitle, &e.CreatorID,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("query event: %w", err)
	}
	return e, nil
}

func (s *PostgresStore) FindAll(ctx context.Context) ([]*Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY date, start_time`
	return s.queryEvents(ctx, query)
}

func (s *PostgresStore) FindByRegistrant(ctx context.Context, userID int64) ([]*Event, error) {
	query := `
		SELECT ` + eventColumns + ` FROM events
		WHERE id IN (SELECT event_id FROM event_registrations WHERE participant_id = $1)
		ORDER BY date, start_time
	`
	return s.queryEvents(ctx, query, userID)
}

func (s *PostgresStore) queryEvents(ctx context.Context, query string, args ...any) ([]*Event, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		e := &Event{}
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Date, &e.StartTime, &e.Location,
			&e.Description, &e.MaxParticipants, &e.GameTitle, &e.CreatorID,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *PostgresStore) Insert(ctx context.Context, e *Event) error {
	query := `
		INSERT INTO events (id, name, date, start_time, location, description, max_participants, game_title, creator_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(ctx, query,
		e.ID, e.Name, e.Date, e.StartTime, e.Location,
		e.Description, e.MaxParticipants, e.GameTitle, e.CreatorID,
	)
	return err
}

func (s *PostgresStore) UpdateDescription(ctx context.Context, id uuid.UUID, description string) error {
	_, err := s.db.ExecContext(ctx, `UPDATE events SET description = $1 WHERE id = $2`, description, id)
	return err
}

// Delete removes the event; its registrations go with it through the
// ON DELETE CASCADE on event_registrations.
func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	return err
}

func (s *PostgresStore) DeleteExpired(ctx context.Context, before time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE date < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("delete expired events: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count deleted events: %w", err)
	}
	return int(n), nil
}

// PostgresRegistrationStore implements RegistrationStore on PostgreSQL.
type PostgresRegistrationStore struct {
	db *sql.DB
}

// NewPostgresRegistrationStore creates a Postgres-backed registration store.
func NewPostgresRegistrationStore(db *sql.DB) *PostgresRegistrationStore {
	return &PostgresRegistrationStore{db: db}
}

func (s *PostgresRegistrationStore) Find(ctx context.Context, participantID int64, eventID uuid.UUID) (*EventRegistration, error) {
	query := `
		SELECT participant_id, event_id, status FROM event_registrations
		WHERE participant_id = $1 AND event_id = $2
	`
	r := &EventRegistration{}
	err := s.db.QueryRowContext(ctx, query, participantID, eventID).Scan(&r.ParticipantID, &r.EventID, &r.Status)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("query registration: %w", err)
	}
	return r, nil
}

func (s *PostgresRegistrationStore) FindAllByEvent(ctx context.Context, eventID uuid.UUID) ([]*EventRegistration, error) {
	query := `SELECT participant_id, event_id, status FROM event_registrations WHERE event_id = $1`
	return s.queryRegistrations(ctx, query, eventID)
}

func (s *PostgresRegistrationStore) FindAllByUser(ctx context.Context, userID int64) ([]*EventRegistration, error) {
	query := `SELECT participant_id, event_id, status FROM event_registrations WHERE participant_id = $1`
	return s.queryRegistrations(ctx, query, userID)
}

func (s *PostgresRegistrationStore) FindAll(ctx context.Context) ([]*EventRegistration, error) {
	query := `SELECT participant_id, event_id, status FROM event_registrations`
	return s.queryRegistrations(ctx, query)
}

func (s *PostgresRegistrationStore) queryRegistrations(ctx context.Context, query string, args ...any) ([]*EventRegistration, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query registrations: %w", err)
	}
	defer rows.Close()

	var regs []*EventRegistration
	for rows.Next() {
		r := &EventRegistration{}
		if err := rows.Scan(&r.ParticipantID, &r.EventID, &r.Status); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		regs = append(regs, r)
	}
	return regs, rows.Err()
}

func (s *PostgresRegistrationStore) CountByEvent(ctx context.Context, eventID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM event_registrations WHERE event_id = $1`, eventID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count registrations: %w", err)
	}
	return count, nil
}

// Insert admits a registrant under a row lock on the event, so capacity
// holds even when several processes register against the same event. The
// primary key on (participant_id, event_id) rejects duplicates.
func (s *PostgresRegistrationStore) Insert(ctx context.Context, reg *EventRegistration) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var max, count int
	err = tx.QueryRowContext(ctx, `
		SELECT e.max_participants,
		       (SELECT COUNT(*) FROM event_registrations r WHERE r.event_id = e.id)
		FROM events e
		WHERE e.id = $1
		FOR UPDATE OF e
	`, reg.EventID).Scan(&max, &count)
	if err != nil {
		if err == sql.ErrNoRows {
			return apperr.NotFound("event with id %s not found", reg.EventID)
		}
		return fmt.Errorf("lock event: %w", err)
	}
	if count >= max {
		return apperr.BadRequest("event is already full")
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO event_registrations (participant_id, event_id, status)
		VALUES ($1, $2, $3)
	`, reg.ParticipantID, reg.EventID, reg.Status)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return apperr.BadRequest("user is already registered for this event")
		}
		return fmt.Errorf("insert registration: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *PostgresRegistrationStore) Delete(ctx context.Context, participantID int64, eventID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM event_registrations WHERE participant_id = $1 AND event_id = $2`,
		participantID, eventID,
	)
	return err
}
