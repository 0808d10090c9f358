// internal/collection/postgres.go
package collection

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"gameshelf/internal/apperr"
)

// PostgresStore implements Store on a PostgreSQL read model. The
// (owner_id, game_title) primary key backs the one-copy-per-pair invariant.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a Postgres-backed copy store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByOwnerAndTitle(ctx context.Context, ownerID int64, title string) (*GameCopy, error) {
	query := `
		SELECT owner_id, game_title, description, status
		FROM game_copies
		WHERE owner_id = $1 AND game_title = $2
	`
	c := &GameCopy{}
	err := s.db.QueryRowContext(ctx, query, ownerID, title).Scan(&c.OwnerID, &c.GameTitle, &c.Description, &c.Status)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("query copy: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) FindAllByOwner(ctx context.Context, ownerID int64) ([]*GameCopy, error) {
	query := `
		SELECT owner_id, game_title, description, status
		FROM game_copies
		WHERE owner_id = $1
		ORDER BY game_title
	`
	return s.queryCopies(ctx, query, ownerID)
}

func (s *PostgresStore) FindAll(ctx context.Context) ([]*GameCopy, error) {
	query := `
		SELECT owner_id, game_title, description, status
		FROM game_copies
		ORDER BY owner_id, game_title
	`
	return s.queryCopies(ctx, query)
}

func (s *PostgresStore) queryCopies(ctx context.Context, query string, args ...any) ([]*GameCopy, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query copies: %w", err)
	}
	defer rows.Close()

	var copies []*GameCopy
	for rows.Next() {
		c := &GameCopy{}
		if err := rows.Scan(&c.OwnerID, &c.GameTitle, &c.Description, &c.Status); err != nil {
			return nil, fmt.Errorf("scan copy: %w", err)
		}
		copies = append(copies, c)
	}
	return copies, rows.Err()
}

func (s *PostgresStore) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM game_copies WHERE owner_id = $1`, ownerID).Scan(&n)
	return n, err
}

func (s *PostgresStore) Insert(ctx context.Context, c *GameCopy) error {
	query := `
		INSERT INTO game_copies (owner_id, game_title, description, status)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(ctx, query, c.OwnerID, c.GameTitle, c.Description, c.Status)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return apperr.Conflict("user already owns a copy of the game %q", c.GameTitle)
	}
	return err
}

func (s *PostgresStore) Update(ctx context.Context, c *GameCopy) error {
	query := `
		UPDATE game_copies
		SET description = $1, status = $2
		WHERE owner_id = $3 AND game_title = $4
	`
	_, err := s.db.ExecContext(ctx, query, c.Description, c.Status, c.OwnerID, c.GameTitle)
	return err
}

func (s *PostgresStore) Delete(ctx context.Context, ownerID int64, title string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM game_copies WHERE owner_id = $1 AND game_title = $2`, ownerID, title)
	return err
}
