// internal/catalog/postgres.go
package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"gameshelf/internal/apperr"
)

// PostgresStore implements Store on a PostgreSQL read model.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a Postgres-backed catalog store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByTitle(ctx context.Context, title string) (*Game, error) {
	query := `
		SELECT title, description, category
		FROM games
		WHERE title = $1
	`
	g := &Game{}
	err := s.db.QueryRowContext(ctx, query, title).Scan(&g.Title, &g.Description, &g.Category)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("query game: %w", err)
	}
	return g, nil
}

func (s *PostgresStore) FindAll(ctx context.Context) ([]*Game, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT title, description, category FROM games ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()

	var games []*Game
	for rows.Next() {
		g := &Game{}
		if err := rows.Scan(&g.Title, &g.Description, &g.Category); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

func (s *PostgresStore) Insert(ctx context.Context, g *Game) error {
	query := `
		INSERT INTO games (title, description, category)
		VALUES ($1, $2, $3)
	`
	_, err := s.db.ExecContext(ctx, query, g.Title, g.Description, g.Category)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return apperr.Conflict("game with title %q already exists", g.Title)
	}
	return err
}

func (s *PostgresStore) Update(ctx context.Context, g *Game) error {
	query := `
		UPDATE games
		SET description = $1, category = $2
		WHERE title = $3
	`
	_, err := s.db.ExecContext(ctx, query, g.Description, g.Category, g.Title)
	return err
}

func (s *PostgresStore) Delete(ctx context.Context, title string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM games WHERE title = $1`, title)
	return err
}
