// internal/review/postgres.go
package review

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

// NewPostgresStore creates a Postgres-backed review store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const reviewColumns = `reviewer_id, game_title, rating, comment, date`

func (s *PostgresStore) Find(ctx context.Context, reviewerID int64, gameTitle string) (*Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE reviewer_id = $1 AND game_title = $2`
	r := &Review{}
	err := s.db.QueryRowContext(ctx, query, reviewerID, gameTitle).Scan(
		&r.ReviewerID, &r.GameTitle, &r.Rating, &r.Comment, &r.Date,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("query review: %w", err)
	}
	return r, nil
}

func (s *PostgresStore) FindAllByReviewer(ctx context.Context, reviewerID int64) ([]*Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE reviewer_id = $1 ORDER BY date`
	return s.queryReviews(ctx, query, reviewerID)
}

func (s *PostgresStore) FindAllByGame(ctx context.Context, gameTitle string) ([]*Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE game_title = $1 ORDER BY date`
	return s.queryReviews(ctx, query, gameTitle)
}

func (s *PostgresStore) queryReviews(ctx context.Context, query string, args ...any) ([]*Review, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*Review
	for rows.Next() {
		r := &Review{}
		if err := rows.Scan(&r.ReviewerID, &r.GameTitle, &r.Rating, &r.Comment, &r.Date); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}

func (s *PostgresStore) Insert(ctx context.Context, r *Review) error {
	query := `
		INSERT INTO reviews (reviewer_id, game_title, rating, comment, date)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query, r.ReviewerID, r.GameTitle, r.Rating, r.Comment, r.Date)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return apperr.Conflict("user %d already reviewed game %q", r.ReviewerID, r.GameTitle)
	}
	return err
}

func (s *PostgresStore) Delete(ctx context.Context, reviewerID int64, gameTitle string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM reviews WHERE reviewer_id = $1 AND game_title = $2`,
		reviewerID, gameTitle,
	)
	return err
}
