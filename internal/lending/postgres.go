// internal/lending/postgres.go
package lending

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PostgresStore implements Store on a PostgreSQL read model.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a Postgres-backed borrow request store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const requestColumns = `id, status, request_date, decision_date, start_date, end_date, borrower_id, owner_id, game_title`

func (s *PostgresStore) FindByID(ctx context.Context, id uuid.UUID) (*BorrowRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM borrow_requests WHERE id = $1`
	r := &BorrowRequest{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&r.ID, &r.Status, &r.RequestDate, &r.DecisionDate,
		&r.StartDate, &r.EndDate, &r.BorrowerID, &r.OwnerID, &r.GameTitle,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("query borrow request: %w", err)
	}
	return r, nil
}

func (s *PostgresStore) FindAll(ctx context.Context) ([]*BorrowRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM borrow_requests ORDER BY request_date`
	return s.queryRequests(ctx, query)
}

func (s *PostgresStore) FindByBorrower(ctx context.Context, borrowerID int64) ([]*BorrowRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM borrow_requests WHERE borrower_id = $1 ORDER BY request_date`
	return s.queryRequests(ctx, query, borrowerID)
}

func (s *PostgresStore) FindByBorrowerAndTitle(ctx context.Context, borrowerID int64, title string) ([]*BorrowRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM borrow_requests WHERE borrower_id = $1 AND game_title = $2 ORDER BY request_date`
	return s.queryRequests(ctx, query, borrowerID, title)
}

func (s *PostgresStore) queryRequests(ctx context.Context, query string, args ...any) ([]*BorrowRequest, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query borrow requests: %w", err)
	}
	defer rows.Close()

	var requests []*BorrowRequest
	for rows.Next() {
		r := &BorrowRequest{}
		if err := rows.Scan(
			&r.ID, &r.Status, &r.RequestDate, &r.DecisionDate,
			&r.StartDate, &r.EndDate, &r.BorrowerID, &r.OwnerID, &r.GameTitle,
		); err != nil {
			return nil, fmt.Errorf("scan borrow request: %w", err)
		}
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

func (s *PostgresStore) Insert(ctx context.Context, r *BorrowRequest) error {
	query := `
		INSERT INTO borrow_requests (id, status, request_date, decision_date, start_date, end_date, borrower_id, owner_id, game_title)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(ctx, query,
		r.ID, r.Status, r.RequestDate, r.DecisionDate,
		r.StartDate, r.EndDate, r.BorrowerID, r.OwnerID, r.GameTitle,
	)
	return err
}

// Decide performs the state transition and, on accept, the copy flip as one
// transaction. The WHERE status = 'PENDING' guard makes concurrent decisions
// on the same request mutually exclusive.
func (s *PostgresStore) Decide(ctx context.Context, id uuid.UUID, status RequestStatus, decisionDate time.Time) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var ownerID int64
	var title string
	err = tx.QueryRowContext(ctx, `
		UPDATE borrow_requests
		SET status = $1, decision_date = $2
		WHERE id = $3 AND status = 'PENDING'
		RETURNING owner_id, game_title
	`, status, decisionDate, id).Scan(&ownerID, &title)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("update borrow request: %w", err)
	}

	if status == RequestAccepted {
		if _, err := tx.ExecContext(ctx, `
			UPDATE game_copies
			SET status = 'BORROWED'
			WHERE owner_id = $1 AND game_title = $2
		`, ownerID, title); err != nil {
			return false, fmt.Errorf("update game copy: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit transaction: %w", err)
	}
	return true, nil
}

func (s *PostgresStore) DeleteByCopy(ctx context.Context, ownerID int64, title string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM borrow_requests WHERE owner_id = $1 AND game_title = $2`, ownerID, title)
	return err
}
