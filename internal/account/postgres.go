// internal/account/postgres.go
package account

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresStore implements Store on a PostgreSQL read model.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a Postgres-backed account store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByID(ctx context.Context, id int64) (*UserAccount, error) {
	query := `
		SELECT id, name, email, password_hash, salt, account_type, created_at
		FROM user_accounts
		WHERE id = $1
	`
	u := &UserAccount{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Salt,
		&u.AccountType,
		&u.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("query account: %w", err)
	}
	return u, nil
}

func (s *PostgresStore) FindAll(ctx context.Context) ([]*UserAccount, error) {
	query := `
		SELECT id, name, email, password_hash, salt, account_type, created_at
		FROM user_accounts
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()

	var users []*UserAccount
	for rows.Next() {
		u := &UserAccount{}
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Salt, &u.AccountType, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *PostgresStore) Insert(ctx context.Context, u *UserAccount) error {
	query := `
		INSERT INTO user_accounts (name, email, password_hash, salt, account_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return s.db.QueryRowContext(ctx, query,
		u.Name, u.Email, u.PasswordHash, u.Salt, u.AccountType, u.CreatedAt,
	).Scan(&u.ID)
}

func (s *PostgresStore) Update(ctx context.Context, u *UserAccount) error {
	query := `
		UPDATE user_accounts
		SET name = $1, email = $2, password_hash = $3, salt = $4, account_type = $5
		WHERE id = $6
	`
	_, err := s.db.ExecContext(ctx, query, u.Name, u.Email, u.PasswordHash, u.Salt, u.AccountType, u.ID)
	return err
}

func (s *PostgresStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM user_accounts WHERE id = $1`, id)
	return err
}
