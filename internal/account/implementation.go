// internal/account/implementation.go
package account

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"gameshelf/internal/apperr"
)

const minPasswordLength = 8

// service implements the Service interface.
type service struct {
	store       Store
	copies      CopyCounter
	rateLimiter *rate.Limiter
	now         func() time.Time
}

// NewService creates a new account service instance.
func NewService(store Store, copies CopyCounter) Service {
	return &service{
		store:       store,
		copies:      copies,
		rateLimiter: rate.NewLimiter(rate.Every(1*time.Minute), 5), // 5 requests per minute
		now:         time.Now,
	}
}

// CreateAccount registers a new user with a salted Argon2id password hash.
func (s *service) CreateAccount(ctx context.Context, name, email, password string, accountType AccountType) (*UserAccount, error) {
	if !s.rateLimiter.Allow() {
		return nil, apperr.BadRequest("rate limit exceeded")
	}

	if _, err := ParseAccountType(string(accountType)); err != nil {
		return nil, err
	}
	if len(password) < minPasswordLength {
		return nil, apperr.BadRequest("password must be at least eight characters long")
	}

	passwordHash, salt, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &UserAccount{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Salt:         salt,
		AccountType:  accountType,
		CreatedAt:    s.now(),
	}
	if err := s.store.Insert(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to insert account: %w", err)
	}

	return user, nil
}

// GetAccount retrieves a user account by its ID.
func (s *service) GetAccount(ctx context.Context, id int64) (*UserAccount, error) {
	return s.findAccount(ctx, id)
}

// ListAccounts returns all user accounts.
func (s *service) ListAccounts(ctx context.Context) ([]*UserAccount, error) {
	return s.store.FindAll(ctx)
}

// UpdateAccount overwrites name, email, and account type. A game owner may
// only become a player after deleting every copy they own.
func (s *service) UpdateAccount(ctx context.Context, id int64, name, email string, accountType AccountType) (*UserAccount, error) {
	user, err := s.findAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := ParseAccountType(string(accountType)); err != nil {
		return nil, err
	}

	if user.AccountType == AccountTypeGameOwner && accountType == AccountTypePlayer {
		owned, err := s.copies.CountByOwner(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to count owned copies: %w", err)
		}
		if owned > 0 {
			return nil, apperr.Forbidden("game owner must delete all owned game copies before becoming a player")
		}
	}

	user.Name = name
	user.Email = email
	user.AccountType = accountType
	if err := s.store.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return user, nil
}

// UpdatePassword replaces the stored password hash.
func (s *service) UpdatePassword(ctx context.Context, id int64, newPassword string) error {
	user, err := s.findAccount(ctx, id)
	if err != nil {
		return err
	}

	if len(newPassword) < minPasswordLength {
		return apperr.BadRequest("password must be at least eight characters long")
	}

	passwordHash, salt, err := hashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = passwordHash
	user.Salt = salt

	if err := s.store.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

// DeleteAccount removes a user account.
func (s *service) DeleteAccount(ctx context.Context, id int64) error {
	if _, err := s.findAccount(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

// Login verifies a user's credentials and returns the account on success.
func (s *service) Login(ctx context.Context, id int64, password string) (*UserAccount, error) {
	if !s.rateLimiter.Allow() {
		return nil, apperr.BadRequest("rate limit exceeded")
	}

	user, err := s.findAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	ok, err := verifyPassword(password, user.Salt, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, apperr.Unauthorized("wrong password was given")
	}
	return user, nil
}

func (s *service) findAccount(ctx context.Context, id int64) (*UserAccount, error) {
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account %d: %w", id, err)
	}
	if user == nil {
		return nil, apperr.NotFound("no user account has id %d", id)
	}
	return user, nil
}
