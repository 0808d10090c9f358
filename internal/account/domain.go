// internal/account/domain.go
package account

import (
	"time"

	"gameshelf/internal/apperr"
)

// AccountType tags what a user is allowed to do. Only game owners may
// register copies; players act through borrow windows.
type AccountType string

const (
	AccountTypeGameOwner AccountType = "GAMEOWNER"
	AccountTypePlayer    AccountType = "PLAYER"
)

// ParseAccountType validates a raw account type string.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case AccountTypeGameOwner, AccountTypePlayer:
		return AccountType(s), nil
	case "":
		return "", apperr.BadRequest("account type is required")
	default:
		return "", apperr.BadRequest("invalid account type: %s", s)
	}
}

// UserAccount represents a registered user.
type UserAccount struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Salt         string      `json:"-"`
	AccountType  AccountType `json:"account_type"`
	CreatedAt    time.Time   `json:"created_at"`
}

// IsGameOwner reports whether the user may register game copies.
func (u *UserAccount) IsGameOwner() bool {
	return u.AccountType == AccountTypeGameOwner
}
