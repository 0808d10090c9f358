// internal/account/service.go
package account

import "context"

// Service defines the interface for the account service.
type Service interface {
	CreateAccount(ctx context.Context, name, email, password string, accountType AccountType) (*UserAccount, error)
	GetAccount(ctx context.Context, id int64) (*UserAccount, error)
	ListAccounts(ctx context.Context) ([]*UserAccount, error)
	UpdateAccount(ctx context.Context, id int64, name, email string, accountType AccountType) (*UserAccount, error)
	UpdatePassword(ctx context.Context, id int64, newPassword string) error
	DeleteAccount(ctx context.Context, id int64) error
	Login(ctx context.Context, id int64, password string) (*UserAccount, error)
}
