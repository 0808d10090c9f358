// internal/account/store.go
package account

import "context"

// Store is the persistence contract for user accounts. FindByID returns
// (nil, nil) when no account matches; absence is a business outcome, not a
// storage failure.
type Store interface {
	FindByID(ctx context.Context, id int64) (*UserAccount, error)
	FindAll(ctx context.Context) ([]*UserAccount, error)
	Insert(ctx context.Context, u *UserAccount) error
	Update(ctx context.Context, u *UserAccount) error
	Delete(ctx context.Context, id int64) error
}

// CopyCounter reports how many game copies a user owns. The account service
// needs it to block demoting an owner who still has copies registered.
type CopyCounter interface {
	CountByOwner(ctx context.Context, ownerID int64) (int, error)
}
