// internal/lending/lending_test.go
package lending_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameshelf/internal/account"
	"gameshelf/internal/apperr"
	"gameshelf/internal/collection"
	"gameshelf/internal/lending"
	"gameshelf/internal/memstore"
)

type fixture struct {
	svc      lending.Service
	store    *memstore.Store
	owner    *account.UserAccount
	borrower *account.UserAccount
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memstore.New()

	owner := &account.UserAccount{Name: "Alice", Email: "alice@example.com", AccountType: account.AccountTypeGameOwner}
	require.NoError(t, store.Users().Insert(ctx, owner))
	borrower := &account.UserAccount{Name: "Bob", Email: "bob@example.com", AccountType: account.AccountTypePlayer}
	require.NoError(t, store.Users().Insert(ctx, borrower))
	require.NoError(t, store.Copies().Insert(ctx, &collection.GameCopy{
		OwnerID:   owner.ID,
		GameTitle: "Catan",
		Status:    collection.StatusAvailable,
	}))

	svc := lending.NewService(store.Requests(), store.Users(), store.Copies())
	return &fixture{svc: svc, store: store, owner: owner, borrower: borrower}
}

func (f *fixture) createRequest(t *testing.T) *lending.BorrowRequest {
	t.Helper()
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	request, err := f.svc.CreateBorrowRequest(context.Background(), f.borrower.ID, f.owner.ID, "Catan", start, end)
	require.NoError(t, err)
	return request
}

func TestCreateBorrowRequest(t *testing.T) {
	f := setup(t)

	request := f.createRequest(t)
	assert.Equal(t, lending.RequestPending, request.Status)
	assert.Nil(t, request.DecisionDate)
	assert.NotEqual(t, uuid.Nil, request.ID)
}

func TestCreateBorrowRequestUnknownParties(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	_, err := f.svc.CreateBorrowRequest(ctx, 999, f.owner.ID, "Catan", start, end)
	assert.True(t, apperr.IsNotFound(err))

	_, err = f.svc.CreateBorrowRequest(ctx, f.borrower.ID, 999, "Catan", start, end)
	assert.True(t, apperr.IsNotFound(err))

	_, err = f.svc.CreateBorrowRequest(ctx, f.borrower.ID, f.owner.ID, "Azul", start, end)
	assert.True(t, apperr.IsNotFound(err))
}

func TestAcceptRequestFlipsCopy(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	request := f.createRequest(t)

	accepted, err := f.svc.AcceptRequest(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, lending.RequestAccepted, accepted.Status)
	require.NotNil(t, accepted.DecisionDate)

	copy, err := f.store.Copies().FindByOwnerAndTitle(ctx, f.owner.ID, "Catan")
	require.NoError(t, err)
	assert.Equal(t, collection.StatusBorrowed, copy.Status)
}

func TestDeclineRequestLeavesCopy(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	request := f.createRequest(t)

	declined, err := f.svc.DeclineRequest(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, lending.RequestDeclined, declined.Status)
	require.NotNil(t, declined.DecisionDate)

	copy, err := f.store.Copies().FindByOwnerAndTitle(ctx, f.owner.ID, "Catan")
	require.NoError(t, err)
	assert.Equal(t, collection.StatusAvailable, copy.Status)
}

func TestDecisionIsFinal(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	request := f.createRequest(t)

	_, err := f.svc.AcceptRequest(ctx, request.ID)
	require.NoError(t, err)

	_, err = f.svc.AcceptRequest(ctx, request.ID)
	assert.True(t, apperr.IsConflict(err))

	_, err = f.svc.DeclineRequest(ctx, request.ID)
	assert.True(t, apperr.IsConflict(err))

	got, err := f.svc.GetRequest(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, lending.RequestAccepted, got.Status)
}

func TestDecideUnknownRequest(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.svc.AcceptRequest(ctx, uuid.New())
	assert.True(t, apperr.IsNotFound(err))
}

func TestListByBorrower(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.svc.ListByBorrower(ctx, 999)
	assert.True(t, apperr.IsNotFound(err))

	requests, err := f.svc.ListByBorrower(ctx, f.borrower.ID)
	require.NoError(t, err)
	assert.Empty(t, requests)

	f.createRequest(t)
	requests, err = f.svc.ListByBorrower(ctx, f.borrower.ID)
	require.NoError(t, err)
	assert.Len(t, requests, 1)
}
