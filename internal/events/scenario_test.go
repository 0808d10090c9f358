// internal/events/scenario_test.go
package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameshelf/internal/account"
	"gameshelf/internal/apperr"
	"gameshelf/internal/catalog"
	"gameshelf/internal/collection"
	"gameshelf/internal/events"
	"gameshelf/internal/lending"
	"gameshelf/internal/memstore"
)

// TestBorrowAndHostFlow walks the full lifecycle: an owner registers a copy,
// a player borrows it over a window, and the player may host an event only
// inside that window.
func TestBorrowAndHostFlow(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	accounts := account.NewService(store.Users(), store.Copies())
	games := catalog.NewService(store.Games())
	copies := collection.NewService(store.Copies(), store.Users(), store.Games(), store.Requests())
	borrows := lending.NewService(store.Requests(), store.Users(), store.Copies())
	resolver := lending.NewResolver(store.Copies(), store.Requests())
	schedule := events.NewService(store.Events(), store.Registrations(), store.Users(), store.Games(), store.Requests(), resolver)

	owner, err := accounts.CreateAccount(ctx, "Alice", "alice@example.com", "battery staple", account.AccountTypeGameOwner)
	require.NoError(t, err)
	player, err := accounts.CreateAccount(ctx, "Bob", "bob@example.com", "correct horse", account.AccountTypePlayer)
	require.NoError(t, err)

	_, err = games.CreateGame(ctx, "Catan", "Trade and build", "Strategy")
	require.NoError(t, err)
	_, err = copies.CreateCopy(ctx, owner.ID, "Catan", "Mint condition")
	require.NoError(t, err)

	start := time.Date(2027, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2027, 5, 10, 0, 0, 0, 0, time.UTC)
	request, err := borrows.CreateBorrowRequest(ctx, player.ID, owner.ID, "Catan", start, end)
	require.NoError(t, err)

	accepted, err := borrows.AcceptRequest(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, lending.RequestAccepted, accepted.Status)

	copy, err := copies.GetCopy(ctx, owner.ID, "Catan")
	require.NoError(t, err)
	assert.Equal(t, collection.StatusBorrowed, copy.Status)

	details := events.EventDetails{
		Name:            "Catan Night",
		Date:            time.Date(2027, 5, 5, 0, 0, 0, 0, time.UTC),
		StartTime:       time.Date(0, 1, 1, 19, 0, 0, 0, time.UTC),
		Location:        "Bob's place",
		Description:     "Borrowed copy in play",
		MaxParticipants: 4,
		GameTitle:       "Catan",
	}
	event, err := schedule.CreateEvent(ctx, details, player.ID)
	require.NoError(t, err)
	assert.Equal(t, player.ID, event.CreatorID)

	outside := details
	outside.Date = time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err = schedule.CreateEvent(ctx, outside, player.ID)
	assert.True(t, apperr.IsBadRequest(err))

	ownerAny := details
	ownerAny.Date = time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err = schedule.CreateEvent(ctx, ownerAny, owner.ID)
	assert.NoError(t, err)
}
