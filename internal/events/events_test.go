// internal/events/events_test.go
package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
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

type fixture struct {
	svc    events.Service
	regs   events.RegistrationService
	store  *memstore.Store
	owner  *account.UserAccount
	player *account.UserAccount
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memstore.New()

	owner := &account.UserAccount{Name: "Alice", Email: "alice@example.com", AccountType: account.AccountTypeGameOwner}
	require.NoError(t, store.Users().Insert(ctx, owner))
	player := &account.UserAccount{Name: "Bob", Email: "bob@example.com", AccountType: account.AccountTypePlayer}
	require.NoError(t, store.Users().Insert(ctx, player))
	require.NoError(t, store.Games().Insert(ctx, &catalog.Game{Title: "Catan"}))
	require.NoError(t, store.Copies().Insert(ctx, &collection.GameCopy{
		OwnerID:   owner.ID,
		GameTitle: "Catan",
		Status:    collection.StatusAvailable,
	}))

	resolver := lending.NewResolver(store.Copies(), store.Requests())
	svc := events.NewService(store.Events(), store.Registrations(), store.Users(), store.Games(), store.Requests(), resolver)
	regs := events.NewRegistrationService(store.Registrations(), store.Events(), store.Users())
	return &fixture{svc: svc, regs: regs, store: store, owner: owner, player: player}
}

func validDetails() events.EventDetails {
	return events.EventDetails{
		Name:            "Game Night",
		Date:            time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
		StartTime:       time.Date(0, 1, 1, 19, 0, 0, 0, time.UTC),
		Location:        "Community Hall",
		Description:     "Casual play",
		MaxParticipants: 4,
		GameTitle:       "Catan",
	}
}

func TestCreateEventByOwner(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	event, err := f.svc.CreateEvent(ctx, validDetails(), f.owner.ID)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, "Catan", event.GameTitle)
	assert.Equal(t, f.owner.ID, event.CreatorID)
}

func TestCreateEventUnknownCreatorAndGame(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.svc.CreateEvent(ctx, validDetails(), 999)
	assert.True(t, apperr.IsNotFound(err))

	details := validDetails()
	details.GameTitle = "Azul"
	_, err = f.svc.CreateEvent(ctx, details, f.owner.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestCreateEventPlayerNeedsBorrowRequest(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.svc.CreateEvent(ctx, validDetails(), f.player.ID)
	assert.True(t, apperr.IsForbidden(err))
}

func TestCreateEventPlayerWithBorrowWindow(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	require.NoError(t, f.store.Requests().Insert(ctx, &lending.BorrowRequest{
		ID:         uuid.New(),
		Status:     lending.RequestPending,
		StartDate:  time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC),
		BorrowerID: f.player.ID,
		OwnerID:    f.owner.ID,
		GameTitle:  "Catan",
	}))

	event, err := f.svc.CreateEvent(ctx, validDetails(), f.player.ID)
	require.NoError(t, err)
	assert.Equal(t, f.player.ID, event.CreatorID)

	outside := validDetails()
	outside.Date = time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	_, err = f.svc.CreateEvent(ctx, outside, f.player.ID)
	assert.True(t, apperr.IsBadRequest(err))
}

func TestCreateEventInvalidDetails(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	for name, mutate := range map[string]func(*events.EventDetails){
		"empty name":       func(d *events.EventDetails) { d.Name = "" },
		"empty location":   func(d *events.EventDetails) { d.Location = "" },
		"zero capacity":    func(d *events.EventDetails) { d.MaxParticipants = 0 },
		"missing date":     func(d *events.EventDetails) { d.Date = time.Time{} },
		"missing start":    func(d *events.EventDetails) { d.StartTime = time.Time{} },
		"no description":   func(d *events.EventDetails) { d.Description = "" },
		"negative max":     func(d *events.EventDetails) { d.MaxParticipants = -1 },
	} {
		details := validDetails()
		mutate(&details)
		_, err := f.svc.CreateEvent(ctx, details, f.owner.ID)
		assert.True(t, apperr.IsBadRequest(err), "case %s", name)
	}
}

func TestUpdateEventDescription(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	event, err := f.svc.CreateEvent(ctx, validDetails(), f.owner.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.UpdateDescription(ctx, event.ID, "Bring snacks"))
	got, err := f.svc.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bring snacks", got.Description)

	err = f.svc.UpdateDescription(ctx, uuid.New(), "nope")
	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteEventCascadesRegistrations(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	event, err := f.svc.CreateEvent(ctx, validDetails(), f.owner.ID)
	require.NoError(t, err)
	require.NoError(t, f.store.Registrations().Insert(ctx, &events.EventRegistration{
		ParticipantID: f.player.ID,
		EventID:       event.ID,
		Status:        events.ParticipationPending,
	}))

	require.NoError(t, f.svc.DeleteEvent(ctx, event.ID))

	_, err = f.svc.GetEvent(ctx, event.ID)
	assert.True(t, apperr.IsNotFound(err))

	regs, err := f.store.Registrations().FindAllByUser(ctx, f.player.ID)
	require.NoError(t, err)
	assert.Empty(t, regs)
}

func TestDeleteExpiredEvents(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	past := validDetails()
	past.Date = time.Now().UTC().AddDate(0, 0, -2)
	_, err := f.svc.CreateEvent(ctx, past, f.owner.ID)
	require.NoError(t, err)

	future := validDetails()
	future.Date = time.Now().UTC().AddDate(0, 0, 2)
	keep, err := f.svc.CreateEvent(ctx, future, f.owner.ID)
	require.NoError(t, err)

	deleted, err := f.svc.DeleteExpiredEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	remaining, err := f.svc.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, keep.ID, remaining[0].ID)

	deleted, err = f.svc.DeleteExpiredEvents(ctx)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestListByUserRegistration(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	event, err := f.svc.CreateEvent(ctx, validDetails(), f.owner.ID)
	require.NoError(t, err)
	require.NoError(t, f.store.Registrations().Insert(ctx, &events.EventRegistration{
		ParticipantID: f.player.ID,
		EventID:       event.ID,
		Status:        events.ParticipationPending,
	}))

	_, err = f.svc.ListByUserRegistration(ctx, 999)
	assert.True(t, apperr.IsNotFound(err))

	got, err := f.svc.ListByUserRegistration(ctx, f.player.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, event.ID, got[0].ID)
}
