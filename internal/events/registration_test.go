// internal/events/registration_test.go
package events_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameshelf/internal/account"
	"gameshelf/internal/apperr"
	"gameshelf/internal/events"
)

// insertEvent stores an event starting at the given offset from now,
// bypassing the scheduling checks.
func (f *fixture) insertEvent(t *testing.T, startsIn time.Duration, maxParticipants int) *events.Event {
	t.Helper()
	start := time.Now().UTC().Add(startsIn)
	event := &events.Event{
		ID:              uuid.New(),
		Name:            "Game Night",
		Date:            time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
		StartTime:       time.Date(0, 1, 1, start.Hour(), start.Minute(), 0, 0, time.UTC),
		Location:        "Community Hall",
		Description:     "Casual play",
		MaxParticipants: maxParticipants,
		GameTitle:       "Catan",
		CreatorID:       f.owner.ID,
	}
	require.NoError(t, f.store.Events().Insert(context.Background(), event))
	return event
}

func (f *fixture) addUser(t *testing.T, name string) *account.UserAccount {
	t.Helper()
	user := &account.UserAccount{
		Name:        name,
		Email:       fmt.Sprintf("%s@example.com", name),
		AccountType: account.AccountTypePlayer,
	}
	require.NoError(t, f.store.Users().Insert(context.Background(), user))
	return user
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	event := f.insertEvent(t, 48*time.Hour, 4)

	reg, err := f.regs.Register(ctx, f.player.ID, event.ID)
	require.NoError(t, err)
	assert.Equal(t, events.ParticipationPending, reg.Status)
	assert.Equal(t, event.ID, reg.EventID)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	event := f.insertEvent(t, 48*time.Hour, 4)

	_, err := f.regs.Register(ctx, 0, event.ID)
	assert.True(t, apperr.IsBadRequest(err))

	_, err = f.regs.Register(ctx, f.player.ID, uuid.Nil)
	assert.True(t, apperr.IsBadRequest(err))

	_, err = f.regs.Register(ctx, 999, event.ID)
	assert.True(t, apperr.IsNotFound(err))

	_, err = f.regs.Register(ctx, f.player.ID, uuid.New())
	assert.True(t, apperr.IsNotFound(err))
}

func TestRegisterCapacity(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	event := f.insertEvent(t, 48*time.Hour, 2)

	_, err := f.regs.Register(ctx, f.player.ID, event.ID)
	require.NoError(t, err)
	second := f.addUser(t, "carol")
	_, err = f.regs.Register(ctx, second.ID, event.ID)
	require.NoError(t, err)

	third := f.addUser(t, "dave")
	_, err = f.regs.Register(ctx, third.ID, event.ID)
	assert.True(t, apperr.IsBadRequest(err))
	assert.EqualError(t, err, "event is already full")
}

func TestRegisterAfterStart(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	event := f.insertEvent(t, -48*time.Hour, 4)

	_, err := f.regs.Register(ctx, f.player.ID, event.ID)
	assert.True(t, apperr.IsBadRequest(err))
	assert.EqualError(t, err, "cannot register for an event that has already started")
}

func TestRegisterTwice(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	event := f.insertEvent(t, 48*time.Hour, 4)

	_, err := f.regs.Register(ctx, f.player.ID, event.ID)
	require.NoError(t, err)

	_, err = f.regs.Register(ctx, f.player.ID, event.ID)
	assert.True(t, apperr.IsBadRequest(err))
	assert.EqualError(t, err, "user is already registered for this event")
}

func TestConcurrentRegistrationNeverOverfills(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	const capacity = 3
	event := f.insertEvent(t, 48*time.Hour, capacity)

	users := make([]*account.UserAccount, 10)
	for i := range users {
		users[i] = f.addUser(t, fmt.Sprintf("user%d", i))
	}

	var wg sync.WaitGroup
	for _, u := range users {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_, _ = f.regs.Register(ctx, id, event.ID)
		}(u.ID)
	}
	wg.Wait()

	count, err := f.store.Registrations().CountByEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, capacity, count)
}

func TestCancelRegistration(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	event := f.insertEvent(t, 48*time.Hour, 4)

	_, err := f.regs.Register(ctx, f.player.ID, event.ID)
	require.NoError(t, err)

	require.NoError(t, f.regs.CancelRegistration(ctx, f.player.ID, event.ID))

	_, err = f.regs.GetRegistration(ctx, f.player.ID, event.ID)
	assert.True(t, apperr.IsNotFound(err))

	err = f.regs.CancelRegistration(ctx, f.player.ID, event.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestCancelAfterStart(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	event := f.insertEvent(t, -48*time.Hour, 4)

	require.NoError(t, f.store.Registrations().Insert(ctx, &events.EventRegistration{
		ParticipantID: f.player.ID,
		EventID:       event.ID,
		Status:        events.ParticipationPending,
	}))

	err := f.regs.CancelRegistration(ctx, f.player.ID, event.ID)
	assert.True(t, apperr.IsBadRequest(err))
}

func TestListRegistrations(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	event := f.insertEvent(t, 48*time.Hour, 4)

	_, err := f.regs.ListByEvent(ctx, uuid.New())
	assert.True(t, apperr.IsNotFound(err))

	_, err = f.regs.ListByUser(ctx, 999)
	assert.True(t, apperr.IsNotFound(err))

	_, err = f.regs.Register(ctx, f.player.ID, event.ID)
	require.NoError(t, err)

	byEvent, err := f.regs.ListByEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Len(t, byEvent, 1)

	byUser, err := f.regs.ListByUser(ctx, f.player.ID)
	require.NoError(t, err)
	assert.Len(t, byUser, 1)

	all, err := f.regs.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
