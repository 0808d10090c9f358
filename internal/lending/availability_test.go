// internal/lending/availability_test.go
package lending_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"gameshelf/internal/lending"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOwnerAlwaysAvailable(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	resolver := lending.NewResolver(f.store.Copies(), f.store.Requests())

	for _, date := range []time.Time{day(2000, 1, 1), day(2026, 8, 28), day(2099, 12, 31)} {
		ok, err := resolver.IsAvailable(ctx, f.owner.ID, "Catan", date)
		require.NoError(t, err)
		assert.True(t, ok, "owner should be available on %s", date)
	}
}

func TestBorrowerWindowBoundariesInclusive(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	resolver := lending.NewResolver(f.store.Copies(), f.store.Requests())

	request := &lending.BorrowRequest{
		ID:         uuid.New(),
		Status:     lending.RequestPending,
		StartDate:  day(2026, 9, 1),
		EndDate:    day(2026, 9, 10),
		BorrowerID: f.borrower.ID,
		OwnerID:    f.owner.ID,
		GameTitle:  "Catan",
	}
	require.NoError(t, f.store.Requests().Insert(ctx, request))

	cases := []struct {
		date time.Time
		want bool
	}{
		{day(2026, 8, 31), false},
		{day(2026, 9, 1), true},
		{day(2026, 9, 5), true},
		{day(2026, 9, 10), true},
		{day(2026, 9, 11), false},
	}
	for _, tc := range cases {
		ok, err := resolver.IsAvailable(ctx, f.borrower.ID, "Catan", tc.date)
		require.NoError(t, err)
		assert.Equal(t, tc.want, ok, "date %s", tc.date)
	}
}

func TestTimeOfDayIgnored(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	resolver := lending.NewResolver(f.store.Copies(), f.store.Requests())

	require.NoError(t, f.store.Requests().Insert(ctx, &lending.BorrowRequest{
		ID:         uuid.New(),
		Status:     lending.RequestPending,
		StartDate:  day(2026, 9, 1),
		EndDate:    day(2026, 9, 1),
		BorrowerID: f.borrower.ID,
		OwnerID:    f.owner.ID,
		GameTitle:  "Catan",
	}))

	lateEvening := time.Date(2026, 9, 1, 23, 59, 0, 0, time.UTC)
	ok, err := resolver.IsAvailable(ctx, f.borrower.ID, "Catan", lateEvening)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNoEntitlementNoAvailability(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	resolver := lending.NewResolver(f.store.Copies(), f.store.Requests())

	ok, err := resolver.IsAvailable(ctx, f.borrower.ID, "Catan", day(2026, 9, 5))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = resolver.IsAvailable(ctx, f.borrower.ID, "Azul", day(2026, 9, 5))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAvailabilityMatchesWindowProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ctx := context.Background()
		f := setup(t)
		resolver := lending.NewResolver(f.store.Copies(), f.store.Requests())

		base := day(2026, 1, 1)
		startOffset := rapid.IntRange(0, 365).Draw(rt, "startOffset")
		length := rapid.IntRange(0, 60).Draw(rt, "length")
		probeOffset := rapid.IntRange(-30, 450).Draw(rt, "probeOffset")

		start := base.AddDate(0, 0, startOffset)
		end := start.AddDate(0, 0, length)
		probe := base.AddDate(0, 0, probeOffset)

		require.NoError(rt, f.store.Requests().Insert(ctx, &lending.BorrowRequest{
			ID:         uuid.New(),
			Status:     lending.RequestPending,
			StartDate:  start,
			EndDate:    end,
			BorrowerID: f.borrower.ID,
			OwnerID:    f.owner.ID,
			GameTitle:  "Catan",
		}))

		want := !probe.Before(start) && !probe.After(end)
		got, err := resolver.IsAvailable(ctx, f.borrower.ID, "Catan", probe)
		require.NoError(rt, err)
		assert.Equal(rt, want, got)
	})
}
