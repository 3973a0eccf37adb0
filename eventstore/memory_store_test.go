package eventstore

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"example.com/shipyard/services/fleet/domain"
)

func launchTestShip(t *testing.T) *domain.ShipAggregate {
	t.Helper()
	ship, err := domain.LaunchShip("Theseus", []domain.Plank{
		{Material: "oak", Length: 300, Width: 30},
		{Material: "oak", Length: 300, Width: 30},
	}, nil)
	require.NoError(t, err)
	return ship
}

func TestMemoryStoreSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryEventStore()

	ship := launchTestShip(t)
	require.NoError(t, ship.ReplacePlank(0, domain.Plank{Material: "teak", Length: 300, Width: 30}))
	require.NoError(t, store.Save(ctx, ship))
	require.Empty(t, ship.UncommittedEvents())

	// Incremental save: only the new event goes to the store.
	require.NoError(t, ship.ReplacePlank(1, domain.Plank{Material: "mahogany", Length: 300, Width: 30}))
	require.NoError(t, store.Save(ctx, ship))

	loaded, err := store.Load(ctx, ship.GetID())
	require.NoError(t, err)
	require.Equal(t, ship.GetID(), loaded.GetID())
	require.Equal(t, ship.Hull(), loaded.Hull())
	require.Equal(t, ship.GetEvents(), loaded.GetEvents())
}

func TestMemoryStoreLoadUnknownShip(t *testing.T) {
	store := NewMemoryEventStore()
	_, err := store.Load(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExists(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryEventStore()
	ship := launchTestShip(t)

	exists, err := store.Exists(ctx, ship.GetID())
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, store.Save(ctx, ship))

	exists, err = store.Exists(ctx, ship.GetID())
	require.NoError(t, err)
	require.True(t, exists)
}
