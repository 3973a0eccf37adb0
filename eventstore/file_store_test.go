package eventstore

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"example.com/shipyard/services/fleet/domain"
)

func TestFileStoreSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileEventStore(t.TempDir())
	require.NoError(t, err)

	ship := launchTestShip(t)
	require.NoError(t, ship.ReplacePlank(0, domain.Plank{Material: "teak", Length: 300, Width: 30}))
	require.NoError(t, ship.ReplacePlank(1, domain.Plank{Material: "mahogany", Length: 300, Width: 30}))
	require.NoError(t, store.Save(ctx, ship))

	loaded, err := store.Load(ctx, ship.GetID())
	require.NoError(t, err)
	require.Equal(t, ship.GetID(), loaded.GetID())
	require.Equal(t, ship.Name(), loaded.Name())
	require.Equal(t, ship.Hull(), loaded.Hull())
	require.Len(t, loaded.GetEvents(), 3)
}

func TestFileStoreAppendsAcrossSaves(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileEventStore(t.TempDir())
	require.NoError(t, err)

	ship := launchTestShip(t)
	require.NoError(t, store.Save(ctx, ship))
	require.NoError(t, ship.ReplacePlank(0, domain.Plank{Material: "teak", Length: 300, Width: 30}))
	require.NoError(t, store.Save(ctx, ship))

	events, err := store.GetEvents(ctx, ship.GetID())
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, domain.ShipLaunched, events[0].EventType())
	require.Equal(t, domain.PlankReplaced, events[1].EventType())
}

func TestFileStoreLoadUnknownShip(t *testing.T) {
	store, err := NewFileEventStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}
