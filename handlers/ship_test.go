package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"example.com/shipyard/services/fleet/domain"
	"example.com/shipyard/services/fleet/eventstore"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(time.Minute)
	return t
}

func TestHandleLaunchShip(t *testing.T) {
	store := eventstore.NewMemoryEventStore()
	handler := NewShipHandler(store, nil)

	ship, err := handler.HandleLaunchShip(context.Background(), LaunchShipCommand{
		Name: "Theseus",
		Hull: []PlankInput{
			{Material: "oak", Length: 300, Width: 30},
			{Material: "oak", Length: 300, Width: 30},
		},
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, ship.GetID())

	// The launch event is already persisted.
	loaded, err := store.Load(context.Background(), ship.GetID())
	require.NoError(t, err)
	require.Equal(t, "Theseus", loaded.Name())
	require.Len(t, loaded.GetEvents(), 1)
}

func TestHandleLaunchShipRejectsInvalidPlank(t *testing.T) {
	handler := NewShipHandler(eventstore.NewMemoryEventStore(), nil)

	_, err := handler.HandleLaunchShip(context.Background(), LaunchShipCommand{
		Name: "Theseus",
		Hull: []PlankInput{{Material: "oak", Length: 0, Width: 30}},
	})
	require.Error(t, err)
}

func TestHandleReplacePlank(t *testing.T) {
	ctx := context.Background()
	store := eventstore.NewMemoryEventStore()
	handler := NewShipHandler(store, nil)

	ship, err := handler.HandleLaunchShip(ctx, LaunchShipCommand{
		Name: "Theseus",
		Hull: []PlankInput{
			{Material: "oak", Length: 300, Width: 30},
			{Material: "oak", Length: 300, Width: 30},
		},
	})
	require.NoError(t, err)

	updated, err := handler.HandleReplacePlank(ctx, ReplacePlankCommand{
		ShipID:   ship.GetID().String(),
		Position: 0,
		NewPlank: PlankInput{Material: "teak", Length: 300, Width: 30},
	})
	require.NoError(t, err)
	require.Equal(t, "teak", updated.Hull()[0].Material)

	history, err := handler.GetShipHistory(ctx, ship.GetID())
	require.NoError(t, err)
	require.Len(t, history, 2)
}

func TestHandleReplacePlankOutOfRange(t *testing.T) {
	ctx := context.Background()
	store := eventstore.NewMemoryEventStore()
	handler := NewShipHandler(store, nil)

	ship, err := handler.HandleLaunchShip(ctx, LaunchShipCommand{
		Name: "Theseus",
		Hull: []PlankInput{{Material: "oak", Length: 300, Width: 30}},
	})
	require.NoError(t, err)

	_, err = handler.HandleReplacePlank(ctx, ReplacePlankCommand{
		ShipID:   ship.GetID().String(),
		Position: 5,
		NewPlank: PlankInput{Material: "teak", Length: 300, Width: 30},
	})

	var indexErr *domain.PlankIndexError
	require.ErrorAs(t, err, &indexErr)

	// Failed command persisted nothing.
	history, err := handler.GetShipHistory(ctx, ship.GetID())
	require.NoError(t, err)
	require.Len(t, history, 1)
}

// The handler's clock stamps every event it produces, including
// replacements on aggregates replayed from the store.
func TestHandlerClockStampsAllEvents(t *testing.T) {
	ctx := context.Background()
	store := eventstore.NewMemoryEventStore()
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	handler := NewShipHandler(store, &fixedClock{now: start})

	ship, err := handler.HandleLaunchShip(ctx, LaunchShipCommand{
		Name: "Theseus",
		Hull: []PlankInput{{Material: "oak", Length: 300, Width: 30}},
	})
	require.NoError(t, err)

	updated, err := handler.HandleReplacePlank(ctx, ReplacePlankCommand{
		ShipID:   ship.GetID().String(),
		Position: 0,
		NewPlank: PlankInput{Material: "teak", Length: 300, Width: 30},
	})
	require.NoError(t, err)

	events := updated.GetEvents()
	require.Len(t, events, 2)
	require.True(t, events[0].OccurredAt().Equal(start))
	require.True(t, events[1].OccurredAt().Equal(start.Add(time.Minute)))
}

func TestHandleReplacePlankUnknownShip(t *testing.T) {
	handler := NewShipHandler(eventstore.NewMemoryEventStore(), nil)

	_, err := handler.HandleReplacePlank(context.Background(), ReplacePlankCommand{
		ShipID:   uuid.New().String(),
		Position: 0,
		NewPlank: PlankInput{Material: "teak", Length: 300, Width: 30},
	})
	require.ErrorIs(t, err, eventstore.ErrNotFound)
}
