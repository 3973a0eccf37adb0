package eventstore

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"example.com/shipyard/services/fleet/domain"
)

func TestMarshalEventRoundTripLaunch(t *testing.T) {
	shipID := uuid.New()
	original := domain.ShipLaunchedEvent{
		ShipID:    shipID,
		Name:      "Test Ship",
		Hull:      []domain.Plank{{Material: "oak", Length: 300, Width: 30}},
		Timestamp: time.Date(2024, 3, 1, 12, 0, 0, 123456789, time.UTC),
	}

	eventType, data, err := MarshalEvent(original)
	require.NoError(t, err)
	require.Equal(t, domain.ShipLaunched, eventType)

	decoded, err := UnmarshalEvent(eventType, data)
	require.NoError(t, err)

	launched, ok := decoded.(domain.ShipLaunchedEvent)
	require.True(t, ok)
	require.Equal(t, shipID, launched.ShipID)
	require.Equal(t, original.Name, launched.Name)
	require.Equal(t, original.Hull, launched.Hull)
	require.True(t, launched.Timestamp.Equal(original.Timestamp))
}

func TestMarshalEventRoundTripReplacement(t *testing.T) {
	original := domain.PlankReplacedEvent{
		ShipID:    uuid.New(),
		Position:  1,
		NewPlank:  domain.Plank{Material: "teak", Length: 300, Width: 30},
		Timestamp: time.Date(2024, 3, 1, 12, 0, 1, 0, time.UTC),
	}

	eventType, data, err := MarshalEvent(original)
	require.NoError(t, err)
	require.Equal(t, domain.PlankReplaced, eventType)

	decoded, err := UnmarshalEvent(eventType, data)
	require.NoError(t, err)

	replaced, ok := decoded.(domain.PlankReplacedEvent)
	require.True(t, ok)
	require.Equal(t, original.ShipID, replaced.ShipID)
	require.Equal(t, original.Position, replaced.Position)
	require.Equal(t, original.NewPlank, replaced.NewPlank)
	require.True(t, replaced.Timestamp.Equal(original.Timestamp))
}

func TestUnmarshalEventRejectsUnknownTag(t *testing.T) {
	_, err := UnmarshalEvent("V1_SHIP_SCUTTLED", []byte(`{}`))
	require.ErrorIs(t, err, domain.ErrUnknownEventType)
}
