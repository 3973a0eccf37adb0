package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShipEntityKeepsIdentityAcrossFullHullSwap(t *testing.T) {
	ship := NewShip("Theseus", oakHull())
	id := ship.ShipID

	require.NoError(t, ship.ReplacePlank(0, Plank{Material: "teak", Length: 300, Width: 30}))
	require.NoError(t, ship.ReplacePlank(1, Plank{Material: "mahogany", Length: 300, Width: 30}))

	require.Equal(t, id, ship.ShipID)
	require.Equal(t, []Plank{
		{Material: "teak", Length: 300, Width: 30},
		{Material: "mahogany", Length: 300, Width: 30},
	}, ship.Hull)
}

func TestShipEntityBoundsCheck(t *testing.T) {
	ship := NewShip("Theseus", oakHull())

	err := ship.ReplacePlank(2, Plank{Material: "teak", Length: 300, Width: 30})
	var indexErr *PlankIndexError
	require.ErrorAs(t, err, &indexErr)
	require.Equal(t, oakHull(), ship.Hull)
}

func TestNewShipCopiesHull(t *testing.T) {
	hull := oakHull()
	ship := NewShip("Theseus", hull)

	hull[0] = Plank{Material: "balsa", Length: 1, Width: 1}
	require.Equal(t, oakHull(), ship.Hull)
}
