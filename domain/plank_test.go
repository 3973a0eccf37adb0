package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPlankValidation(t *testing.T) {
	plank, err := NewPlank("oak", 300, 30)
	require.NoError(t, err)
	require.Equal(t, Plank{Material: "oak", Length: 300, Width: 30}, plank)

	_, err = NewPlank("", 300, 30)
	require.ErrorIs(t, err, ErrValidation)

	_, err = NewPlank("oak", 0, 30)
	require.ErrorIs(t, err, ErrValidation)

	_, err = NewPlank("oak", 300, -1)
	require.ErrorIs(t, err, ErrValidation)
}

func TestPlankEqualityIsFieldEquality(t *testing.T) {
	a := Plank{Material: "oak", Length: 300, Width: 30}
	b := Plank{Material: "oak", Length: 300, Width: 30}
	c := Plank{Material: "teak", Length: 300, Width: 30}

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestPlankArea(t *testing.T) {
	plank := Plank{Material: "oak", Length: 300, Width: 30}
	require.Equal(t, 9000.0, plank.Area())
}
