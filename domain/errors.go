package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks construction-time field validation failures.
	ErrValidation = errors.New("validation failed")

	// ErrCorruptLog marks an event sequence that cannot be replayed
	// into a consistent ship state.
	ErrCorruptLog = errors.New("corrupt event log")

	// ErrUnknownEventType is returned when an event tag or type does
	// not match any known ship event variant.
	ErrUnknownEventType = errors.New("unknown event type")
)

// PlankIndexError reports a plank position outside the current hull.
type PlankIndexError struct {
	Position int
	HullSize int
}

func (e *PlankIndexError) Error() string {
	return fmt.Sprintf("plank position %d out of range for hull of %d planks", e.Position, e.HullSize)
}
