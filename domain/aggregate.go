package domain

import (
	"time"

	"github.com/google/uuid"
)

// AggregateTypeShip is the aggregate type recorded with every ship event.
const AggregateTypeShip = "ship"

// Clock supplies event timestamps. Commands take it explicitly so
// tests can pin time instead of depending on the wall clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

// Aggregate is the interface the event stores work against.
type Aggregate interface {
	GetID() uuid.UUID
	GetType() string
	GetVersion() int
	GetEvents() []ShipEvent
	UncommittedEvents() []ShipEvent
	MarkCommitted()
}
