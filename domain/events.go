package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType constants
const (
	ShipLaunched  = "V1_SHIP_LAUNCHED"
	PlankReplaced = "V1_PLANK_REPLACED"
)

// ShipEvent is the closed set of facts that can appear in a ship's
// log. Adding a variant means extending the apply fold in
// ShipAggregate and the codec in eventstore; the compiler flags both
// through this interface.
type ShipEvent interface {
	EventType() string
	OccurredAt() time.Time

	isShipEvent()
}

// ShipLaunchedEvent records the launch of a new ship with its initial
// hull. It is always the first event in a log and the only event that
// sets the ship's identity.
type ShipLaunchedEvent struct {
	ShipID    uuid.UUID `json:"ship_id"`
	Name      string    `json:"name"`
	Hull      []Plank   `json:"hull"`
	Timestamp time.Time `json:"timestamp"`
}

func (ShipLaunchedEvent) EventType() string { return ShipLaunched }

func (e ShipLaunchedEvent) OccurredAt() time.Time { return e.Timestamp }

func (ShipLaunchedEvent) isShipEvent() {}

// PlankReplacedEvent records the replacement of one hull plank.
type PlankReplacedEvent struct {
	ShipID    uuid.UUID `json:"ship_id"`
	Position  int       `json:"position"`
	NewPlank  Plank     `json:"new_plank"`
	Timestamp time.Time `json:"timestamp"`
}

func (PlankReplacedEvent) EventType() string { return PlankReplaced }

func (e PlankReplacedEvent) OccurredAt() time.Time { return e.Timestamp }

func (PlankReplacedEvent) isShipEvent() {}
