package eventstore

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"example.com/shipyard/services/fleet/domain"
)

// ErrNotFound is returned by Load when no events exist for the ship.
var ErrNotFound = errors.New("ship not found")

// EventStore is the interface for ship event storage. Implementations
// persist events in the exact order the aggregate produced them.
type EventStore interface {
	// Save appends the aggregate's uncommitted events to the store.
	Save(ctx context.Context, ship *domain.ShipAggregate) error

	// Load replays a ship from its stored events.
	Load(ctx context.Context, shipID uuid.UUID) (*domain.ShipAggregate, error)

	// Exists checks whether any events are stored for the ship.
	Exists(ctx context.Context, shipID uuid.UUID) (bool, error)

	// GetEvents returns the ship's events in production order.
	GetEvents(ctx context.Context, shipID uuid.UUID) ([]domain.ShipEvent, error)
}
