package eventstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"example.com/shipyard/services/fleet/domain"
)

// MemoryEventStore keeps event logs in process memory. It backs unit
// tests and the demo command; the GORM store is the production path.
type MemoryEventStore struct {
	mu   sync.RWMutex
	logs map[uuid.UUID][]domain.ShipEvent
}

// NewMemoryEventStore creates an empty in-memory event store.
func NewMemoryEventStore() *MemoryEventStore {
	return &MemoryEventStore{logs: make(map[uuid.UUID][]domain.ShipEvent)}
}

// Save appends the aggregate's uncommitted events.
func (s *MemoryEventStore) Save(_ context.Context, ship *domain.ShipAggregate) error {
	events := ship.UncommittedEvents()
	if len(events) == 0 {
		return nil
	}

	s.mu.Lock()
	s.logs[ship.GetID()] = append(s.logs[ship.GetID()], events...)
	s.mu.Unlock()

	ship.MarkCommitted()
	return nil
}

// Load replays a ship from its stored events.
func (s *MemoryEventStore) Load(_ context.Context, shipID uuid.UUID) (*domain.ShipAggregate, error) {
	s.mu.RLock()
	events, ok := s.logs[shipID]
	s.mu.RUnlock()

	if !ok || len(events) == 0 {
		return nil, ErrNotFound
	}

	return domain.FromEvents(append([]domain.ShipEvent(nil), events...))
}

// Exists checks whether any events are stored for the ship.
func (s *MemoryEventStore) Exists(_ context.Context, shipID uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.logs[shipID]) > 0, nil
}

// GetEvents returns the ship's events in production order.
func (s *MemoryEventStore) GetEvents(_ context.Context, shipID uuid.UUID) ([]domain.ShipEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.ShipEvent(nil), s.logs[shipID]...), nil
}
