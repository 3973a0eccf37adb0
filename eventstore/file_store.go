package eventstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"example.com/shipyard/services/fleet/domain"
)

// FileEventStore persists each ship's log as one JSON document on
// disk, named after the ship's identifier. It exists for demos and
// offline inspection, not for durability under concurrent writers.
type FileEventStore struct {
	dir string
}

// fileEvent is the on-disk envelope: discriminator tag plus payload.
type fileEvent struct {
	EventType string          `json:"event_type"`
	Data      json.RawMessage `json:"data"`
}

// NewFileEventStore creates the directory if needed.
func NewFileEventStore(dir string) (*FileEventStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create event store directory: %w", err)
	}
	return &FileEventStore{dir: dir}, nil
}

func (s *FileEventStore) path(shipID uuid.UUID) string {
	return filepath.Join(s.dir, shipID.String()+".json")
}

// Save rewrites the ship's log file with the stored prefix plus the
// aggregate's uncommitted events.
func (s *FileEventStore) Save(ctx context.Context, ship *domain.ShipAggregate) error {
	newEvents := ship.UncommittedEvents()
	if len(newEvents) == 0 {
		return nil
	}

	stored, err := s.readFile(ship.GetID())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	for _, event := range newEvents {
		eventType, data, err := MarshalEvent(event)
		if err != nil {
			return err
		}
		stored = append(stored, fileEvent{EventType: eventType, Data: data})
	}

	doc, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal event log: %w", err)
	}

	if err := os.WriteFile(s.path(ship.GetID()), doc, 0o644); err != nil {
		return fmt.Errorf("failed to write event log: %w", err)
	}

	ship.MarkCommitted()
	return nil
}

// Load replays a ship from its log file.
func (s *FileEventStore) Load(ctx context.Context, shipID uuid.UUID) (*domain.ShipAggregate, error) {
	events, err := s.GetEvents(ctx, shipID)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, ErrNotFound
	}

	return domain.FromEvents(events)
}

// Exists checks whether a log file is present for the ship.
func (s *FileEventStore) Exists(_ context.Context, shipID uuid.UUID) (bool, error) {
	_, err := os.Stat(s.path(shipID))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat event log: %w", err)
	}
	return true, nil
}

// GetEvents returns the ship's events in production order.
func (s *FileEventStore) GetEvents(_ context.Context, shipID uuid.UUID) ([]domain.ShipEvent, error) {
	stored, err := s.readFile(shipID)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	events := make([]domain.ShipEvent, 0, len(stored))
	for _, fe := range stored {
		event, err := UnmarshalEvent(fe.EventType, fe.Data)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

func (s *FileEventStore) readFile(shipID uuid.UUID) ([]fileEvent, error) {
	doc, err := os.ReadFile(s.path(shipID))
	if err != nil {
		return nil, err
	}

	var stored []fileEvent
	if err := json.Unmarshal(doc, &stored); err != nil {
		return nil, fmt.Errorf("failed to parse event log: %w", err)
	}
	return stored, nil
}
