package eventstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"example.com/shipyard/services/fleet/domain"
	"example.com/shipyard/services/fleet/models"
)

// GormEventStore implements EventStore on a relational database.
type GormEventStore struct {
	db *gorm.DB
}

// NewGormEventStore creates a new GORM event store
func NewGormEventStore(db *gorm.DB) *GormEventStore {
	return &GormEventStore{db: db}
}

// Save appends the aggregate's uncommitted events in one transaction.
// The committed marker advances only when the transaction succeeds,
// so a failed save leaves the events eligible for retry.
func (s *GormEventStore) Save(ctx context.Context, ship *domain.ShipAggregate) error {
	events := ship.UncommittedEvents()
	if len(events) == 0 {
		return nil
	}

	baseVersion := ship.GetVersion() - len(events)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, event := range events {
			eventType, data, err := MarshalEvent(event)
			if err != nil {
				return err
			}

			dbEvent := models.Event{
				EventID:       uuid.New().String(),
				AggregateID:   ship.GetID().String(),
				AggregateType: ship.GetType(),
				EventType:     eventType,
				Data:          data,
				Version:       baseVersion + i + 1,
				Timestamp:     event.OccurredAt(),
				Processed:     false,
			}

			if err := tx.Create(&dbEvent).Error; err != nil {
				return fmt.Errorf("failed to save event: %w", err)
			}

			log.Info().
				Str("shipID", dbEvent.AggregateID).
				Str("eventType", eventType).
				Int("version", dbEvent.Version).
				Msg("Event saved")
		}

		ship.MarkCommitted()
		return nil
	})
}

// Load replays a ship from its stored events.
func (s *GormEventStore) Load(ctx context.Context, shipID uuid.UUID) (*domain.ShipAggregate, error) {
	events, err := s.GetEvents(ctx, shipID)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, ErrNotFound
	}

	return domain.FromEvents(events)
}

// Exists checks whether any events are stored for the ship.
func (s *GormEventStore) Exists(ctx context.Context, shipID uuid.UUID) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("aggregate_id = ?", shipID.String()).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check if ship exists: %w", err)
	}

	return count > 0, nil
}

// GetEvents returns the ship's events in production order.
func (s *GormEventStore) GetEvents(ctx context.Context, shipID uuid.UUID) ([]domain.ShipEvent, error) {
	var dbEvents []models.Event
	if err := s.db.WithContext(ctx).
		Where("aggregate_id = ?", shipID.String()).
		Order("version ASC").
		Find(&dbEvents).Error; err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	events := make([]domain.ShipEvent, 0, len(dbEvents))
	for _, dbEvent := range dbEvents {
		event, err := UnmarshalEvent(dbEvent.EventType, dbEvent.Data)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

// GetUnprocessedEvents returns stored event rows the projection
// worker has not handled yet, oldest first.
func (s *GormEventStore) GetUnprocessedEvents(ctx context.Context, limit int) ([]models.Event, error) {
	var dbEvents []models.Event
	if err := s.db.WithContext(ctx).
		Where("processed = ?", false).
		Order("timestamp ASC").
		Limit(limit).
		Find(&dbEvents).Error; err != nil {
		return nil, fmt.Errorf("failed to get unprocessed events: %w", err)
	}

	return dbEvents, nil
}

// MarkEventAsProcessed marks an event row as projected.
func (s *GormEventStore) MarkEventAsProcessed(ctx context.Context, eventID string) error {
	if err := s.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("event_id = ?", eventID).
		Update("processed", true).
		Update("updated_at", time.Now()).
		Error; err != nil {
		return fmt.Errorf("failed to mark event as processed: %w", err)
	}

	return nil
}
