package projections

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"example.com/shipyard/services/fleet/domain"
	"example.com/shipyard/services/fleet/eventstore"
	"example.com/shipyard/services/fleet/models"
)

// EventProcessor processes stored events and projects them into the
// read models.
type EventProcessor struct {
	db                 *gorm.DB
	shipProjector      *ShipProjector
	eventStore         *eventstore.GormEventStore
	batchSize          int
	processingInterval time.Duration
	running            bool
	mutex              sync.Mutex
	stopChan           chan struct{}
}

// NewEventProcessor creates a new event processor
func NewEventProcessor(db *gorm.DB, shipProjector *ShipProjector, eventStore *eventstore.GormEventStore) *EventProcessor {
	return &EventProcessor{
		db:                 db,
		shipProjector:      shipProjector,
		eventStore:         eventStore,
		batchSize:          100,
		processingInterval: 5 * time.Second,
		running:            false,
		stopChan:           make(chan struct{}),
	}
}

// Start starts the event processor
func (p *EventProcessor) Start() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.running {
		return
	}

	p.running = true
	go p.processEvents()
}

// Stop stops the event processor
func (p *EventProcessor) Stop() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if !p.running {
		return
	}

	p.running = false
	p.stopChan <- struct{}{}
}

// processEvents processes events in a loop
func (p *EventProcessor) processEvents() {
	ticker := time.NewTicker(p.processingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := p.processBatch(); err != nil {
				log.Error().Err(err).Msg("Failed to process event batch")
			}
		case <-p.stopChan:
			return
		}
	}
}

// processBatch processes a batch of unprocessed events
func (p *EventProcessor) processBatch() error {
	ctx := context.Background()

	events, err := p.eventStore.GetUnprocessedEvents(ctx, p.batchSize)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		return nil
	}

	log.Info().Msgf("Processing %d events", len(events))

	for _, event := range events {
		if err := p.processEvent(ctx, event); err != nil {
			log.Error().Err(err).Str("event_id", event.EventID).Msg("Failed to process event")
			// Record the error on the row and move on
			errMsg := err.Error()
			p.db.Model(&event).Updates(map[string]interface{}{
				"error": &errMsg,
			})
			continue
		}

		if err := p.eventStore.MarkEventAsProcessed(ctx, event.EventID); err != nil {
			log.Error().Err(err).Str("event_id", event.EventID).Msg("Failed to mark event as processed")
		}
	}

	return nil
}

// processEvent projects a single event row
func (p *EventProcessor) processEvent(ctx context.Context, event models.Event) error {
	switch event.AggregateType {
	case domain.AggregateTypeShip:
		return p.shipProjector.Project(ctx, event)
	default:
		log.Warn().Str("aggregate_type", event.AggregateType).Msg("Unknown aggregate type")
		return nil
	}
}
