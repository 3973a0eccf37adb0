package projections

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v7"
	"gorm.io/gorm"

	"example.com/shipyard/services/fleet/config"
	"example.com/shipyard/services/fleet/domain"
	"example.com/shipyard/services/fleet/eventstore"
	"example.com/shipyard/services/fleet/models"
)

// Constants for index names
const (
	ShipsIndex      = "ships"
	ShipEventsIndex = "ship-events"
)

// ShipProjector folds stored event rows into the ship read model and
// mirrors both the state and the raw events into Elasticsearch.
type ShipProjector struct {
	db            *gorm.DB
	elasticClient *elasticsearch.Client
	cfg           config.Config
}

// NewShipProjector creates a new ship projector
func NewShipProjector(db *gorm.DB, elasticClient *elasticsearch.Client, cfg config.Config) *ShipProjector {
	return &ShipProjector{
		db:            db,
		elasticClient: elasticClient,
		cfg:           cfg,
	}
}

// Project projects one stored event row.
func (p *ShipProjector) Project(ctx context.Context, event models.Event) error {
	domainEvent, err := eventstore.UnmarshalEvent(event.EventType, event.Data)
	if err != nil {
		return err
	}

	switch e := domainEvent.(type) {
	case domain.ShipLaunchedEvent:
		return p.projectShipLaunched(ctx, event, e)
	case domain.PlankReplacedEvent:
		return p.projectPlankReplaced(ctx, event, e)
	default:
		return fmt.Errorf("%w: %T", domain.ErrUnknownEventType, domainEvent)
	}
}

// projectShipLaunched handles the ship launched event
func (p *ShipProjector) projectShipLaunched(ctx context.Context, row models.Event, data domain.ShipLaunchedEvent) error {
	hull, err := json.Marshal(data.Hull)
	if err != nil {
		return fmt.Errorf("failed to marshal hull: %w", err)
	}

	ship := models.Ship{
		ShipID:     data.ShipID,
		Name:       data.Name,
		Version:    row.Version,
		Hull:       hull,
		HullSize:   len(data.Hull),
		LaunchedAt: data.Timestamp,
		CreatedAt:  row.Timestamp,
		UpdatedAt:  row.Timestamp,
	}

	if err := p.db.WithContext(ctx).Create(&ship).Error; err != nil {
		return fmt.Errorf("failed to create ship in database: %w", err)
	}

	if err := p.indexDocument(ctx, ShipsIndex, data.ShipID.String(), ship); err != nil {
		return err
	}

	return p.indexDocument(ctx, ShipEventsIndex, row.EventID, row)
}

// projectPlankReplaced handles the plank replaced event
func (p *ShipProjector) projectPlankReplaced(ctx context.Context, row models.Event, data domain.PlankReplacedEvent) error {
	var ship models.Ship
	if err := p.db.WithContext(ctx).
		Where("ship_id = ?", data.ShipID).
		First(&ship).Error; err != nil {
		return fmt.Errorf("failed to load ship read model: %w", err)
	}

	var hull []domain.Plank
	if err := json.Unmarshal(ship.Hull, &hull); err != nil {
		return fmt.Errorf("failed to parse hull: %w", err)
	}

	if data.Position < 0 || data.Position >= len(hull) {
		return fmt.Errorf("%w: replacement at %d for hull of %d planks",
			domain.ErrCorruptLog, data.Position, len(hull))
	}
	hull[data.Position] = data.NewPlank

	hullDoc, err := json.Marshal(hull)
	if err != nil {
		return fmt.Errorf("failed to marshal hull: %w", err)
	}

	replacedAt := data.Timestamp
	updateFields := map[string]interface{}{
		"version":        row.Version,
		"hull":           hullDoc,
		"repair_count":   ship.RepairCount + 1,
		"last_repair_at": &replacedAt,
		"updated_at":     row.Timestamp,
	}

	if err := p.db.WithContext(ctx).Model(&models.Ship{}).
		Where("ship_id = ?", data.ShipID).
		Updates(updateFields).Error; err != nil {
		return fmt.Errorf("failed to update ship in database: %w", err)
	}

	updateDoc := map[string]interface{}{"doc": updateFields}
	jsonBody, err := json.Marshal(updateDoc)
	if err != nil {
		return fmt.Errorf("failed to marshal update doc: %w", err)
	}

	index := FormatIndex(ShipsIndex, p.cfg)
	res, err := p.elasticClient.Update(
		index,
		data.ShipID.String(),
		bytes.NewReader(jsonBody),
		p.elasticClient.Update.WithRefresh("true"),
		p.elasticClient.Update.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to update ship in Elasticsearch: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("failed to update ship in Elasticsearch: %s", res.String())
	}

	return p.indexDocument(ctx, ShipEventsIndex, row.EventID, row)
}

// indexDocument indexes one document into the named index.
func (p *ShipProjector) indexDocument(ctx context.Context, indexName, documentID string, doc interface{}) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	index := FormatIndex(indexName, p.cfg)
	res, err := p.elasticClient.Index(
		index,
		bytes.NewReader(body),
		p.elasticClient.Index.WithDocumentID(documentID),
		p.elasticClient.Index.WithRefresh("true"),
		p.elasticClient.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to index document in Elasticsearch: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("failed to index document in Elasticsearch: %s", res.String())
	}

	return nil
}
