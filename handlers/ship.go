package handlers

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"example.com/shipyard/services/fleet/domain"
	"example.com/shipyard/services/fleet/eventstore"
	"example.com/shipyard/services/fleet/utils"
)

// PlankInput carries a plank across the command boundary.
type PlankInput struct {
	Material string  `json:"material" validate:"required"`
	Length   float64 `json:"length" validate:"gt=0"`
	Width    float64 `json:"width" validate:"gt=0"`
}

// LaunchShipCommand launches a new ship. Name may be empty and the
// hull may have zero planks; the domain allows both.
type LaunchShipCommand struct {
	Name string       `json:"name"`
	Hull []PlankInput `json:"hull" validate:"dive"`
}

// ReplacePlankCommand replaces one plank of an existing ship.
type ReplacePlankCommand struct {
	ShipID   string     `json:"ship_id" validate:"required,uuid"`
	Position int        `json:"position"`
	NewPlank PlankInput `json:"new_plank"`
}

// ShipHandler handles ship commands
type ShipHandler struct {
	eventStore eventstore.EventStore
	clock      domain.Clock
}

// NewShipHandler creates a new ship handler. A nil clock means the
// wall clock.
func NewShipHandler(store eventstore.EventStore, clock domain.Clock) *ShipHandler {
	if clock == nil {
		clock = domain.SystemClock
	}
	return &ShipHandler{eventStore: store, clock: clock}
}

// HandleLaunchShip launches a ship and persists its launch event.
func (h *ShipHandler) HandleLaunchShip(ctx context.Context, cmd LaunchShipCommand) (*domain.ShipAggregate, error) {
	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, fmt.Errorf("invalid LaunchShip command: %w", err)
	}

	hull, err := plankInputsToHull(cmd.Hull)
	if err != nil {
		return nil, err
	}

	ship, err := domain.LaunchShip(cmd.Name, hull, h.clock)
	if err != nil {
		return nil, err
	}

	if err := h.eventStore.Save(ctx, ship); err != nil {
		return nil, fmt.Errorf("failed to save launch event: %w", err)
	}

	log.Info().
		Str("shipID", ship.GetID().String()).
		Str("name", ship.Name()).
		Int("hullSize", len(ship.Hull())).
		Msg("Ship launched")

	return ship, nil
}

// HandleReplacePlank loads the ship, applies the replacement and
// persists the new event.
func (h *ShipHandler) HandleReplacePlank(ctx context.Context, cmd ReplacePlankCommand) (*domain.ShipAggregate, error) {
	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, fmt.Errorf("invalid ReplacePlank command: %w", err)
	}

	shipID, err := uuid.Parse(cmd.ShipID)
	if err != nil {
		return nil, fmt.Errorf("invalid ship ID %q: %w", cmd.ShipID, err)
	}

	newPlank, err := domain.NewPlank(cmd.NewPlank.Material, cmd.NewPlank.Length, cmd.NewPlank.Width)
	if err != nil {
		return nil, err
	}

	ship, err := h.eventStore.Load(ctx, shipID)
	if err != nil {
		return nil, err
	}
	ship.SetClock(h.clock)

	if err := ship.ReplacePlank(cmd.Position, newPlank); err != nil {
		return nil, err
	}

	if err := h.eventStore.Save(ctx, ship); err != nil {
		return nil, fmt.Errorf("failed to save replacement event: %w", err)
	}

	log.Info().
		Str("shipID", ship.GetID().String()).
		Int("position", cmd.Position).
		Str("material", newPlank.Material).
		Msg("Plank replaced")

	return ship, nil
}

// GetShip replays a ship from its stored events.
func (h *ShipHandler) GetShip(ctx context.Context, shipID uuid.UUID) (*domain.ShipAggregate, error) {
	return h.eventStore.Load(ctx, shipID)
}

// GetShipHistory returns the ship's full event log.
func (h *ShipHandler) GetShipHistory(ctx context.Context, shipID uuid.UUID) ([]domain.ShipEvent, error) {
	events, err := h.eventStore.GetEvents(ctx, shipID)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, eventstore.ErrNotFound
	}
	return events, nil
}

func plankInputsToHull(inputs []PlankInput) ([]domain.Plank, error) {
	hull := make([]domain.Plank, 0, len(inputs))
	for i, input := range inputs {
		plank, err := domain.NewPlank(input.Material, input.Length, input.Width)
		if err != nil {
			return nil, fmt.Errorf("hull plank %d: %w", i, err)
		}
		hull = append(hull, plank)
	}
	return hull, nil
}
