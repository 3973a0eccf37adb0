package projections

import (
	"github.com/google/uuid"

	"example.com/shipyard/services/fleet/domain"
)

// Capacity heuristics for the fleet planners.
const (
	cargoPerHullArea = 0.5
	baseCrewSize     = 2
	planksPerCrew    = 2
)

// FleetShipSpec is the fleet-planning view of a ship: capacity
// numbers derived from the hull as it is today. Repair history is
// irrelevant in this context.
type FleetShipSpec struct {
	ShipID        uuid.UUID `json:"ship_id"`
	Name          string    `json:"name"`
	HullSize      int       `json:"hull_size"`
	CargoCapacity float64   `json:"cargo_capacity"`
	CrewSize      int       `json:"crew_size"`
}

// BuildFleetShipSpec derives the fleet-planning view from the ship's
// current state.
func BuildFleetShipSpec(ship *domain.ShipAggregate) FleetShipSpec {
	hull := ship.Hull()

	var area float64
	for _, plank := range hull {
		area += plank.Area()
	}

	return FleetShipSpec{
		ShipID:        ship.GetID(),
		Name:          ship.Name(),
		HullSize:      len(hull),
		CargoCapacity: area * cargoPerHullArea,
		CrewSize:      baseCrewSize + len(hull)/planksPerCrew,
	}
}
