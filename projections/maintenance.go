package projections

import (
	"time"

	"github.com/google/uuid"

	"example.com/shipyard/services/fleet/domain"
)

// inspectionRepairThreshold is how many repairs put a ship back on
// the inspection list.
const inspectionRepairThreshold = 1

// RepairRecord is one plank replacement as the maintenance crew sees it.
type RepairRecord struct {
	Position   int       `json:"position"`
	Material   string    `json:"material"`
	ReplacedAt time.Time `json:"replaced_at"`
}

// MaintenanceReport is the maintenance-context view of a ship. In
// this context the repair history is the point; the current hull is
// only background.
type MaintenanceReport struct {
	ShipID          uuid.UUID      `json:"ship_id"`
	Name            string         `json:"name"`
	LaunchedAt      time.Time      `json:"launched_at"`
	RepairCount     int            `json:"repair_count"`
	LastRepairAt    *time.Time     `json:"last_repair_at"`
	NeedsInspection bool           `json:"needs_inspection"`
	Repairs         []RepairRecord `json:"repairs"`
}

// BuildMaintenanceReport derives the maintenance view from the ship's
// event log.
func BuildMaintenanceReport(ship *domain.ShipAggregate) MaintenanceReport {
	report := MaintenanceReport{
		ShipID:  ship.GetID(),
		Name:    ship.Name(),
		Repairs: []RepairRecord{},
	}

	for _, event := range ship.GetEvents() {
		switch e := event.(type) {
		case domain.ShipLaunchedEvent:
			report.LaunchedAt = e.Timestamp
		case domain.PlankReplacedEvent:
			replacedAt := e.Timestamp
			report.Repairs = append(report.Repairs, RepairRecord{
				Position:   e.Position,
				Material:   e.NewPlank.Material,
				ReplacedAt: replacedAt,
			})
			report.RepairCount++
			report.LastRepairAt = &replacedAt
		}
	}

	report.NeedsInspection = report.RepairCount >= inspectionRepairThreshold
	return report
}
