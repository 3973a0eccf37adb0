package projections

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"example.com/shipyard/services/fleet/domain"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(time.Hour)
	return t
}

func repairedShip(t *testing.T) *domain.ShipAggregate {
	t.Helper()
	clock := &fixedClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	ship, err := domain.LaunchShip("HMS Victory", []domain.Plank{
		{Material: "oak", Length: 300, Width: 40},
		{Material: "oak", Length: 300, Width: 40},
	}, clock)
	require.NoError(t, err)
	require.NoError(t, ship.ReplacePlank(0, domain.Plank{Material: "teak", Length: 300, Width: 40}))
	return ship
}

func TestBuildMaintenanceReport(t *testing.T) {
	ship := repairedShip(t)
	report := BuildMaintenanceReport(ship)

	require.Equal(t, ship.GetID(), report.ShipID)
	require.Equal(t, "HMS Victory", report.Name)
	require.Equal(t, 1, report.RepairCount)
	require.True(t, report.NeedsInspection)
	require.Len(t, report.Repairs, 1)
	require.Equal(t, 0, report.Repairs[0].Position)
	require.Equal(t, "teak", report.Repairs[0].Material)
	require.NotNil(t, report.LastRepairAt)
	require.True(t, report.LastRepairAt.Equal(report.Repairs[0].ReplacedAt))
}

func TestBuildMaintenanceReportFreshShip(t *testing.T) {
	ship, err := domain.LaunchShip("Fresh", []domain.Plank{{Material: "oak", Length: 300, Width: 30}}, nil)
	require.NoError(t, err)

	report := BuildMaintenanceReport(ship)
	require.Zero(t, report.RepairCount)
	require.False(t, report.NeedsInspection)
	require.Nil(t, report.LastRepairAt)
	require.Empty(t, report.Repairs)
}

// The fleet-planning view depends only on the current hull: a ship
// with a repair history and one launched directly with the same hull
// get identical specs (ignoring identity).
func TestBuildFleetShipSpecIgnoresHistory(t *testing.T) {
	repaired := repairedShip(t)

	fresh, err := domain.LaunchShip("HMS Victory", repaired.Hull(), nil)
	require.NoError(t, err)

	repairedSpec := BuildFleetShipSpec(repaired)
	freshSpec := BuildFleetShipSpec(fresh)

	require.Equal(t, repairedSpec.HullSize, freshSpec.HullSize)
	require.Equal(t, repairedSpec.CargoCapacity, freshSpec.CargoCapacity)
	require.Equal(t, repairedSpec.CrewSize, freshSpec.CrewSize)

	// 2 planks of 300x40: area 24000, capacity 12000, crew 2+1.
	require.Equal(t, 12000.0, repairedSpec.CargoCapacity)
	require.Equal(t, 3, repairedSpec.CrewSize)
}
