package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"example.com/shipyard/services/fleet/domain"
	"example.com/shipyard/services/fleet/eventstore"
	"example.com/shipyard/services/fleet/projections"
	"example.com/shipyard/services/fleet/utils"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the Ship of Theseus identity models",
	Long: `Launches a ship, replaces every plank, and shows how the entity
model, the event-sourced model and the bounded-context views each
answer the question "is it still the same ship?"`,
	Run: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	oak := domain.Plank{Material: "oak", Length: 300, Width: 30}
	teak := domain.Plank{Material: "teak", Length: 300, Width: 30}
	mahogany := domain.Plank{Material: "mahogany", Length: 300, Width: 30}

	// Entity model: identity survives because the identifier does.
	entity := domain.NewShip("Theseus's Ship", []domain.Plank{oak, oak})
	if err := entity.ReplacePlank(0, teak); err != nil {
		log.Fatal().Err(err).Msg("Entity replacement failed")
	}
	if err := entity.ReplacePlank(1, mahogany); err != nil {
		log.Fatal().Err(err).Msg("Entity replacement failed")
	}
	fmt.Printf("Entity model: ship %s kept its identity through a full hull swap\n", entity.ShipID)

	// Event-sourced model: identity is the narrative.
	ship, err := domain.LaunchShip("Theseus's Ship", []domain.Plank{oak, oak}, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Launch failed")
	}
	if err := ship.ReplacePlank(0, teak); err != nil {
		log.Fatal().Err(err).Msg("Replacement failed")
	}
	if err := ship.ReplacePlank(1, mahogany); err != nil {
		log.Fatal().Err(err).Msg("Replacement failed")
	}

	rebuilt, err := domain.FromEvents(ship.GetEvents())
	if err != nil {
		log.Fatal().Err(err).Msg("Replay failed")
	}
	fmt.Printf("Event-sourced model: %d events, replay rebuilds the same hull: %v\n",
		len(ship.GetEvents()), fmt.Sprint(rebuilt.Hull()) == fmt.Sprint(ship.Hull()))

	// Same final hull, different narrative.
	shipA, _ := domain.LaunchShip("Ship A", []domain.Plank{oak, oak}, nil)
	shipB, _ := domain.LaunchShip("Ship B", []domain.Plank{oak, oak}, nil)
	_ = shipA.ReplacePlank(0, teak)
	_ = shipA.ReplacePlank(1, mahogany)
	_ = shipB.ReplacePlank(1, mahogany)
	_ = shipB.ReplacePlank(0, teak)
	fmt.Printf("Order sensitivity: same final hull %v, same log %v\n",
		fmt.Sprint(shipA.Hull()) == fmt.Sprint(shipB.Hull()),
		fmt.Sprint(shipA.GetEvents()) == fmt.Sprint(shipB.GetEvents()))

	// Bounded contexts: same ship, different meanings.
	maintenance := projections.BuildMaintenanceReport(ship)
	spec := projections.BuildFleetShipSpec(ship)
	fmt.Printf("Maintenance context: %d repairs, needs inspection: %v\n",
		maintenance.RepairCount, maintenance.NeedsInspection)
	fmt.Printf("Fleet context: cargo capacity %.0f, crew size %d (history irrelevant)\n",
		spec.CargoCapacity, spec.CrewSize)

	// Persistence round trip through the file store.
	store, err := eventstore.NewFileEventStore(cfg.EventLogDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create file store")
	}
	if err := store.Save(ctx, ship); err != nil {
		log.Fatal().Err(err).Msg("Failed to save events")
	}

	loaded, err := store.Load(ctx, ship.GetID())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load events")
	}
	fmt.Printf("Persistence: loaded ship matches: id %v, hull %v\n",
		loaded.GetID() == ship.GetID(),
		fmt.Sprint(loaded.Hull()) == fmt.Sprint(ship.Hull()))

	state, err := utils.PrettyPrint(loaded.State())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to render state")
	}
	fmt.Println(state)
}
