package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"example.com/shipyard/services/fleet/api"
	"example.com/shipyard/services/fleet/domain"
	"example.com/shipyard/services/fleet/eventstore"
	"example.com/shipyard/services/fleet/handlers"
	"example.com/shipyard/services/fleet/messaging"
	"example.com/shipyard/services/fleet/models"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the API server",
	Run:   runServer,
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

func runServer(cmd *cobra.Command, args []string) {
	log.Info().Msg("Starting server")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.DBSource), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Auto migrate tables
	if cfg.EnableMigrations {
		if err := db.AutoMigrate(&models.Event{}, &models.Ship{}); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	// Initialize event store
	eventStore := eventstore.NewGormEventStore(db)

	// Initialize command handler
	shipHandler := handlers.NewShipHandler(eventStore, domain.SystemClock)

	// Initialize Azure Service Bus client
	azureClient, err := messaging.NewAzureClient(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Azure Service Bus")
	}

	// Initialize message processor
	msgProcessor := messaging.NewProcessor(shipHandler)

	// Start message consumer
	go func() {
		if err := azureClient.StartConsumers(cfg.AzureShipCommandsQueueName, msgProcessor); err != nil {
			log.Fatal().Err(err).Msg("Failed to start ship commands queue consumer")
		}
	}()

	// Initialize server
	server := api.NewServer(cfg, db, shipHandler)

	// Start HTTP server
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Create context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server gracefully
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
