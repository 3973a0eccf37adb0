package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"example.com/shipyard/services/fleet/config"
	"example.com/shipyard/services/fleet/handlers"
)

// Server is the HTTP server for the API
type Server struct {
	cfg         config.Config
	router      *gin.Engine
	httpServer  *http.Server
	db          *gorm.DB
	shipHandler *handlers.ShipHandler
}

// NewServer creates a new API server
func NewServer(cfg config.Config, db *gorm.DB, shipHandler *handlers.ShipHandler) *Server {
	server := &Server{
		cfg:         cfg,
		router:      gin.Default(),
		db:          db,
		shipHandler: shipHandler,
	}

	// Setup middleware
	server.setupMiddleware()

	// Setup routes
	server.setupRoutes()

	return server
}

// setupMiddleware adds middleware to the router
func (s *Server) setupMiddleware() {
	s.router.Use(RequestIDMiddleware())
	s.router.Use(CORSMiddleware())
	s.router.Use(gin.Recovery())
	s.router.Use(LoggingMiddleware())
}

// setupRoutes defines the API routes
func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	// API v1 group
	v1 := s.router.Group("/api/v1")

	// Ship routes
	shipRoutes := v1.Group("/ship")
	{
		shipRoutes.POST("/events", s.receiveShipCommands)
		shipRoutes.GET("/:id", s.getShip)
		shipRoutes.GET("/:id/history", s.getShipHistory)
		shipRoutes.GET("/:id/maintenance", s.getShipMaintenance)
		shipRoutes.GET("/:id/spec", s.getShipSpec)
	}

	// Fleet read model
	v1.GET("/ships", s.listShips)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:    s.cfg.HTTPServerAddress,
		Handler: s.router,
	}

	log.Info().Msgf("HTTP server starting on %s", s.cfg.HTTPServerAddress)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
