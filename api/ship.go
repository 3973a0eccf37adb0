package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"example.com/shipyard/services/fleet/domain"
	"example.com/shipyard/services/fleet/eventstore"
	"example.com/shipyard/services/fleet/handlers"
	"example.com/shipyard/services/fleet/models"
	"example.com/shipyard/services/fleet/projections"
)

// ShipResponse is the materialized state of a ship
type ShipResponse struct {
	ShipID  string         `json:"ship_id"`
	Name    string         `json:"name"`
	Version int            `json:"version"`
	Hull    []domain.Plank `json:"hull"`
}

// ShipEventResponse is one log entry in a ship's history
type ShipEventResponse struct {
	EventType string          `json:"event_type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// ShipCommandRequest is the command envelope for the POST surface
type ShipCommandRequest struct {
	EventType string          `json:"eventType"`
	Data      json.RawMessage `json:"data"`
}

// receiveShipCommands dispatches ship commands from the HTTP surface
func (s *Server) receiveShipCommands(c *gin.Context) {
	var req ShipCommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	switch req.EventType {
	case "LaunchShip":
		var cmd handlers.LaunchShipCommand
		if err := json.Unmarshal(req.Data, &cmd); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ship, err := s.shipHandler.HandleLaunchShip(ctx, cmd)
		if err != nil {
			log.Error().Err(err).Msg("Failed to handle LaunchShip command")
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"ship_id": ship.GetID().String()})
		return

	case "ReplacePlank":
		var cmd handlers.ReplacePlankCommand
		if err := json.Unmarshal(req.Data, &cmd); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ship, err := s.shipHandler.HandleReplacePlank(ctx, cmd)
		if err != nil {
			log.Error().Err(err).Msg("Failed to handle ReplacePlank command")
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ship_id": ship.GetID().String(), "version": ship.GetVersion()})
		return

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported event type"})
		return
	}
}

// getShip returns a ship's current state, replayed from its events
func (s *Server) getShip(c *gin.Context) {
	shipID, ok := s.parseShipID(c)
	if !ok {
		return
	}

	ship, err := s.shipHandler.GetShip(c.Request.Context(), shipID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ShipResponse{
		ShipID:  ship.GetID().String(),
		Name:    ship.Name(),
		Version: ship.GetVersion(),
		Hull:    ship.Hull(),
	})
}

// getShipHistory returns the ship's full event log
func (s *Server) getShipHistory(c *gin.Context) {
	shipID, ok := s.parseShipID(c)
	if !ok {
		return
	}

	events, err := s.shipHandler.GetShipHistory(c.Request.Context(), shipID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	history := make([]ShipEventResponse, 0, len(events))
	for _, event := range events {
		eventType, data, err := eventstore.MarshalEvent(event)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		history = append(history, ShipEventResponse{
			EventType: eventType,
			Timestamp: event.OccurredAt(),
			Data:      data,
		})
	}

	c.JSON(http.StatusOK, gin.H{"ship_id": shipID.String(), "events": history})
}

// getShipMaintenance returns the maintenance-context view of a ship
func (s *Server) getShipMaintenance(c *gin.Context) {
	shipID, ok := s.parseShipID(c)
	if !ok {
		return
	}

	ship, err := s.shipHandler.GetShip(c.Request.Context(), shipID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, projections.BuildMaintenanceReport(ship))
}

// getShipSpec returns the fleet-planning view of a ship
func (s *Server) getShipSpec(c *gin.Context) {
	shipID, ok := s.parseShipID(c)
	if !ok {
		return
	}

	ship, err := s.shipHandler.GetShip(c.Request.Context(), shipID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, projections.BuildFleetShipSpec(ship))
}

// listShips returns ships from the projected read model. Unlike the
// routes above it does not replay events; it reads what the worker
// has materialized so far.
func (s *Server) listShips(c *gin.Context) {
	var ships []models.Ship
	if err := s.db.Find(&ships).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ships": ships})
}

func (s *Server) parseShipID(c *gin.Context) (uuid.UUID, bool) {
	shipID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ship id"})
		return uuid.Nil, false
	}
	return shipID, true
}

func statusForError(err error) int {
	var indexErr *domain.PlankIndexError
	switch {
	case errors.Is(err, eventstore.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &indexErr), errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
