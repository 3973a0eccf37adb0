package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"
	"github.com/rs/zerolog/log"

	"example.com/shipyard/services/fleet/handlers"
)

// Command type definitions
const (
	LaunchShip   = "LaunchShip"
	ReplacePlank = "ReplacePlank"
)

// ShipBusMessage is the common message structure
type ShipBusMessage struct {
	EventType string          `json:"eventType"`
	Data      json.RawMessage `json:"data"`
}

type MessageProcessor interface {
	ProcessMessage(ctx context.Context, message *azservicebus.ReceivedMessage) error
}

type Processor struct {
	shipHandler *handlers.ShipHandler
}

func NewProcessor(shipHandler *handlers.ShipHandler) *Processor {
	return &Processor{shipHandler: shipHandler}
}

func (p *Processor) ProcessMessage(ctx context.Context, message *azservicebus.ReceivedMessage) error {
	var msg ShipBusMessage
	if err := json.Unmarshal(message.Body, &msg); err != nil {
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	log.Info().Str("eventType", msg.EventType).Msg("Processing message")

	switch msg.EventType {
	case LaunchShip:
		var cmd handlers.LaunchShipCommand
		if err := json.Unmarshal(msg.Data, &cmd); err != nil {
			return err
		}
		_, err := p.shipHandler.HandleLaunchShip(ctx, cmd)
		return err

	case ReplacePlank:
		var cmd handlers.ReplacePlankCommand
		if err := json.Unmarshal(msg.Data, &cmd); err != nil {
			return err
		}
		_, err := p.shipHandler.HandleReplacePlank(ctx, cmd)
		return err

	default:
		return fmt.Errorf("unknown command type: %s", msg.EventType)
	}
}
