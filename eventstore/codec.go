package eventstore

import (
	"encoding/json"
	"fmt"

	"example.com/shipyard/services/fleet/domain"
)

// MarshalEvent converts a domain event into its discriminator tag and
// JSON payload. UUIDs serialize in canonical text form and timestamps
// as RFC 3339, so the inverse conversion recovers every field.
func MarshalEvent(event domain.ShipEvent) (string, []byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", nil, fmt.Errorf("failed to marshal %s event: %w", event.EventType(), err)
	}
	return event.EventType(), data, nil
}

// UnmarshalEvent is the inverse of MarshalEvent. A tag that matches
// no known variant fails with domain.ErrUnknownEventType.
func UnmarshalEvent(eventType string, data []byte) (domain.ShipEvent, error) {
	switch eventType {
	case domain.ShipLaunched:
		var event domain.ShipLaunchedEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s event: %w", eventType, err)
		}
		return event, nil

	case domain.PlankReplaced:
		var event domain.PlankReplacedEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s event: %w", eventType, err)
		}
		return event, nil

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownEventType, eventType)
	}
}
