package domain

import "github.com/google/uuid"

// Ship is the plain entity model: an identity plus the current hull,
// with no memory of past repairs. It exists alongside ShipAggregate
// to contrast the two ways of modeling identity over time; after
// every plank has been swapped, the entity still answers "same ship"
// purely because the identifier never changed.
type Ship struct {
	ShipID uuid.UUID
	Name   string
	Hull   []Plank
}

// NewShip creates a ship with a fresh identity and a copy of hull.
func NewShip(name string, hull []Plank) *Ship {
	return &Ship{
		ShipID: uuid.New(),
		Name:   name,
		Hull:   clonePlanks(hull),
	}
}

// ReplacePlank swaps the plank at position in place.
func (s *Ship) ReplacePlank(position int, newPlank Plank) error {
	if position < 0 || position >= len(s.Hull) {
		return &PlankIndexError{Position: position, HullSize: len(s.Hull)}
	}

	s.Hull[position] = newPlank
	return nil
}
