package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// ShipState is the materialized state of a ship: what the ship is
// right now, with no memory of how it got there.
type ShipState struct {
	ShipID uuid.UUID
	Name   string
	Hull   []Plank
}

// ShipAggregate combines a ship's current state with the ordered log
// of events that produced it. State changes only by applying an
// event, so replaying the log from the empty state always rebuilds
// the same ship.
type ShipAggregate struct {
	state     ShipState
	version   int
	changes   []ShipEvent
	committed int
	clock     Clock
}

var _ Aggregate = (*ShipAggregate)(nil)

// LaunchShip mints a new ship identity and records the launch as the
// first event of a fresh log. The name may be empty and the hull may
// have zero planks. A nil clock falls back to SystemClock.
func LaunchShip(name string, hull []Plank, clock Clock) (*ShipAggregate, error) {
	if clock == nil {
		clock = SystemClock
	}

	a := &ShipAggregate{clock: clock}
	event := ShipLaunchedEvent{
		ShipID:    uuid.New(),
		Name:      name,
		Hull:      clonePlanks(hull),
		Timestamp: clock.Now(),
	}

	if err := a.apply(event); err != nil {
		return nil, err
	}
	a.record(event)

	return a, nil
}

// FromEvents rebuilds a ship by replaying an event sequence from the
// placeholder state (uuid.Nil identity, empty name, empty hull). The
// returned aggregate keeps the input sequence verbatim as its log and
// shares no state with whatever produced the events.
//
// A replacement event pointing outside the materialized hull means
// the sequence was corrupted somewhere between save and load; replay
// fails with an error wrapping ErrCorruptLog.
func FromEvents(events []ShipEvent) (*ShipAggregate, error) {
	a := &ShipAggregate{clock: SystemClock}
	for i, event := range events {
		if err := a.apply(event); err != nil {
			return nil, fmt.Errorf("%w: event %d (%s): %v", ErrCorruptLog, i, event.EventType(), err)
		}
		a.record(event)
	}
	a.MarkCommitted()

	return a, nil
}

// SetClock replaces the clock used to stamp subsequent events.
// FromEvents defaults to the wall clock, so callers holding a replayed
// aggregate use this to keep their own clock in charge. A nil clock
// means the wall clock.
func (a *ShipAggregate) SetClock(clock Clock) {
	if clock == nil {
		clock = SystemClock
	}
	a.clock = clock
}

// ReplacePlank swaps the plank at position for newPlank and records
// the replacement. The hull never grows or shrinks here. An
// out-of-range position fails before the event is constructed, so a
// failed call leaves both state and log untouched.
func (a *ShipAggregate) ReplacePlank(position int, newPlank Plank) error {
	if position < 0 || position >= len(a.state.Hull) {
		return &PlankIndexError{Position: position, HullSize: len(a.state.Hull)}
	}

	event := PlankReplacedEvent{
		ShipID:    a.state.ShipID,
		Position:  position,
		NewPlank:  newPlank,
		Timestamp: a.clock.Now(),
	}

	if err := a.apply(event); err != nil {
		return err
	}
	a.record(event)

	return nil
}

// apply is the state-transition fold. It mutates state and version
// only; appending to the log is record's job.
func (a *ShipAggregate) apply(event ShipEvent) error {
	switch e := event.(type) {
	case ShipLaunchedEvent:
		a.state.ShipID = e.ShipID
		a.state.Name = e.Name
		a.state.Hull = clonePlanks(e.Hull)

	case PlankReplacedEvent:
		if e.Position < 0 || e.Position >= len(a.state.Hull) {
			return &PlankIndexError{Position: e.Position, HullSize: len(a.state.Hull)}
		}
		a.state.Hull[e.Position] = e.NewPlank

	default:
		return fmt.Errorf("%w: %T", ErrUnknownEventType, event)
	}

	a.version++
	return nil
}

func (a *ShipAggregate) record(event ShipEvent) {
	a.changes = append(a.changes, event)
}

// GetID returns the ship's identifier; uuid.Nil until a launch event
// has been applied.
func (a *ShipAggregate) GetID() uuid.UUID { return a.state.ShipID }

// GetType returns the aggregate type.
func (a *ShipAggregate) GetType() string { return AggregateTypeShip }

// GetVersion returns the number of events applied so far.
func (a *ShipAggregate) GetVersion() int { return a.version }

// GetEvents returns the full event log, oldest first.
func (a *ShipAggregate) GetEvents() []ShipEvent {
	return append([]ShipEvent(nil), a.changes...)
}

// UncommittedEvents returns the suffix of the log not yet persisted.
func (a *ShipAggregate) UncommittedEvents() []ShipEvent {
	return append([]ShipEvent(nil), a.changes[a.committed:]...)
}

// MarkCommitted records that every event currently in the log has
// been persisted. The log itself is never truncated; it is the
// aggregate's history, not an outbox.
func (a *ShipAggregate) MarkCommitted() { a.committed = len(a.changes) }

// Name returns the ship's name.
func (a *ShipAggregate) Name() string { return a.state.Name }

// Hull returns a copy of the current hull.
func (a *ShipAggregate) Hull() []Plank { return clonePlanks(a.state.Hull) }

// State returns a copy of the materialized state.
func (a *ShipAggregate) State() ShipState {
	return ShipState{
		ShipID: a.state.ShipID,
		Name:   a.state.Name,
		Hull:   clonePlanks(a.state.Hull),
	}
}

func clonePlanks(planks []Plank) []Plank {
	if len(planks) == 0 {
		return nil
	}
	return append([]Plank(nil), planks...)
}
