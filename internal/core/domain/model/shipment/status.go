package shipment

import (
	"fmt"

	"freightmatch/internal/pkg/errs"
)

// Status represents the execution state of a shipment.
// It implements a state machine with an explicit transition table so the set
// of legal moves is enumerable and auditable.
//
// State transitions:
//
//	pending_pickup ──> picked_up ──> in_transit ──> delivered
//	   │                  │              │
//	   └──────────────────┴──────────────┴──> exception
//
// delivered and exception are terminal; a shipment in exception does not
// auto-recover. Every transition is driven by a milestone tracking event,
// never called directly by an outside caller.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingPickup is the initial status when a shipment is created for an
	// accepted match.
	PendingPickup

	// PickedUp indicates the carrier reported pickup completion.
	PickedUp

	// InTransit indicates the freight is moving toward delivery.
	InTransit

	// Delivered indicates the carrier reported delivery completion.
	// This is a terminal state.
	Delivered

	// Exception indicates a breakdown or accident interrupted execution.
	// This is a terminal state; recovery is a manual operations concern.
	Exception
)

// Event identifies a lifecycle transition request against a shipment.
type Event int

const (
	// EventPickUp records the pickup-completed milestone.
	EventPickUp Event = iota + 1
	// EventStartTransit records the in-transit milestone.
	EventStartTransit
	// EventDeliver records the delivery-completed milestone.
	EventDeliver
	// EventMarkException records a breakdown or accident.
	EventMarkException
)

// getEventStrings returns a map of Event values to their string representations.
func getEventStrings() map[Event]string {
	return map[Event]string{
		EventPickUp:        "pick_up",
		EventStartTransit:  "start_transit",
		EventDeliver:       "deliver",
		EventMarkException: "mark_exception",
	}
}

// String returns the human-readable name of the event.
func (e Event) String() string {
	if str, ok := getEventStrings()[e]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the Event value is valid.
func (e Event) Validate() error {
	if _, ok := getEventStrings()[e]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("event is invalid", fmt.Errorf("%d is not a valid event", e))
	}
	return nil
}

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "unknown",
		PendingPickup: "pending_pickup",
		PickedUp:      "picked_up",
		InTransit:     "in_transit",
		Delivered:     "delivered",
		Exception:     "exception",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingPickup: "pending_pickup",
		PickedUp:      "picked_up",
		InTransit:     "in_transit",
		Delivered:     "delivered",
		Exception:     "exception",
	}
}

// getTransitions returns the transition table: for each status, the set of
// legal events and the status each produces. Statuses absent from an entry's
// event map are terminal.
func getTransitions() map[Status]map[Event]Status {
	return map[Status]map[Event]Status{
		PendingPickup: {
			EventPickUp:        PickedUp,
			EventMarkException: Exception,
		},
		PickedUp: {
			EventStartTransit:  InTransit,
			EventMarkException: Exception,
		},
		InTransit: {
			EventDeliver:       Delivered,
			EventMarkException: Exception,
		},
		Delivered: {},
		Exception: {},
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: pending_pickup, picked_up, in_transit, delivered,
// exception. Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanApply reports whether the event is a legal transition from this status,
// without performing the transition. The tracking-event processor relies on
// this to turn replayed milestones into silent no-ops.
func (s Status) CanApply(event Event) bool {
	events, ok := getTransitions()[s]
	if !ok {
		return false
	}
	_, ok = events[event]
	return ok
}

// Apply performs the transition for the given event.
//
// Returns:
//   - (next status, nil) when the transition table permits the event
//   - (0, InvalidStateTransitionError) naming the current status and the
//     attempted event otherwise
func (s Status) Apply(event Event) (Status, error) {
	events, ok := getTransitions()[s]
	if !ok {
		return 0, errs.NewInvalidStateTransitionError("shipment", s.String(), event.String())
	}

	next, ok := events[event]
	if !ok {
		return 0, errs.NewInvalidStateTransitionError("shipment", s.String(), event.String())
	}

	return next, nil
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Exception
}
