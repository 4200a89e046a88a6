package load

import (
	"fmt"

	"freightmatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a load.
// It implements a state machine with an explicit transition table so the set
// of legal moves is enumerable and auditable.
//
// State transitions:
//
//	posted ──> matched ──> accepted ──> picked_up ──> in_transit ──> delivered
//	   │          │            │
//	   │          └────────────┴──> cancelled
//	   ├──> accepted (direct acceptance of a pending match)
//	   ├──> cancelled
//	   └──> expired
//
// delivered, cancelled, and expired are terminal. Transitions out of posted,
// matched, and accepted are driven by match decisions; picked_up, in_transit,
// and delivered are driven exclusively by shipment milestones.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Posted is the initial status when a shipper publishes a load.
	// Posted loads are visible to candidate search and may expire.
	Posted

	// Matched indicates candidate matches have been generated for the load.
	// Further candidate searches may run while in this status.
	Matched

	// Accepted indicates a carrier accepted a match; a shipment exists.
	Accepted

	// PickedUp indicates the shipment reported pickup completion.
	PickedUp

	// InTransit indicates the shipment is moving toward delivery.
	InTransit

	// Delivered indicates the shipment reported delivery completion.
	// This is a terminal state.
	Delivered

	// Cancelled indicates the load was withdrawn before delivery.
	// This is a terminal state.
	Cancelled

	// Expired indicates the posting window passed with no accepted match.
	// This is a terminal state.
	Expired
)

// Event identifies a lifecycle transition request against a load.
type Event int

const (
	// EventMatch records that candidate matches were generated.
	EventMatch Event = iota + 1
	// EventAccept records that a carrier accepted a match.
	EventAccept
	// EventPickUp records the shipment's pickup milestone.
	EventPickUp
	// EventStartTransit records the shipment's in-transit milestone.
	EventStartTransit
	// EventDeliver records the shipment's delivery milestone.
	EventDeliver
	// EventCancel records withdrawal of the load.
	EventCancel
	// EventExpire records that the posting window lapsed.
	EventExpire
)

// getEventStrings returns a map of Event values to their string representations.
func getEventStrings() map[Event]string {
	return map[Event]string{
		EventMatch:        "match",
		EventAccept:       "accept",
		EventPickUp:       "pick_up",
		EventStartTransit: "start_transit",
		EventDeliver:      "deliver",
		EventCancel:       "cancel",
		EventExpire:       "expire",
	}
}

// String returns the human-readable name of the event.
func (e Event) String() string {
	if str, ok := getEventStrings()[e]; ok {
		return str
	}
	return "unknown"
}

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Posted:    "posted",
		Matched:   "matched",
		Accepted:  "accepted",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
		Expired:   "expired",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Posted:    "posted",
		Matched:   "matched",
		Accepted:  "accepted",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
		Expired:   "expired",
	}
}

// getTransitions returns the transition table: for each status, the set of
// legal events and the status each produces. Statuses absent from an entry's
// event map are terminal.
func getTransitions() map[Status]map[Event]Status {
	return map[Status]map[Event]Status{
		Posted: {
			EventMatch:  Matched,
			EventAccept: Accepted,
			EventCancel: Cancelled,
			EventExpire: Expired,
		},
		Matched: {
			EventMatch:  Matched,
			EventAccept: Accepted,
			EventCancel: Cancelled,
		},
		Accepted: {
			EventPickUp: PickedUp,
			EventCancel: Cancelled,
		},
		PickedUp: {
			EventStartTransit: InTransit,
		},
		InTransit: {
			EventDeliver: Delivered,
		},
		Delivered: {},
		Cancelled: {},
		Expired:   {},
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: posted, matched, accepted, picked_up, in_transit,
// delivered, cancelled, expired. Unknown (0) and any other values are invalid.
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
// without performing the transition.
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
		return 0, errs.NewInvalidStateTransitionError("load", s.String(), event.String())
	}

	next, ok := events[event]
	if !ok {
		return 0, errs.NewInvalidStateTransitionError("load", s.String(), event.String())
	}

	return next, nil
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Expired
}

// IsActive reports whether the load still occupies board capacity: any valid,
// non-terminal status.
func (s Status) IsActive() bool {
	return s.Validate() == nil && !s.IsTerminal()
}
