package match

import (
	"fmt"

	"freightmatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a match.
// It implements a state machine with an explicit transition table so the set
// of legal moves is enumerable and auditable.
//
// State transitions:
//
//	pending ──> offered ──> accepted ──> cancelled
//	   │           │            │
//	   │           ├──> rejected│
//	   │           ├──> expired │
//	   │           └──> cancelled
//	   ├──> accepted (direct acceptance without a formal offer)
//	   ├──> rejected
//	   ├──> expired
//	   └──> cancelled
//
// rejected, expired, and cancelled are terminal. accepted permits only
// cancellation.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a match produced by the scoring engine.
	Pending

	// Offered indicates the match was formally offered to the carrier.
	Offered

	// Accepted indicates the carrier committed to haul the load.
	// Only cancellation can move an accepted match.
	Accepted

	// Rejected indicates the carrier declined the offer.
	// This is a terminal state.
	Rejected

	// Expired indicates no response arrived before the offer deadline.
	// This is a terminal state.
	Expired

	// Cancelled indicates the match was withdrawn, typically because a
	// sibling match on the same load was accepted.
	// This is a terminal state.
	Cancelled
)

// Event identifies a lifecycle transition request against a match.
type Event int

const (
	// EventOffer records the formal offer to the carrier.
	EventOffer Event = iota + 1
	// EventAccept records the carrier's acceptance.
	EventAccept
	// EventReject records the carrier's rejection.
	EventReject
	// EventExpire records that the offer deadline lapsed.
	EventExpire
	// EventCancel records withdrawal of the match.
	EventCancel
)

// getEventStrings returns a map of Event values to their string representations.
func getEventStrings() map[Event]string {
	return map[Event]string{
		EventOffer:  "make_offer",
		EventAccept: "accept_offer",
		EventReject: "reject_offer",
		EventExpire: "expire",
		EventCancel: "cancel",
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
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Offered:   "offered",
		Accepted:  "accepted",
		Rejected:  "rejected",
		Expired:   "expired",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Offered:   "offered",
		Accepted:  "accepted",
		Rejected:  "rejected",
		Expired:   "expired",
		Cancelled: "cancelled",
	}
}

// getTransitions returns the transition table: for each status, the set of
// legal events and the status each produces.
func getTransitions() map[Status]map[Event]Status {
	return map[Status]map[Event]Status{
		Pending: {
			EventOffer:  Offered,
			EventAccept: Accepted,
			EventReject: Rejected,
			EventExpire: Expired,
			EventCancel: Cancelled,
		},
		Offered: {
			EventAccept: Accepted,
			EventReject: Rejected,
			EventExpire: Expired,
			EventCancel: Cancelled,
		},
		Accepted: {
			EventCancel: Cancelled,
		},
		Rejected:  {},
		Expired:   {},
		Cancelled: {},
	}
}

// Validate checks if the Status value is valid.
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
		return 0, errs.NewInvalidStateTransitionError("match", s.String(), event.String())
	}

	next, ok := events[event]
	if !ok {
		return 0, errs.NewInvalidStateTransitionError("match", s.String(), event.String())
	}

	return next, nil
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Expired || s == Cancelled
}

// IsActive reports whether the match still engages the carrier for the load:
// pending, offered, or accepted. Active matches block a second match between
// the same carrier and load.
func (s Status) IsActive() bool {
	return s == Pending || s == Offered || s == Accepted
}

// IsAwaitingResponse reports whether the match sits with the carrier for a
// decision: pending or offered. Only these expire on the offer deadline.
func (s Status) IsAwaitingResponse() bool {
	return s == Pending || s == Offered
}
