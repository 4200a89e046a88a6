package ports

import (
	"context"
	"time"
)

// Domain event types emitted by the matching core. Match events fire on
// creation and every status change; shipment events fire on milestones and
// alerts.
const (
	EventMatchCreated   = "match.created"
	EventMatchOffered   = "match.offered"
	EventMatchAccepted  = "match.accepted"
	EventMatchRejected  = "match.rejected"
	EventMatchExpired   = "match.expired"
	EventMatchCancelled = "match.cancelled"

	EventLoadPosted  = "load.posted"
	EventLoadExpired = "load.expired"

	EventShipmentCreated   = "shipment.created"
	EventShipmentPickedUp  = "shipment.picked_up"
	EventShipmentInTransit = "shipment.in_transit"
	EventShipmentDelivered = "shipment.delivered"
	EventShipmentException = "shipment.exception"
	EventShipmentAlert     = "shipment.alert"
)

// DomainEvent is the outbound notification envelope. The core emits these
// for an external notifier to consume asynchronously; it never blocks on
// delivery and never reads them back.
type DomainEvent struct {
	// Type is one of the Event* constants.
	Type string `json:"type"`
	// OccurredAt is when the core emitted the event.
	OccurredAt time.Time `json:"occurredAt"`
	// LoadID, MatchID, and ShipmentID identify the aggregates involved.
	// Unset ids are empty strings.
	LoadID     string `json:"loadId,omitempty"`
	MatchID    string `json:"matchId,omitempty"`
	ShipmentID string `json:"shipmentId,omitempty"`
	// Payload carries event-specific details.
	Payload any `json:"payload,omitempty"`
}

// EventPublisher delivers domain events to the notification sink.
//
// Publication happens after the owning transaction commits: a failed publish
// must never roll back committed state, so implementations log-and-drop
// rather than propagate delivery failures into the caller's control flow.
type EventPublisher interface {
	Publish(ctx context.Context, events ...DomainEvent) error
}
