// Package shipment provides domain entities and business logic for tracking
// the physical execution of accepted matches. It implements the Shipment
// aggregate root and the append-only TrackingEvent entity.
//
// The package includes:
//   - Shipment: The aggregate root created at match acceptance, carrying
//     scheduled and actual dates and the on-time flag
//   - Status: A state machine with an explicit transition table enforcing the execution workflow
//   - TrackingEvent: An immutable, timestamped fact about a shipment
//   - EventType: The tracking taxonomy with milestone and alert classification
//
// Key business rules:
//   - Shipments must reference a valid match and load
//   - Scheduled delivery must not precede scheduled pickup
//   - Status follows a defined workflow: pending_pickup -> picked_up ->
//     in_transit -> delivered, with an exception branch from every
//     non-terminal state
//   - Milestone tracking events drive shipment transitions; alerts never
//     change shipment state by themselves
//   - delivered_on_time is computed at delivery against the scheduled date
//   - Tracking events are append-only and never mutated
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shipment
