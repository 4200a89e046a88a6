// Package load provides domain entities and business logic for freight load
// management in the matching system. It implements the Load aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Load: The aggregate root that manages load identity, freight attributes, and lifecycle
//   - Status: A state machine with an explicit transition table enforcing the load workflow
//   - Stop: A value object describing the pickup or delivery end of a haul
//
// Key business rules:
//   - Loads must have a valid unique identifier, reference, equipment type, and stops
//   - Delivery date must not precede pickup date
//   - Weight, when specified, must be positive
//   - Status follows a defined workflow: posted -> matched -> accepted ->
//     picked_up -> in_transit -> delivered, with cancellation and expiry branches
//   - Transitions past accepted are driven exclusively by shipment milestones
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package load
