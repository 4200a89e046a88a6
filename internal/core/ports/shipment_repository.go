package ports

import (
	"context"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates
// and their append-only tracking events.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// The shipment must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	// The shipment must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	// Returns ObjectNotFoundError when no shipment carries the id.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetForUpdate retrieves a shipment aggregate and takes a row lock on it
	// for the duration of the surrounding transaction. Milestone application
	// serializes on this lock so concurrent events against one shipment
	// apply in order.
	//
	// Must be called inside a unit of work; outside a transaction it behaves
	// like Get.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByMatch retrieves the shipment executing the given match.
	// Returns ObjectNotFoundError when the match has no shipment.
	GetByMatch(ctx context.Context, matchID kernel.UUID) (*shipment.Shipment, error)

	// AppendEvent persists a tracking event. Events are append-only: there
	// is no update or delete counterpart.
	AppendEvent(ctx context.Context, event *shipment.TrackingEvent) error
}
