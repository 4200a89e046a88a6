package ports

import (
	"context"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/load"
)

// LoadRepository defines the persistence contract for load aggregates.
// Provides methods for storing, retrieving, and querying load entities
// based on their lifecycle status.
type LoadRepository interface {
	// Add persists a new load aggregate to storage.
	// The load must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *load.Load) error

	// Update persists changes to an existing load aggregate.
	// The load must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *load.Load) error

	// Get retrieves a load aggregate by its unique identifier.
	// Returns ObjectNotFoundError when no load carries the id.
	Get(ctx context.Context, id kernel.UUID) (*load.Load, error)

	// GetForUpdate retrieves a load aggregate and takes a row lock on it for
	// the duration of the surrounding transaction. The acceptance cascade
	// serializes on this lock: two accept calls racing on the same load see
	// each other's writes, so exactly one wins.
	//
	// Must be called inside a unit of work; outside a transaction it behaves
	// like Get.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*load.Load, error)

	// GetExpiredPosted retrieves posted loads whose expires_at has passed at
	// the given instant. Used by the expiry sweep.
	GetExpiredPosted(ctx context.Context, now time.Time) ([]*load.Load, error)
}
