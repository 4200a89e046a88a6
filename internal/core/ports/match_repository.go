package ports

import (
	"context"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/match"
)

// MatchRepository defines the persistence contract for match aggregates.
// Provides methods for storing, retrieving, and querying match entities
// based on their offer-workflow status. Terminal matches are retained for
// audit and never deleted.
type MatchRepository interface {
	// Add persists a new match aggregate to storage.
	// The match must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *match.Match) error

	// Update persists changes to an existing match aggregate.
	// The match must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *match.Match) error

	// Get retrieves a match aggregate by its unique identifier.
	// Returns ObjectNotFoundError when no match carries the id.
	Get(ctx context.Context, id kernel.UUID) (*match.Match, error)

	// GetActiveByLoad retrieves every match for the load in an active status
	// (pending, offered, or accepted). The acceptance cascade cancels these
	// siblings; eligibility checks treat their carriers as engaged.
	GetActiveByLoad(ctx context.Context, loadID kernel.UUID) ([]*match.Match, error)

	// GetStaleAwaitingResponse retrieves matches still awaiting a carrier
	// response (pending or offered) created before the cutoff. Used by the
	// offer expiry sweep.
	GetStaleAwaitingResponse(ctx context.Context, cutoff time.Time) ([]*match.Match, error)
}
