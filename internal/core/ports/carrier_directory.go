// Package ports defines the boundary contracts between the matching core and
// infrastructure: repositories, the carrier directory, route estimation, the
// event sink, and the unit of work. These interfaces establish contracts
// between the domain layer and infrastructure, enabling dependency inversion
// and testability.
package ports

import (
	"context"

	"freightmatch/internal/core/domain/model/carrier"
	"freightmatch/internal/core/domain/model/kernel"
)

// CarrierDirectory is the read-only boundary to the external carrier context.
// The matching core consumes capability snapshots and never writes back.
type CarrierDirectory interface {
	// Get retrieves one carrier's capability snapshot.
	// Returns ObjectNotFoundError when the directory has no such carrier.
	Get(ctx context.Context, id kernel.UUID) (carrier.Capability, error)

	// GetAll retrieves the full carrier pool. Eligibility filtering and
	// scoring run over this snapshot; staleness is acceptable because
	// scoring is advisory.
	GetAll(ctx context.Context) ([]carrier.Capability, error)
}
