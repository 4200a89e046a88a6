package ports

import (
	"context"

	"freightmatch/internal/core/domain/model/kernel"
)

// RouteEstimator answers distance, duration, fuel, and toll estimates
// between two points. Implementations may call an external routing provider
// or fall back to the deterministic formula; callers are agnostic to which
// one answers. The external path must carry a timeout — a blocking
// estimator must never stall a candidate search.
type RouteEstimator interface {
	EstimateRoute(ctx context.Context, origin kernel.GeoPoint, destination kernel.GeoPoint) (kernel.RouteEstimate, error)
}
