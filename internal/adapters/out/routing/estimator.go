package routing

import (
	"context"
	"log/slog"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/services"
	"freightmatch/internal/observability"
)

// Provider answers road routes between two points. The OSRM client is the
// shipped implementation; anything with the same contract can stand in.
type Provider interface {
	Route(ctx context.Context, origin, destination kernel.GeoPoint) (kernel.RouteEstimate, error)
}

// Cache stores previously computed estimates keyed by coordinate pair.
type Cache interface {
	Get(ctx context.Context, origin, destination kernel.GeoPoint) (kernel.RouteEstimate, bool)
	Set(ctx context.Context, origin, destination kernel.GeoPoint, estimate kernel.RouteEstimate)
}

// Estimator implements ports.RouteEstimator: cache first, then the external
// provider under a deadline, then the deterministic formula. A provider
// failure is recovered here and never surfaces to the caller; EstimateRoute
// only errors on invalid coordinates.
type Estimator struct {
	provider Provider
	cache    Cache
	formula  services.FormulaEstimator
	timeout  time.Duration
	logger   *slog.Logger
}

// NewEstimator creates the layered estimator. Both provider and cache may be
// nil: without a provider every estimate comes from the formula, and without
// a cache every estimate is computed fresh. The timeout bounds each provider
// call.
func NewEstimator(provider Provider, cache Cache, timeout time.Duration, logger *slog.Logger) *Estimator {
	return &Estimator{
		provider: provider,
		cache:    cache,
		formula:  services.NewFormulaEstimator(),
		timeout:  timeout,
		logger:   logger.With("component", "route_estimator"),
	}
}

// EstimateRoute answers the route estimate between the two points.
func (e *Estimator) EstimateRoute(ctx context.Context, origin, destination kernel.GeoPoint) (kernel.RouteEstimate, error) {
	if e.cache != nil {
		if estimate, ok := e.cache.Get(ctx, origin, destination); ok {
			observability.RouteEstimatesTotal.WithLabelValues("cache").Inc()
			return estimate, nil
		}
	}

	if e.provider != nil {
		providerCtx, cancel := context.WithTimeout(ctx, e.timeout)
		estimate, err := e.provider.Route(providerCtx, origin, destination)
		cancel()
		if err == nil {
			if e.cache != nil {
				e.cache.Set(ctx, origin, destination, estimate)
			}
			observability.RouteEstimatesTotal.WithLabelValues("provider").Inc()
			return estimate, nil
		}

		// recovered locally: the formula answers instead
		e.logger.WarnContext(ctx, "routing provider failed, using formula fallback", "error", err)
	}

	estimate, err := e.formula.Estimate(origin, destination)
	if err != nil {
		return kernel.RouteEstimate{}, err
	}

	if e.cache != nil {
		e.cache.Set(ctx, origin, destination, estimate)
	}
	observability.RouteEstimatesTotal.WithLabelValues("formula").Inc()

	return estimate, nil
}
