package services

import (
	"freightmatch/internal/core/domain/model/kernel"
)

// Route formula constants. Distance bands inflate the straight-line geodesic
// toward a road distance; speed and toll bands key on the resulting road
// miles.
const (
	assumedMPG         = 6.5
	fuelPricePerGallon = 3.75

	shortHaulMiles  = 50.0
	regionalMiles   = 200.0
	longHaulMiles   = 500.0
	shortHaulFactor = 1.4
	regionalFactor  = 1.3
	longHaulFactor  = 1.25
	crossFactor     = 1.2

	shortHaulMPH = 45.0
	regionalMPH  = 50.0
	longHaulMPH  = 55.0

	regionalToll = 15.0
	longHaulToll = 40.0
	crossToll    = 90.0
)

// FormulaEstimator is a domain service producing deterministic route
// estimates without a live routing call. An external provider may stand in
// for it; the contract is identical so callers are agnostic to which
// implementation answers.
//
// Key responsibilities:
//   - Approximating road distance from the straight-line geodesic
//   - Deriving duration, fuel cost, and toll cost from that distance
//
// Business rules:
//   - Road distance = geodesic x a distance-banded inflation factor
//     (1.4x up to 50 mi, 1.3x to 200 mi, 1.25x to 500 mi, 1.2x beyond)
//   - Duration divides road miles by a banded average speed (45/50/55 mph)
//   - Fuel cost = (road miles / 6.5 MPG) x $3.75 per gallon
//   - Toll cost is a distance-banded flat estimate ($0/$15/$40/$90)
//   - A zero-distance route estimates to all zeros
type FormulaEstimator struct{}

// NewFormulaEstimator creates a new FormulaEstimator instance.
//
// Returns:
//   - FormulaEstimator: A new instance ready for route estimation
func NewFormulaEstimator() FormulaEstimator {
	return FormulaEstimator{}
}

// Estimate produces a route estimate between two points.
//
// Parameters:
//   - origin: the starting point (must be valid)
//   - destination: the ending point (must be valid)
//
// Returns:
//   - kernel.RouteEstimate: distance, duration, fuel, and toll figures
//   - error: validation error when either point is invalid
func (e FormulaEstimator) Estimate(origin kernel.GeoPoint, destination kernel.GeoPoint) (kernel.RouteEstimate, error) {
	geodesicMiles, err := origin.DistanceMilesTo(destination)
	if err != nil {
		return kernel.RouteEstimate{}, err
	}

	roadMiles := geodesicMiles * inflationFactor(geodesicMiles)

	return kernel.RouteEstimate{
		DistanceMiles: roadMiles,
		DurationHours: durationHours(roadMiles),
		FuelCost:      e.FuelCost(roadMiles),
		TollCost:      e.TollCost(roadMiles),
	}, nil
}

// FuelCost returns the fuel spend in dollars for the given road miles.
// Exposed so providers that answer only distance and duration can fill in
// the cost fields with the same figures the formula would use.
func (e FormulaEstimator) FuelCost(distanceMiles float64) float64 {
	return distanceMiles / assumedMPG * fuelPricePerGallon
}

// TollCost returns the banded flat toll estimate in dollars for the given
// road miles.
func (e FormulaEstimator) TollCost(distanceMiles float64) float64 {
	switch {
	case distanceMiles <= shortHaulMiles:
		return 0
	case distanceMiles <= regionalMiles:
		return regionalToll
	case distanceMiles <= longHaulMiles:
		return longHaulToll
	default:
		return crossToll
	}
}

func inflationFactor(geodesicMiles float64) float64 {
	switch {
	case geodesicMiles <= shortHaulMiles:
		return shortHaulFactor
	case geodesicMiles <= regionalMiles:
		return regionalFactor
	case geodesicMiles <= longHaulMiles:
		return longHaulFactor
	default:
		return crossFactor
	}
}

func durationHours(roadMiles float64) float64 {
	switch {
	case roadMiles == 0:
		return 0
	case roadMiles <= shortHaulMiles:
		return roadMiles / shortHaulMPH
	case roadMiles <= regionalMiles:
		return roadMiles / regionalMPH
	default:
		return roadMiles / longHaulMPH
	}
}
