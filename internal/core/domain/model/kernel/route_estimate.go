package kernel

// RouteEstimate is the computed cost and time profile of driving between two
// points. Estimates come from the route estimator port: either an external
// routing provider or the deterministic formula fallback. All estimators
// produce this same shape, so callers never know which path served them.
type RouteEstimate struct {
	// DistanceMiles is the estimated road distance in statute miles.
	DistanceMiles float64
	// DurationHours is the estimated driving time in hours.
	DurationHours float64
	// FuelCost is the estimated fuel spend in dollars for the distance.
	FuelCost float64
	// TollCost is the estimated toll spend in dollars for the distance.
	TollCost float64
}

// TotalCost returns fuel plus tolls in dollars.
func (r RouteEstimate) TotalCost() float64 {
	return r.FuelCost + r.TollCost
}
