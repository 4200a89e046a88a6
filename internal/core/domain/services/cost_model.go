package services

// Per-mile operating costs and the insurance share of the rate.
const (
	driverCostPerMile      = 0.50
	maintenanceCostPerMile = 0.15
	insuranceRateShare     = 0.02
)

// CostModel is a domain service projecting the carrier-side economics of a
// prospective match. It is pure arithmetic over estimates the caller already
// holds.
//
// Business rules:
//   - Total cost = fuel + $0.50/mi driver + $0.15/mi maintenance
//     + 2% of the rate as insurance
//   - Costs accrue over total miles: load distance plus deadhead
//   - Margin = the load's total rate minus total cost; negative margins are
//     reported, not suppressed
type CostModel struct{}

// NewCostModel creates a new CostModel instance.
//
// Returns:
//   - CostModel: A new instance ready for cost projections
func NewCostModel() CostModel {
	return CostModel{}
}

// TotalCost projects the carrier's cost of executing a match.
//
// Parameters:
//   - fuelCost: estimated fuel spend in dollars over total miles
//   - totalMiles: load distance plus deadhead
//   - rateTotal: the load's total rate in dollars
//
// Returns:
//   - float64: fuel + driver + maintenance + insurance in dollars
func (m CostModel) TotalCost(fuelCost float64, totalMiles float64, rateTotal float64) float64 {
	return fuelCost +
		driverCostPerMile*totalMiles +
		maintenanceCostPerMile*totalMiles +
		insuranceRateShare*rateTotal
}

// Margin projects the carrier's profit on a match: the load's total rate
// minus the projected total cost. A negative result means the pairing loses
// money and is still reported.
func (m CostModel) Margin(rateTotal float64, fuelCost float64, totalMiles float64) float64 {
	return rateTotal - m.TotalCost(fuelCost, totalMiles, rateTotal)
}
