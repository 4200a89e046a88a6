package services

import (
	"sort"

	"freightmatch/internal/core/domain/model/carrier"
	"freightmatch/internal/core/domain/model/load"
)

// Scoring term caps and weights.
const (
	distanceTermWeight  = 0.25
	equipmentTermPoints = 50.0
	pickupAreaPoints    = 30.0
	deliveryAreaPoints  = 20.0
	reliabilityTermMax  = 50.0
	onTimeTermWeight    = 0.5
	onTimeTermMax       = 50.0
)

// ScoreBreakdown itemizes the composite match score. Every term is clamped
// to its own maximum before summing; the total is NOT normalized to 100 and
// is meaningful only for relative ranking.
type ScoreBreakdown struct {
	// DistanceTerm rewards proximity to the pickup: 0.25 x max(100 - deadhead, 0).
	DistanceTerm float64
	// EquipmentTerm is a flat 50 points for an exact equipment match.
	EquipmentTerm float64
	// ServiceAreaTerm is 30 points for serving the pickup state plus 20 for
	// the delivery state.
	ServiceAreaTerm float64
	// ReliabilityTerm is the safety rating on a 0-5 scale times 10, capped at 50.
	ReliabilityTerm float64
	// OnTimeTerm is the on-time percentage times 0.5, capped at 50.
	OnTimeTerm float64
	// Total is the plain sum of the five terms.
	Total float64
}

// ScoredCandidate pairs a carrier with its score and the financial estimates
// behind a prospective match. The scorer fills the breakdown; the caller
// fills fuel and margin from the cost model before ranking.
type ScoredCandidate struct {
	Capability     carrier.Capability
	Breakdown      ScoreBreakdown
	DeadheadMiles  float64
	FuelEstimate   float64
	MarginEstimate float64
}

// MatchScorer is a domain service computing the multi-factor suitability
// score of a carrier for a load. It is pure and safe to fan out across
// carriers concurrently.
//
// Key responsibilities:
//   - Scoring one carrier against one load with an itemized breakdown
//   - Ranking scored candidates deterministically
//
// Business rules:
//   - Each term is clamped to its own maximum before summing
//   - The total is never normalized; it is a relative ranking key
//   - Ranking is descending by total, ties broken by lower deadhead,
//     then by carrier id for determinism
type MatchScorer struct{}

// NewMatchScorer creates a new MatchScorer instance.
//
// Returns:
//   - MatchScorer: A new instance ready for scoring operations
func NewMatchScorer() MatchScorer {
	return MatchScorer{}
}

// Score computes the itemized suitability score of one carrier for one load.
//
// Parameters:
//   - l: the load to haul (must be valid)
//   - capability: the carrier's capability snapshot
//   - deadheadMiles: empty miles from the carrier's position to the pickup
//
// Returns:
//   - ScoreBreakdown: the five clamped terms and their sum
//   - error: validation error when the load itself is invalid
func (s MatchScorer) Score(l *load.Load, capability carrier.Capability, deadheadMiles float64) (ScoreBreakdown, error) {
	if err := l.Validate(); err != nil {
		return ScoreBreakdown{}, err
	}

	breakdown := ScoreBreakdown{
		DistanceTerm: distanceTermWeight * max(100-deadheadMiles, 0),
	}

	if capability.OffersEquipment(l.EquipmentType()) {
		breakdown.EquipmentTerm = equipmentTermPoints
	}

	if capability.ServesState(l.Pickup().State()) {
		breakdown.ServiceAreaTerm += pickupAreaPoints
	}
	if capability.ServesState(l.Delivery().State()) {
		breakdown.ServiceAreaTerm += deliveryAreaPoints
	}

	breakdown.ReliabilityTerm = min(capability.SafetyRating*10, reliabilityTermMax)
	breakdown.OnTimeTerm = min(capability.OnTimePercentage*onTimeTermWeight, onTimeTermMax)

	breakdown.Total = breakdown.DistanceTerm +
		breakdown.EquipmentTerm +
		breakdown.ServiceAreaTerm +
		breakdown.ReliabilityTerm +
		breakdown.OnTimeTerm

	return breakdown, nil
}

// Rank sorts candidates in place: descending by total score, ties broken by
// lower deadhead distance, then by carrier id. The result is deterministic
// for any input order.
func (s MatchScorer) Rank(candidates []ScoredCandidate) {
	sort.Slice(candidates, func(i, j int) bool {
		left, right := candidates[i], candidates[j]

		if left.Breakdown.Total != right.Breakdown.Total {
			return left.Breakdown.Total > right.Breakdown.Total
		}
		if left.DeadheadMiles != right.DeadheadMiles {
			return left.DeadheadMiles < right.DeadheadMiles
		}
		return left.Capability.ID.String() < right.Capability.ID.String()
	})
}
