// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the matching system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - EligibilityFilter: A domain service reducing a carrier pool to the carriers
//     allowed to haul a load
//   - MatchScorer: A domain service computing and ranking multi-factor match scores
//   - CostModel: A domain service projecting carrier-side cost and margin
//   - FormulaEstimator: A domain service producing deterministic route estimates
//     without a live routing call
//
// All services here are pure: no clocks, no storage, no side effects. That keeps
// scoring and filtering safe to fan out across carriers concurrently.
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
