package services

import (
	"time"

	"freightmatch/internal/core/domain/model/carrier"
	"freightmatch/internal/core/domain/model/load"
)

// Eligibility rule names, reported when a carrier fails a check and carried
// inside IneligibleCarrierError for operator-forced offers.
const (
	RuleCarrierInactive      = "carrier_inactive"
	RuleCarrierUnverified    = "carrier_unverified"
	RuleEquipmentMismatch    = "equipment_mismatch"
	RuleOutsideServiceArea   = "outside_service_area"
	RuleInsuranceExpired     = "insurance_expired"
	RuleHazmatUncertified    = "hazmat_uncertified"
	RuleInsufficientCapacity = "insufficient_capacity"
	RuleAlreadyEngaged       = "already_engaged"
)

// EligibilityFilter is a domain service that decides which carriers may haul
// a given load. It is pure: no side effects, no clock reads, no storage.
//
// Key responsibilities:
//   - Evaluating every eligibility rule against a carrier snapshot
//   - Reducing a carrier pool to the qualifying subset
//   - Naming the first failed rule for diagnostics
//
// Business rules (all must hold):
//   - Carrier is active and verified
//   - Carrier offers the load's equipment type
//   - Carrier serves the pickup state
//   - Carrier insurance is in force at evaluation time
//   - Hazmat loads require a hazmat-certified carrier
//   - When the load specifies weight, an available vehicle must carry it
//   - Carrier must not already hold an active match for this load
//
// Filtering never errors for an empty result: a load no carrier qualifies
// for yields an empty slice.
type EligibilityFilter struct{}

// NewEligibilityFilter creates a new EligibilityFilter instance.
//
// Returns:
//   - EligibilityFilter: A new instance ready for eligibility checks
func NewEligibilityFilter() EligibilityFilter {
	return EligibilityFilter{}
}

// Check evaluates every eligibility rule for one carrier against one load.
// The capability snapshot is assumed valid; Filter pre-screens directory data.
//
// Parameters:
//   - l: the load to haul (must be valid)
//   - capability: the carrier's capability snapshot
//   - alreadyEngaged: whether the carrier holds an active match for this load
//   - now: the evaluation instant for insurance expiry
//
// Returns:
//   - string: the name of the first failed rule, empty when eligible
//   - bool: true when the carrier passes every rule
//
// Rules are evaluated in a fixed order so the reported rule is deterministic.
func (f EligibilityFilter) Check(l *load.Load, capability carrier.Capability, alreadyEngaged bool, now time.Time) (string, bool) {
	if !capability.Active {
		return RuleCarrierInactive, false
	}
	if !capability.Verified {
		return RuleCarrierUnverified, false
	}
	if !capability.OffersEquipment(l.EquipmentType()) {
		return RuleEquipmentMismatch, false
	}
	if !capability.ServesState(l.Pickup().State()) {
		return RuleOutsideServiceArea, false
	}
	if !capability.HasValidInsurance(now) {
		return RuleInsuranceExpired, false
	}
	if l.Hazmat() && !capability.HazmatCertified {
		return RuleHazmatUncertified, false
	}
	if l.HasWeight() && capability.MaxAvailableCapacityLbs() < l.WeightLbs() {
		return RuleInsufficientCapacity, false
	}
	if alreadyEngaged {
		return RuleAlreadyEngaged, false
	}

	return "", true
}

// Filter reduces a carrier pool to the carriers eligible for the load.
//
// Parameters:
//   - l: the load to haul (must be valid)
//   - pool: carrier capability snapshots from the directory
//   - engaged: carrier ids (UUID strings) holding an active match for this load
//   - now: the evaluation instant for insurance expiry
//
// Returns:
//   - []carrier.Capability: the qualifying subset, empty when none qualify
//   - error: validation error when the load itself is invalid
//
// Snapshots that fail their own validation are skipped: bad directory data
// makes one carrier ineligible, never the whole pool.
func (f EligibilityFilter) Filter(l *load.Load, pool []carrier.Capability, engaged map[string]bool, now time.Time) ([]carrier.Capability, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	eligible := make([]carrier.Capability, 0, len(pool))
	for _, capability := range pool {
		if capability.Validate() != nil {
			continue
		}

		if _, ok := f.Check(l, capability, engaged[capability.ID.String()], now); ok {
			eligible = append(eligible, capability)
		}
	}

	return eligible, nil
}
