package match

import "freightmatch/internal/pkg/errs"

// RejectionReason is the carrier's stated reason for declining an offer.
// The taxonomy is fixed; reporting aggregates over these values.
type RejectionReason string

const (
	// ReasonRateTooLow indicates the offered rate did not cover the haul.
	ReasonRateTooLow RejectionReason = "rate_too_low"
	// ReasonTimingConflict indicates the schedule collides with other commitments.
	ReasonTimingConflict RejectionReason = "timing_conflict"
	// ReasonEquipmentUnavailable indicates the required trailer is not free.
	ReasonEquipmentUnavailable RejectionReason = "equipment_unavailable"
	// ReasonLocationTooFar indicates the deadhead was too long to be worth it.
	ReasonLocationTooFar RejectionReason = "location_too_far"
	// ReasonShipperRequirements indicates the shipper's terms were unacceptable.
	ReasonShipperRequirements RejectionReason = "shipper_requirements"
	// ReasonCarrierPolicy indicates an internal carrier policy blocked the haul.
	ReasonCarrierPolicy RejectionReason = "carrier_policy"
	// ReasonOther covers anything the taxonomy does not name.
	ReasonOther RejectionReason = "other"
)

// RejectionReasons returns the full taxonomy.
func RejectionReasons() []RejectionReason {
	return []RejectionReason{
		ReasonRateTooLow,
		ReasonTimingConflict,
		ReasonEquipmentUnavailable,
		ReasonLocationTooFar,
		ReasonShipperRequirements,
		ReasonCarrierPolicy,
		ReasonOther,
	}
}

// String returns the wire representation of the reason.
func (r RejectionReason) String() string {
	return string(r)
}

// Validate checks that the reason belongs to the taxonomy.
// Returns a ValueIsRequiredError for the empty string and a
// ValueIsInvalidError for unknown values.
func (r RejectionReason) Validate() error {
	if r == "" {
		return errs.NewValueIsRequiredError("rejectionReason")
	}

	switch r {
	case ReasonRateTooLow, ReasonTimingConflict, ReasonEquipmentUnavailable,
		ReasonLocationTooFar, ReasonShipperRequirements, ReasonCarrierPolicy, ReasonOther:
		return nil
	default:
		return errs.NewValueIsInvalidError("rejectionReason")
	}
}
