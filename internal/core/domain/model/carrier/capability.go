package carrier

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/errs"
)

// Vehicle is one assignable unit in a carrier's fleet.
type Vehicle struct {
	ID          kernel.UUID
	CapacityLbs int
	Available   bool
}

// Capability is a read-only snapshot of a carrier's operating profile,
// consumed from the external carrier directory. The matching core never
// mutates it; eligibility filtering and scoring read it as-is.
//
// Unlike the aggregates in this model, Capability has exported fields: it
// is a record crossing a context boundary, not an object the core owns.
// Validate guards the boundary instead of a constructor.
type Capability struct {
	// ID is the carrier's unique identifier in the directory.
	ID kernel.UUID
	// Name is the carrier's operating name.
	Name string
	// Active reports whether the carrier is operating.
	Active bool
	// Verified reports whether the carrier passed onboarding verification.
	Verified bool
	// EquipmentTypes lists the trailer types the carrier offers.
	EquipmentTypes []kernel.EquipmentType
	// ServiceAreas lists two-letter state codes the carrier serves.
	ServiceAreas []string
	// SafetyRating is the carrier's average safety rating on a 0-5 scale.
	SafetyRating float64
	// OnTimePercentage is the carrier's on-time delivery rate, 0-100.
	OnTimePercentage float64
	// InsuranceExpiresAt is when the carrier's insurance lapses.
	InsuranceExpiresAt time.Time
	// HazmatCertified reports whether the carrier may haul hazmat loads.
	HazmatCertified bool
	// CurrentLocation is the carrier's last reported position.
	CurrentLocation kernel.GeoPoint
	// Vehicles is the carrier's fleet.
	Vehicles []Vehicle
}

// Validate checks the snapshot for directory data that would poison
// filtering or scoring. It returns joined errors naming every offending
// field.
func (c Capability) Validate() error {
	validations := []error{
		c.ID.Validate(),
		c.validateName(),
		c.validateRatings(),
		c.validateInsurance(),
		c.CurrentLocation.Validate(),
		c.validateEquipmentTypes(),
		c.validateServiceAreas(),
		c.validateVehicles(),
	}

	return errors.Join(validations...)
}

func (c Capability) validateName() error {
	if strings.TrimSpace(c.Name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	return nil
}

func (c Capability) validateRatings() error {
	if c.SafetyRating < 0 || c.SafetyRating > 5 {
		return errs.NewValueIsOutOfRangeError("safetyRating", c.SafetyRating, 0, 5)
	}
	if c.OnTimePercentage < 0 || c.OnTimePercentage > 100 {
		return errs.NewValueIsOutOfRangeError("onTimePercentage", c.OnTimePercentage, 0, 100)
	}
	return nil
}

func (c Capability) validateInsurance() error {
	if c.InsuranceExpiresAt.IsZero() {
		return errs.NewValueIsRequiredError("insuranceExpiresAt")
	}
	return nil
}

func (c Capability) validateEquipmentTypes() error {
	for _, equipmentType := range c.EquipmentTypes {
		if err := equipmentType.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c Capability) validateServiceAreas() error {
	for _, area := range c.ServiceAreas {
		if !isStateCode(area) {
			return errs.NewValueIsInvalidErrorWithCause("serviceAreas",
				fmt.Errorf("%q is not a two-letter state code", area))
		}
	}
	return nil
}

func (c Capability) validateVehicles() error {
	for _, vehicle := range c.Vehicles {
		if err := vehicle.ID.Validate(); err != nil {
			return err
		}
		if vehicle.CapacityLbs <= 0 {
			return errs.NewValueIsOutOfRangeError("capacityLbs", vehicle.CapacityLbs, 1, "unbounded")
		}
	}
	return nil
}

func isStateCode(state string) bool {
	if len(state) != 2 {
		return false
	}
	for _, r := range state {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// OffersEquipment reports whether the carrier offers the given trailer type.
func (c Capability) OffersEquipment(equipmentType kernel.EquipmentType) bool {
	for _, offered := range c.EquipmentTypes {
		if offered == equipmentType {
			return true
		}
	}
	return false
}

// ServesState reports whether the state code is in the carrier's service
// areas. Comparison ignores case so caller normalization cannot break it.
func (c Capability) ServesState(state string) bool {
	for _, area := range c.ServiceAreas {
		if strings.EqualFold(area, state) {
			return true
		}
	}
	return false
}

// HasValidInsurance reports whether the carrier's insurance is still in
// force at the given instant. Expiry exactly at the instant counts as lapsed.
func (c Capability) HasValidInsurance(now time.Time) bool {
	return c.InsuranceExpiresAt.After(now)
}

// MaxAvailableCapacityLbs returns the largest capacity among the carrier's
// available vehicles, zero when none are available.
func (c Capability) MaxAvailableCapacityLbs() int {
	maxCapacity := 0
	for _, vehicle := range c.Vehicles {
		if vehicle.Available && vehicle.CapacityLbs > maxCapacity {
			maxCapacity = vehicle.CapacityLbs
		}
	}
	return maxCapacity
}
