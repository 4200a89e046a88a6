package kernel

import "freightmatch/internal/pkg/errs"

// EquipmentType identifies the trailer or vehicle class a load requires and a
// carrier offers. The value is the wire and storage representation.
type EquipmentType string

const (
	// EquipmentDryVan is a standard enclosed dry van trailer.
	EquipmentDryVan EquipmentType = "dry_van"
	// EquipmentReefer is a temperature-controlled refrigerated trailer.
	EquipmentReefer EquipmentType = "reefer"
	// EquipmentFlatbed is an open flatbed trailer.
	EquipmentFlatbed EquipmentType = "flatbed"
	// EquipmentStepDeck is a drop-deck trailer for tall freight.
	EquipmentStepDeck EquipmentType = "step_deck"
	// EquipmentPowerOnly is a tractor without a trailer.
	EquipmentPowerOnly EquipmentType = "power_only"
	// EquipmentBoxTruck is a straight box truck.
	EquipmentBoxTruck EquipmentType = "box_truck"
)

// EquipmentTypes returns all supported equipment types.
func EquipmentTypes() []EquipmentType {
	return []EquipmentType{
		EquipmentDryVan,
		EquipmentReefer,
		EquipmentFlatbed,
		EquipmentStepDeck,
		EquipmentPowerOnly,
		EquipmentBoxTruck,
	}
}

// String returns the string representation of the equipment type.
func (e EquipmentType) String() string {
	return string(e)
}

// Validate checks that the equipment type is one of the supported values.
// Returns a ValueIsInvalidError for unknown codes and a ValueIsRequiredError
// for the empty string.
func (e EquipmentType) Validate() error {
	if e == "" {
		return errs.NewValueIsRequiredError("equipmentType")
	}

	switch e {
	case EquipmentDryVan, EquipmentReefer, EquipmentFlatbed,
		EquipmentStepDeck, EquipmentPowerOnly, EquipmentBoxTruck:
		return nil
	default:
		return errs.NewValueIsInvalidError("equipmentType")
	}
}
