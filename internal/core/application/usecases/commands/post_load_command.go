package commands

import (
	"errors"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/load"
	"freightmatch/internal/pkg/errs"
	"freightmatch/internal/pkg/guard"
)

var ErrPostLoadCommandIsNotConstructed = errors.New(
	"PostLoadCommand must be created via NewPostLoadCommand constructor",
)

// PostLoadParams carries the attributes required to post a load. A struct is
// used instead of positional arguments because a posting has too many
// required fields for a readable signature.
type PostLoadParams struct {
	// LoadID is the identifier the new load will carry.
	LoadID kernel.UUID
	// Reference is the human-facing load reference, e.g. "LD-2025-00417".
	Reference string
	// EquipmentType is the trailer class the freight requires.
	EquipmentType kernel.EquipmentType
	// WeightLbs is the freight weight in pounds. Zero means unspecified.
	WeightLbs int
	// PickupLocation, PickupState, and PickupDate describe the origin stop.
	PickupLocation kernel.GeoPoint
	PickupState    string
	PickupDate     time.Time
	// DeliveryLocation, DeliveryState, and DeliveryDate describe the
	// destination stop.
	DeliveryLocation kernel.GeoPoint
	DeliveryState    string
	DeliveryDate     time.Time
	// Hazmat, TemperatureControlled, and TeamDriver flag special freight
	// requirements.
	Hazmat                bool
	TemperatureControlled bool
	TeamDriver            bool
	// RateQuoted is the shipper-quoted linehaul rate in dollars.
	RateQuoted float64
	// RateTotal is the all-in rate in dollars. Zero defaults to RateQuoted.
	RateTotal float64
	// ExpiresAt is when the posting lapses if no match is accepted.
	ExpiresAt time.Time
}

// PostLoadCommand represents a shipper's request to post freight for
// matching. Stop construction happens here so malformed postings are
// rejected before the handler touches storage.
//
// Example:
//
//	cmd, err := NewPostLoadCommand(PostLoadParams{
//	    LoadID:        kernel.NewUUID(),
//	    Reference:     "LD-2025-00417",
//	    EquipmentType: kernel.EquipmentDryVan,
//	    ...
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid posting: %w", err)
//	}
//
//	handler := NewPostLoadCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to post load: %w", err)
//	}
type PostLoadCommand struct { //nolint:recvcheck //using for validation
	loadID                kernel.UUID
	reference             string
	equipmentType         kernel.EquipmentType
	weightLbs             int
	pickup                load.Stop
	delivery              load.Stop
	hazmat                bool
	temperatureControlled bool
	teamDriver            bool
	rateQuoted            float64
	rateTotal             float64
	expiresAt             time.Time

	guard guard.ConstructorGuard
}

// NewPostLoadCommand creates a command to post a new load. It validates the
// identifier, reference, equipment type, and both stops; the remaining load
// invariants (weight, rates, date ordering) are enforced by the aggregate
// constructor in the handler.
func NewPostLoadCommand(params PostLoadParams) (PostLoadCommand, error) {
	postCommand := PostLoadCommand{
		weightLbs:             params.WeightLbs,
		hazmat:                params.Hazmat,
		temperatureControlled: params.TemperatureControlled,
		teamDriver:            params.TeamDriver,
		rateQuoted:            params.RateQuoted,
		rateTotal:             params.RateTotal,
		expiresAt:             params.ExpiresAt,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		postCommand.setLoadID(params.LoadID),
		postCommand.setReference(params.Reference),
		postCommand.setEquipmentType(params.EquipmentType),
		postCommand.setPickup(params.PickupLocation, params.PickupState, params.PickupDate),
		postCommand.setDelivery(params.DeliveryLocation, params.DeliveryState, params.DeliveryDate),
	); err != nil {
		return PostLoadCommand{}, err
	}

	return postCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPostLoadCommandIsNotConstructed if validation fails.
func (c PostLoadCommand) Validate() error {
	return c.guard.Validate(ErrPostLoadCommandIsNotConstructed)
}

// LoadID returns the identifier for the new load.
func (c PostLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// Reference returns the human-facing load reference.
func (c PostLoadCommand) Reference() string {
	return c.reference
}

// EquipmentType returns the trailer class the freight requires.
func (c PostLoadCommand) EquipmentType() kernel.EquipmentType {
	return c.equipmentType
}

// WeightLbs returns the freight weight in pounds, zero when unspecified.
func (c PostLoadCommand) WeightLbs() int {
	return c.weightLbs
}

// Pickup returns the origin stop.
func (c PostLoadCommand) Pickup() load.Stop {
	return c.pickup
}

// Delivery returns the destination stop.
func (c PostLoadCommand) Delivery() load.Stop {
	return c.delivery
}

// Hazmat reports whether the freight requires a hazmat-certified carrier.
func (c PostLoadCommand) Hazmat() bool {
	return c.hazmat
}

// TemperatureControlled reports whether the freight must stay within a
// temperature band.
func (c PostLoadCommand) TemperatureControlled() bool {
	return c.temperatureControlled
}

// TeamDriver reports whether the freight requires a two-driver team.
func (c PostLoadCommand) TeamDriver() bool {
	return c.teamDriver
}

// RateQuoted returns the shipper-quoted linehaul rate in dollars.
func (c PostLoadCommand) RateQuoted() float64 {
	return c.rateQuoted
}

// RateTotal returns the all-in rate in dollars.
func (c PostLoadCommand) RateTotal() float64 {
	return c.rateTotal
}

// ExpiresAt returns when the posting lapses.
func (c PostLoadCommand) ExpiresAt() time.Time {
	return c.expiresAt
}

func (c *PostLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	c.loadID = loadID
	return nil
}

func (c *PostLoadCommand) setReference(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}

	c.reference = reference
	return nil
}

func (c *PostLoadCommand) setEquipmentType(equipmentType kernel.EquipmentType) error {
	if err := equipmentType.Validate(); err != nil {
		return err
	}

	c.equipmentType = equipmentType
	return nil
}

func (c *PostLoadCommand) setPickup(location kernel.GeoPoint, state string, date time.Time) error {
	stop, err := load.NewStop(location, state, date)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pickup", err)
	}

	c.pickup = stop
	return nil
}

func (c *PostLoadCommand) setDelivery(location kernel.GeoPoint, state string, date time.Time) error {
	stop, err := load.NewStop(location, state, date)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("delivery", err)
	}

	c.delivery = stop
	return nil
}
