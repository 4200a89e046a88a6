package load

import (
	"errors"
	"fmt"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/errs"
	"freightmatch/internal/pkg/guard"
)

// ErrLoadIsNotConstructed is returned when a Load instance was not created
// through the NewLoad or RestoreLoad constructors.
var ErrLoadIsNotConstructed = errors.New("Load must be created via NewLoad or RestoreLoad constructors")

// Params carries the attributes required to construct a Load. A struct is
// used instead of positional arguments because a load has too many required
// fields for a readable signature.
type Params struct {
	// ID is the unique identifier of the load.
	ID kernel.UUID
	// Reference is the human-facing load reference, e.g. "LD-2025-00417".
	Reference string
	// EquipmentType is the trailer class the freight requires.
	EquipmentType kernel.EquipmentType
	// WeightLbs is the freight weight in pounds. Zero means unspecified;
	// when specified it gates carrier vehicle capacity.
	WeightLbs int
	// Pickup is the origin stop.
	Pickup Stop
	// Delivery is the destination stop.
	Delivery Stop
	// Hazmat marks freight that requires a hazmat-certified carrier.
	Hazmat bool
	// TemperatureControlled marks freight that must stay within a temperature band.
	TemperatureControlled bool
	// TeamDriver marks freight that requires a two-driver team.
	TeamDriver bool
	// RateQuoted is the shipper-quoted linehaul rate in dollars.
	RateQuoted float64
	// RateTotal is the all-in rate in dollars (linehaul plus surcharges).
	// Zero defaults to RateQuoted.
	RateTotal float64
	// ExpiresAt is when the posting lapses if no match is accepted.
	ExpiresAt time.Time
}

// Load represents a shipper's posted freight. It is the aggregate root that
// manages the load lifecycle from posting through matching to delivery.
//
// Load follows these invariants:
//   - Must have a valid unique identifier and a non-empty reference
//   - Equipment type must be a supported value
//   - Weight, when specified, must be positive
//   - Delivery date must not precede pickup date
//   - At least one of the rates must be positive
//   - Status transitions follow the explicit transition table in Status
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Load struct {
	id                    kernel.UUID
	reference             string
	equipmentType         kernel.EquipmentType
	weightLbs             int
	pickup                Stop
	delivery              Stop
	hazmat                bool
	temperatureControlled bool
	teamDriver            bool
	rateQuoted            float64
	rateTotal             float64
	expiresAt             time.Time
	status                Status
	guard                 guard.ConstructorGuard
}

// NewLoad creates a Load in the posted status with validation. This is the
// only way to create a fresh Load, ensuring all business invariants hold.
//
// Parameters:
//   - params: the load attributes; see Params for per-field rules
//
// Returns:
//   - *Load: the created load if all validations pass
//   - error: joined validation errors naming every offending field
//
// Example:
//
//	pickup, _ := load.NewStop(atlanta, "GA", pickupDate)
//	delivery, _ := load.NewStop(miami, "FL", deliveryDate)
//	l, err := load.NewLoad(load.Params{
//	    ID:            kernel.NewUUID(),
//	    Reference:     "LD-2025-00417",
//	    EquipmentType: kernel.EquipmentDryVan,
//	    Pickup:        pickup,
//	    Delivery:      delivery,
//	    RateQuoted:    2400,
//	    RateTotal:     2750,
//	    ExpiresAt:     pickupDate.Add(-24 * time.Hour),
//	})
func NewLoad(params Params) (*Load, error) {
	l := &Load{
		status: Posted,
		guard:  guard.NewConstructorGuard(),
	}

	if err := l.fill(params); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLoad reconstructs a Load aggregate from persistent storage. Unlike
// NewLoad, which always starts a load in the posted status, this constructor
// restores the persisted status. The restored load behaves identically to one
// that reached the same state through domain operations.
//
// Returns:
//   - *Load: the restored load
//   - error: validation error if any attribute or the status is invalid
func RestoreLoad(params Params, status Status) (*Load, error) {
	l := &Load{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(l.fill(params), l.setStatus(status)); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *Load) fill(params Params) error {
	// flags carry no invariants
	l.hazmat = params.Hazmat
	l.temperatureControlled = params.TemperatureControlled
	l.teamDriver = params.TeamDriver

	return errors.Join(
		l.setID(params.ID),
		l.setReference(params.Reference),
		l.setEquipmentType(params.EquipmentType),
		l.setWeightLbs(params.WeightLbs),
		l.setStops(params.Pickup, params.Delivery),
		l.setRates(params.RateQuoted, params.RateTotal),
		l.setExpiresAt(params.ExpiresAt),
	)
}

// Validate ensures the Load instance was properly constructed through one of
// its constructors. This prevents bypassing validation by directly
// instantiating the struct.
func (l *Load) Validate() error {
	if l == nil {
		return ErrLoadIsNotConstructed
	}
	return l.guard.Validate(ErrLoadIsNotConstructed)
}

// IsEqual compares two loads by their unique identifiers.
func (l *Load) IsEqual(other *Load) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the load's unique identifier.
func (l *Load) ID() kernel.UUID {
	return l.id
}

// Reference returns the human-facing load reference.
func (l *Load) Reference() string {
	return l.reference
}

// EquipmentType returns the trailer class the freight requires.
func (l *Load) EquipmentType() kernel.EquipmentType {
	return l.equipmentType
}

// WeightLbs returns the freight weight in pounds, zero when unspecified.
func (l *Load) WeightLbs() int {
	return l.weightLbs
}

// HasWeight reports whether the shipper specified a freight weight.
func (l *Load) HasWeight() bool {
	return l.weightLbs > 0
}

// Pickup returns the origin stop.
func (l *Load) Pickup() Stop {
	return l.pickup
}

// Delivery returns the destination stop.
func (l *Load) Delivery() Stop {
	return l.delivery
}

// Hazmat reports whether the freight requires a hazmat-certified carrier.
func (l *Load) Hazmat() bool {
	return l.hazmat
}

// TemperatureControlled reports whether the freight must stay within a
// temperature band.
func (l *Load) TemperatureControlled() bool {
	return l.temperatureControlled
}

// TeamDriver reports whether the freight requires a two-driver team.
func (l *Load) TeamDriver() bool {
	return l.teamDriver
}

// RateQuoted returns the shipper-quoted linehaul rate in dollars.
func (l *Load) RateQuoted() float64 {
	return l.rateQuoted
}

// RateTotal returns the all-in rate in dollars.
func (l *Load) RateTotal() float64 {
	return l.rateTotal
}

// ExpiresAt returns when the posting lapses if no match is accepted.
func (l *Load) ExpiresAt() time.Time {
	return l.expiresAt
}

// Status returns the current lifecycle status of the load.
func (l *Load) Status() Status {
	return l.status
}

// IsExpired reports whether the posting window has passed at the given time.
func (l *Load) IsExpired(now time.Time) bool {
	return !l.expiresAt.After(now)
}

// MarkMatched records that candidate matches were generated for the load.
// Legal from posted and matched (re-running a candidate search is allowed).
func (l *Load) MarkMatched() error {
	return l.applyEvent(EventMatch)
}

// Accept records that a carrier accepted a match for the load.
//
// This method enforces the following business rules:
//   - The load must be in posted or matched status
//   - Once accepted, only shipment milestones or cancellation move the load
//
// The caller is responsible for the rest of the acceptance cascade: creating
// the shipment and cancelling sibling matches in the same transaction.
func (l *Load) Accept() error {
	return l.applyEvent(EventAccept)
}

// MarkPickedUp records the shipment's pickup milestone on the load.
func (l *Load) MarkPickedUp() error {
	return l.applyEvent(EventPickUp)
}

// MarkInTransit records the shipment's in-transit milestone on the load.
func (l *Load) MarkInTransit() error {
	return l.applyEvent(EventStartTransit)
}

// MarkDelivered records the shipment's delivery milestone on the load.
// Delivered is a terminal state.
func (l *Load) MarkDelivered() error {
	return l.applyEvent(EventDeliver)
}

// Cancel withdraws the load. Legal from posted, matched, and accepted.
// Cancelled is a terminal state.
func (l *Load) Cancel() error {
	return l.applyEvent(EventCancel)
}

// Expire lapses a posting whose window has passed.
//
// This method enforces the following business rules:
//   - The load must be in posted status
//   - The expiry timestamp must actually have passed at the given time
//
// Parameters:
//   - now: the wall-clock time of the sweep, passed explicitly so the
//     aggregate never reads the system clock
func (l *Load) Expire(now time.Time) error {
	if !l.IsExpired(now) {
		return errs.NewInvalidStateTransitionErrorWithCause(
			"load", l.status.String(), EventExpire.String(),
			fmt.Errorf("expires_at %s is still in the future", l.expiresAt.Format(time.RFC3339)),
		)
	}

	return l.applyEvent(EventExpire)
}

func (l *Load) applyEvent(event Event) error {
	newStatus, err := l.status.Apply(event)
	if err != nil {
		return err
	}

	l.status = newStatus
	return nil
}

// setID validates and sets the load's unique identifier.
// This is a private method used only during construction.
func (l *Load) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Load) setReference(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	l.reference = reference
	return nil
}

func (l *Load) setEquipmentType(equipmentType kernel.EquipmentType) error {
	if err := equipmentType.Validate(); err != nil {
		return err
	}
	l.equipmentType = equipmentType
	return nil
}

// setWeightLbs validates and sets the freight weight.
// Zero is permitted and means the shipper did not specify a weight.
func (l *Load) setWeightLbs(weightLbs int) error {
	if weightLbs < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightLbs",
			fmt.Errorf("%d is negative", weightLbs))
	}
	l.weightLbs = weightLbs
	return nil
}

// setStops validates both stops and the schedule invariant that delivery
// must not precede pickup.
func (l *Load) setStops(pickup Stop, delivery Stop) error {
	if err := errors.Join(pickup.Validate(), delivery.Validate()); err != nil {
		return err
	}

	if delivery.Date().Before(pickup.Date()) {
		return errs.NewValueIsInvalidErrorWithCause("deliveryDate",
			fmt.Errorf("delivery %s precedes pickup %s",
				delivery.Date().Format(time.RFC3339), pickup.Date().Format(time.RFC3339)))
	}

	l.pickup = pickup
	l.delivery = delivery
	return nil
}

// setRates validates the rates and defaults the total to the quoted linehaul
// when the caller did not provide one. At least one rate must be positive so
// margin estimation always has a revenue figure.
func (l *Load) setRates(rateQuoted float64, rateTotal float64) error {
	if rateQuoted < 0 {
		return errs.NewValueIsOutOfRangeError("rateQuoted", rateQuoted, 0, "unbounded")
	}
	if rateTotal < 0 {
		return errs.NewValueIsOutOfRangeError("rateTotal", rateTotal, 0, "unbounded")
	}

	if rateTotal == 0 {
		rateTotal = rateQuoted
	}
	if rateTotal == 0 {
		return errs.NewValueIsRequiredError("rateTotal")
	}

	l.rateQuoted = rateQuoted
	l.rateTotal = rateTotal
	return nil
}

func (l *Load) setExpiresAt(expiresAt time.Time) error {
	if expiresAt.IsZero() {
		return errs.NewValueIsRequiredError("expiresAt")
	}
	l.expiresAt = expiresAt
	return nil
}

func (l *Load) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	l.status = status
	return nil
}
