package shipment

import (
	"errors"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/errs"
	"freightmatch/internal/pkg/guard"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through the NewShipment or RestoreShipment constructors.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment constructors")

// Params carries the attributes required to construct a Shipment.
type Params struct {
	// ID is the unique identifier of the shipment.
	ID kernel.UUID
	// MatchID identifies the accepted match the shipment executes.
	MatchID kernel.UUID
	// LoadID identifies the load being hauled.
	LoadID kernel.UUID
	// ScheduledPickupAt is the planned pickup instant, copied from the load.
	ScheduledPickupAt time.Time
	// ScheduledDeliveryAt is the planned delivery instant, copied from the
	// load. The on-time flag at delivery is measured against it.
	ScheduledDeliveryAt time.Time
}

// Snapshot carries the mutable state of a persisted shipment for restoration.
type Snapshot struct {
	Status           Status
	ActualPickupAt   *time.Time
	ActualDeliveryAt *time.Time
	DeliveredOnTime  *bool
}

// Shipment tracks the physical execution of an accepted match from pickup
// through delivery. It is created inside the acceptance transaction and lives
// for the lifetime of the match it executes.
//
// Shipment follows these invariants:
//   - Must reference a valid match and load
//   - Scheduled delivery must not precede scheduled pickup
//   - Actual dates are stamped by milestones and never set directly
//   - delivered_on_time is computed at delivery, never supplied
//   - Status transitions follow the explicit transition table in Status
type Shipment struct {
	id                  kernel.UUID
	matchID             kernel.UUID
	loadID              kernel.UUID
	status              Status
	scheduledPickupAt   time.Time
	scheduledDeliveryAt time.Time
	actualPickupAt      *time.Time
	actualDeliveryAt    *time.Time
	deliveredOnTime     *bool
	guard               guard.ConstructorGuard
}

// NewShipment creates a Shipment in the pending_pickup status with validation.
// This is the only way to create a fresh Shipment, ensuring all business
// invariants hold.
//
// Parameters:
//   - params: the shipment attributes; see Params for per-field rules
//
// Returns:
//   - *Shipment: the created shipment if all validations pass
//   - error: joined validation errors naming every offending field
func NewShipment(params Params) (*Shipment, error) {
	s := &Shipment{
		status: PendingPickup,
		guard:  guard.NewConstructorGuard(),
	}

	if err := s.fill(params); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment aggregate from persistent storage,
// including its execution state and actual dates. The restored shipment
// behaves identically to one that reached the same state through milestones.
func RestoreShipment(params Params, snapshot Snapshot) (*Shipment, error) {
	s := &Shipment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(s.fill(params), snapshot.Status.Validate()); err != nil {
		return nil, err
	}

	s.status = snapshot.Status
	s.actualPickupAt = snapshot.ActualPickupAt
	s.actualDeliveryAt = snapshot.ActualDeliveryAt
	s.deliveredOnTime = snapshot.DeliveredOnTime

	return s, nil
}

func (s *Shipment) fill(params Params) error {
	return errors.Join(
		s.setID(params.ID),
		s.setMatchID(params.MatchID),
		s.setLoadID(params.LoadID),
		s.setSchedule(params.ScheduledPickupAt, params.ScheduledDeliveryAt),
	)
}

// Validate ensures the Shipment instance was properly constructed through one
// of its constructors.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// MatchID returns the identifier of the accepted match being executed.
func (s *Shipment) MatchID() kernel.UUID {
	return s.matchID
}

// LoadID returns the identifier of the load being hauled.
func (s *Shipment) LoadID() kernel.UUID {
	return s.loadID
}

// Status returns the current execution status of the shipment.
func (s *Shipment) Status() Status {
	return s.status
}

// ScheduledPickupAt returns the planned pickup instant.
func (s *Shipment) ScheduledPickupAt() time.Time {
	return s.scheduledPickupAt
}

// ScheduledDeliveryAt returns the planned delivery instant.
func (s *Shipment) ScheduledDeliveryAt() time.Time {
	return s.scheduledDeliveryAt
}

// ActualPickupAt returns when pickup was reported, nil before that.
func (s *Shipment) ActualPickupAt() *time.Time {
	return s.actualPickupAt
}

// ActualDeliveryAt returns when delivery was reported, nil before that.
func (s *Shipment) ActualDeliveryAt() *time.Time {
	return s.actualDeliveryAt
}

// DeliveredOnTime reports whether delivery beat the scheduled instant,
// nil until the shipment is delivered.
func (s *Shipment) DeliveredOnTime() *bool {
	return s.deliveredOnTime
}

// PickUp records the pickup-completed milestone and stamps the actual pickup
// date. The caller drives the matching load to picked_up alongside.
func (s *Shipment) PickUp(now time.Time) error {
	if err := s.applyEvent(EventPickUp); err != nil {
		return err
	}

	s.actualPickupAt = &now
	return nil
}

// StartTransit records the in-transit milestone. The caller drives the
// matching load to in_transit alongside.
func (s *Shipment) StartTransit() error {
	return s.applyEvent(EventStartTransit)
}

// Deliver records the delivery-completed milestone, stamps the actual
// delivery date, and computes whether the delivery beat the scheduled
// instant. Delivery exactly at the scheduled instant counts as on time.
// The caller drives the matching load to delivered alongside.
func (s *Shipment) Deliver(now time.Time) error {
	if err := s.applyEvent(EventDeliver); err != nil {
		return err
	}

	onTime := !now.After(s.scheduledDeliveryAt)
	s.actualDeliveryAt = &now
	s.deliveredOnTime = &onTime
	return nil
}

// MarkException moves the shipment into the exception status after a
// breakdown or accident. Exceptions do not auto-recover.
func (s *Shipment) MarkException() error {
	return s.applyEvent(EventMarkException)
}

func (s *Shipment) applyEvent(event Event) error {
	newStatus, err := s.status.Apply(event)
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// setID validates and sets the shipment's unique identifier.
// This is a private method used only during construction.
func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setMatchID(matchID kernel.UUID) error {
	if err := matchID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("matchId", err)
	}
	s.matchID = matchID
	return nil
}

func (s *Shipment) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("loadId", err)
	}
	s.loadID = loadID
	return nil
}

func (s *Shipment) setSchedule(pickupAt, deliveryAt time.Time) error {
	if pickupAt.IsZero() {
		return errs.NewValueIsRequiredError("scheduledPickupAt")
	}
	if deliveryAt.IsZero() {
		return errs.NewValueIsRequiredError("scheduledDeliveryAt")
	}
	if deliveryAt.Before(pickupAt) {
		return errs.NewValueIsInvalidError("scheduledDeliveryAt")
	}

	s.scheduledPickupAt = pickupAt
	s.scheduledDeliveryAt = deliveryAt
	return nil
}
