package shipment

import (
	"errors"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/errs"
	"freightmatch/internal/pkg/guard"
)

// EventType classifies a tracking event reported against a shipment.
type EventType string

const (
	// EventTypePickupCompleted is the milestone driving pending_pickup to picked_up.
	EventTypePickupCompleted EventType = "pickup_completed"
	// EventTypeInTransit is the milestone driving picked_up to in_transit.
	EventTypeInTransit EventType = "in_transit"
	// EventTypeDeliveryCompleted is the milestone driving in_transit to delivered.
	EventTypeDeliveryCompleted EventType = "delivery_completed"
	// EventTypeBreakdown is a critical alert and the milestone driving the
	// shipment to exception.
	EventTypeBreakdown EventType = "breakdown"
	// EventTypeAccident is a critical alert and the milestone driving the
	// shipment to exception.
	EventTypeAccident EventType = "accident"
	// EventTypeDelay is a warning alert; it counts as a milestone but drives
	// no shipment transition.
	EventTypeDelay EventType = "delay"
	// EventTypeLocationUpdate is a plain position report.
	EventTypeLocationUpdate EventType = "location_update"
	// EventTypeTemperatureAlert is a warning alert from a reefer sensor.
	EventTypeTemperatureAlert EventType = "temperature_alert"
	// EventTypeSecurityAlert is a warning alert from a seal or door sensor.
	EventTypeSecurityAlert EventType = "security_alert"
	// EventTypeException is a generic error alert raised by an operator.
	EventTypeException EventType = "exception"
)

// EventTypes returns all valid tracking event types.
func EventTypes() []EventType {
	return []EventType{
		EventTypePickupCompleted,
		EventTypeInTransit,
		EventTypeDeliveryCompleted,
		EventTypeBreakdown,
		EventTypeAccident,
		EventTypeDelay,
		EventTypeLocationUpdate,
		EventTypeTemperatureAlert,
		EventTypeSecurityAlert,
		EventTypeException,
	}
}

// String returns the string representation of the event type.
func (t EventType) String() string {
	return string(t)
}

// Validate checks that the event type is one of the known types.
func (t EventType) Validate() error {
	if t == "" {
		return errs.NewValueIsRequiredError("eventType")
	}

	for _, known := range EventTypes() {
		if t == known {
			return nil
		}
	}

	return errs.NewValueIsInvalidError("eventType")
}

// IsMilestone reports whether the event type participates in shipment-state
// transitions. Delay is a milestone by classification even though it drives
// no transition.
func (t EventType) IsMilestone() bool {
	switch t {
	case EventTypePickupCompleted, EventTypeInTransit, EventTypeDeliveryCompleted,
		EventTypeBreakdown, EventTypeAccident, EventTypeDelay:
		return true
	default:
		return false
	}
}

// ShipmentEvent returns the shipment transition this event type drives.
// The second return is false when the type drives none: delay and every
// non-milestone type.
func (t EventType) ShipmentEvent() (Event, bool) {
	//nolint:exhaustive // types without a transition fall through to the default
	switch t {
	case EventTypePickupCompleted:
		return EventPickUp, true
	case EventTypeInTransit:
		return EventStartTransit, true
	case EventTypeDeliveryCompleted:
		return EventDeliver, true
	case EventTypeBreakdown, EventTypeAccident:
		return EventMarkException, true
	default:
		return 0, false
	}
}

// IsAlert reports whether the event type is classified as an alert. Alerts
// never alter shipment state by themselves.
func (t EventType) IsAlert() bool {
	switch t {
	case EventTypeTemperatureAlert, EventTypeSecurityAlert, EventTypeBreakdown,
		EventTypeAccident, EventTypeDelay, EventTypeException:
		return true
	default:
		return false
	}
}

// Severity grades an alert for downstream notification routing.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityInfo     Severity = "info"
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	return string(s)
}

// AlertSeverity returns the severity grade for the event type: critical for
// breakdown and accident, warning for delay and sensor alerts, error for a
// generic exception, info for everything else.
func (t EventType) AlertSeverity() Severity {
	//nolint:exhaustive // non-alert types fall through to info
	switch t {
	case EventTypeBreakdown, EventTypeAccident:
		return SeverityCritical
	case EventTypeDelay, EventTypeTemperatureAlert, EventTypeSecurityAlert:
		return SeverityWarning
	case EventTypeException:
		return SeverityError
	default:
		return SeverityInfo
	}
}

// ErrTrackingEventIsNotConstructed is returned when a TrackingEvent instance
// was not created through the NewTrackingEvent constructor.
var ErrTrackingEventIsNotConstructed = errors.New("TrackingEvent must be created via NewTrackingEvent constructor")

// TrackingEventParams carries the attributes required to construct a
// TrackingEvent.
type TrackingEventParams struct {
	// ID is the unique identifier of the event.
	ID kernel.UUID
	// ShipmentID identifies the shipment the event belongs to.
	ShipmentID kernel.UUID
	// EventType classifies the event; see EventTypes for the taxonomy.
	EventType EventType
	// Status is the raw status text reported by the source, optional.
	Status string
	// Location is the reported position, optional.
	Location *kernel.GeoPoint
	// TemperatureC is the reefer temperature reading in Celsius, optional.
	TemperatureC *float64
	// HumidityPct is the trailer humidity reading in percent, optional.
	HumidityPct *float64
	// Description is free text from the source, optional.
	Description string
	// Source names the reporting system, e.g. driver_app, eld, api.
	Source string
	// OccurredAt is when the fact happened out in the world. It orders the
	// shipment's history and is never altered.
	OccurredAt time.Time
}

// TrackingEvent is an immutable, timestamped fact about a shipment. Events
// are append-only: once created they are never mutated or deleted, and the
// constructor copies the optional readings so an event cannot be altered
// through retained pointers.
type TrackingEvent struct {
	id           kernel.UUID
	shipmentID   kernel.UUID
	eventType    EventType
	status       string
	location     *kernel.GeoPoint
	temperatureC *float64
	humidityPct  *float64
	description  string
	source       string
	occurredAt   time.Time
	guard        guard.ConstructorGuard
}

// NewTrackingEvent creates a TrackingEvent with validation.
//
// Parameters:
//   - params: the event attributes; see TrackingEventParams for per-field rules
//
// Returns:
//   - *TrackingEvent: the created event if all validations pass
//   - error: joined validation errors naming every offending field
func NewTrackingEvent(params TrackingEventParams) (*TrackingEvent, error) {
	e := &TrackingEvent{
		guard: guard.NewConstructorGuard(),
	}

	if err := e.fill(params); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreTrackingEvent reconstructs a TrackingEvent from persistent storage.
// Events carry no mutable state, so restoration is plain construction.
func RestoreTrackingEvent(params TrackingEventParams) (*TrackingEvent, error) {
	return NewTrackingEvent(params)
}

func (e *TrackingEvent) fill(params TrackingEventParams) error {
	// free-text fields carry no invariants
	e.status = params.Status
	e.description = params.Description

	return errors.Join(
		e.setID(params.ID),
		e.setShipmentID(params.ShipmentID),
		e.setEventType(params.EventType),
		e.setLocation(params.Location),
		e.setReadings(params.TemperatureC, params.HumidityPct),
		e.setSource(params.Source),
		e.setOccurredAt(params.OccurredAt),
	)
}

// Validate ensures the TrackingEvent instance was properly constructed
// through its constructor.
func (e *TrackingEvent) Validate() error {
	if e == nil {
		return ErrTrackingEventIsNotConstructed
	}
	return e.guard.Validate(ErrTrackingEventIsNotConstructed)
}

// IsEqual compares two tracking events by their unique identifiers.
func (e *TrackingEvent) IsEqual(other *TrackingEvent) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the event's unique identifier.
func (e *TrackingEvent) ID() kernel.UUID {
	return e.id
}

// ShipmentID returns the identifier of the shipment the event belongs to.
func (e *TrackingEvent) ShipmentID() kernel.UUID {
	return e.shipmentID
}

// EventType returns the event's classification.
func (e *TrackingEvent) EventType() EventType {
	return e.eventType
}

// Status returns the raw status text reported by the source.
func (e *TrackingEvent) Status() string {
	return e.status
}

// Location returns a copy of the reported position, nil when none was given.
func (e *TrackingEvent) Location() *kernel.GeoPoint {
	if e.location == nil {
		return nil
	}
	loc := *e.location
	return &loc
}

// TemperatureC returns a copy of the temperature reading, nil when none was
// given.
func (e *TrackingEvent) TemperatureC() *float64 {
	return copyFloat(e.temperatureC)
}

// HumidityPct returns a copy of the humidity reading, nil when none was given.
func (e *TrackingEvent) HumidityPct() *float64 {
	return copyFloat(e.humidityPct)
}

// Description returns the free text supplied by the source.
func (e *TrackingEvent) Description() string {
	return e.description
}

// Source returns the name of the reporting system.
func (e *TrackingEvent) Source() string {
	return e.source
}

// OccurredAt returns when the fact happened.
func (e *TrackingEvent) OccurredAt() time.Time {
	return e.occurredAt
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// setID validates and sets the event's unique identifier.
// This is a private method used only during construction.
func (e *TrackingEvent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *TrackingEvent) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipmentId", err)
	}
	e.shipmentID = shipmentID
	return nil
}

func (e *TrackingEvent) setEventType(eventType EventType) error {
	if err := eventType.Validate(); err != nil {
		return err
	}
	e.eventType = eventType
	return nil
}

func (e *TrackingEvent) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("location", err)
	}
	loc := *location
	e.location = &loc
	return nil
}

func (e *TrackingEvent) setReadings(temperatureC, humidityPct *float64) error {
	if humidityPct != nil && (*humidityPct < 0 || *humidityPct > 100) {
		return errs.NewValueIsOutOfRangeError("humidityPct", *humidityPct, 0, 100)
	}

	e.temperatureC = copyFloat(temperatureC)
	e.humidityPct = copyFloat(humidityPct)
	return nil
}

func (e *TrackingEvent) setSource(source string) error {
	if source == "" {
		return errs.NewValueIsRequiredError("source")
	}
	e.source = source
	return nil
}

func (e *TrackingEvent) setOccurredAt(occurredAt time.Time) error {
	if occurredAt.IsZero() {
		return errs.NewValueIsRequiredError("occurredAt")
	}
	e.occurredAt = occurredAt
	return nil
}
